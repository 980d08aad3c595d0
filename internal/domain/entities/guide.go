package entities

import "strings"

const guidePromptTemplate = `[INST]
    Create a step-by-step guide for local implementation:
    1. Brief project summary
    2. Setup requirements
    3. Installation steps
    4. Configuration
    5. Execution instructions
    
    Repository: {repo_url}
    Key files:
    {repo_content}
    [/INST]`

// GuidePrompt is the filled instruction sent to the model.
type GuidePrompt struct {
	text string
}

// NewGuidePrompt substitutes the repository URL and the sampled content into
// the instruction template. Both values are inserted verbatim.
func NewGuidePrompt(repoURL, repoContent string) GuidePrompt {
	replacer := strings.NewReplacer(
		"{repo_url}", repoURL,
		"{repo_content}", repoContent,
	)
	return GuidePrompt{text: replacer.Replace(guidePromptTemplate)}
}

func (p GuidePrompt) String() string { return p.text }

// Guide is the generated setup guide for one repository.
type Guide struct {
	Reference RepositoryReference
	URL       string
	Content   string
}

// FileName is the name offered when the guide is downloaded or written.
func (g *Guide) FileName() string {
	return g.Reference.Name + "_guide.md"
}

// HTMLFileName is the name used for the rendered HTML export.
func (g *Guide) HTMLFileName() string {
	return g.Reference.Name + "_guide.html"
}
