package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/localguide/internal/domain/commands"
	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
	"github.com/rios0rios0/localguide/internal/infrastructure/repositories/clipboard"
	"github.com/rios0rios0/localguide/internal/infrastructure/repositories/files"
)

// GenerateController handles the "generate" subcommand and the root command
// with a URL argument.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate <github-url>",
		Short: "Generate a local setup guide for a GitHub repository",
		Long: `Sample up to ten source and documentation files from a public GitHub
repository and ask the configured language model for a step-by-step
guide to run the project locally.

The guide is printed to stdout. Use --output to also write
{repo}_guide.md, --html to render it next to the markdown, and
--copy to put it on the clipboard.`,
	}
}

// Execute runs the pipeline for the URL given as first argument.
func (it *GenerateController) Execute(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	repoURL := ""
	if len(args) > 0 {
		repoURL = args[0]
	}

	guide, err := it.command.Execute(commandContext(cmd), settings, commands.GenerateOptions{URL: repoURL})
	if err != nil {
		logger.Errorf("Guide generation failed: %v", err)
		_, _ = fmt.Fprintln(errOut, entities.UserMessage(err))
		return
	}

	_, _ = fmt.Fprintln(errOut, "Guide Generated!")
	_, _ = fmt.Fprintln(out, guide.Content)

	for _, writer := range writersFromFlags(cmd) {
		location, writeErr := writer.Write(guide)
		if writeErr != nil {
			logger.Errorf("Failed to export guide: %v", writeErr)
			continue
		}
		logger.Infof("Guide exported to %s", location)
	}
}

// AddFlags adds the generate-specific flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Directory to write {repo}_guide.md into")
	cmd.Flags().Bool("html", false, "Also write a rendered {repo}_guide.html (requires --output)")
	cmd.Flags().Bool("copy", false, "Copy the generated guide to the clipboard")
}

func writersFromFlags(cmd *cobra.Command) []repositories.GuideWriterRepository {
	var writers []repositories.GuideWriterRepository

	outputDir, _ := cmd.Flags().GetString("output")
	withHTML, _ := cmd.Flags().GetBool("html")
	toClipboard, _ := cmd.Flags().GetBool("copy")

	if outputDir != "" {
		writers = append(writers, files.NewGuideFileRepository(outputDir, withHTML))
	} else if withHTML {
		logger.Warn("--html has no effect without --output")
	}
	if toClipboard {
		writers = append(writers, clipboard.NewClipboardRepository())
	}

	return writers
}
