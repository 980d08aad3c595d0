package entities

// EntryType is the kind of a repository content entry.
type EntryType string

const (
	EntryFile EntryType = "file"
	EntryDir  EntryType = "dir"
)

// ContentEntry is one item of a repository directory listing.
type ContentEntry struct {
	Path string
	Type EntryType
}

func (e ContentEntry) IsDir() bool  { return e.Type == EntryDir }
func (e ContentEntry) IsFile() bool { return e.Type == EntryFile }
