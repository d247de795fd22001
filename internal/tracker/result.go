// Package tracker runs the tracker-search indexing query tool and normalizes
// its line-oriented output into typed results.
package tracker

const (
	// DefaultCommand is the indexing query executable, resolved via $PATH.
	DefaultCommand = "tracker-search"

	// MaxResults bounds the number of output lines consumed per query,
	// including the discarded header line.
	MaxResults = 15
)

// Content types produced by the classification policy.
const (
	ContentTypeOctetStream = "application/octet-stream"
	ContentTypeDirectory   = "inode/directory"
	ContentTypeText        = "text/x-log"
)

// Result is one normalized search hit.
type Result struct {
	ID          string // raw output line, valid UTF-8; parses back to this Result
	Filename    string // last path segment, percent-decoded
	Path        string // absolute path from the file:// token, or empty
	Extension   string // uppercased suffix after the last '.', or empty
	ContentType string // never empty
}

// IsDirectory reports whether the result was classified as a folder.
func (r Result) IsDirectory() bool {
	return r.ContentType == ContentTypeDirectory
}
