// Package mimeguess guesses content types from file names, with optional
// content sniffing for names the MIME database does not know.
package mimeguess

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	octetStream = "application/octet-stream"
	directory   = "inode/directory"
)

// literalNames maps well-known extensionless file names (lowercased) to
// their content type, as shared-mime-info's literal globs do.
var literalNames = map[string]string{
	"makefile":    "text/x-makefile",
	"gnumakefile": "text/x-makefile",
	"dockerfile":  "text/x-dockerfile",
	"readme":      "text/x-readme",
	"copying":     "text/x-copying",
	"license":     "text/x-copying",
	"changelog":   "text/x-changelog",
	"authors":     "text/x-authors",
	"install":     "text/x-install",
	"todo":        "text/plain",
}

// Guesser maps paths to content types.
type Guesser struct {
	sniff bool
}

// Option configures a Guesser.
type Option func(*Guesser)

// WithContentSniffing enables reading regular files whose name alone gives
// no certain answer.
func WithContentSniffing(enabled bool) Option {
	return func(g *Guesser) {
		g.sniff = enabled
	}
}

// New creates a Guesser.
func New(opts ...Option) *Guesser {
	g := &Guesser{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Guess returns the content type for path and whether the guess is
// uncertain. Unknown names yield application/octet-stream, uncertain.
func (g *Guesser) Guess(path string) (string, bool) {
	if path == "" {
		return octetStream, true
	}
	if strings.HasSuffix(path, "/") {
		return directory, false
	}

	if t, ok := byName(path); ok {
		return t, false
	}

	if g.sniff {
		if t, ok := sniff(path); ok {
			return t, t == octetStream
		}
	}

	return octetStream, true
}

func byName(path string) (string, bool) {
	base := filepath.Base(path)
	if t, ok := literalNames[strings.ToLower(base)]; ok {
		return t, true
	}

	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return "", false
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return "", false
	}
	return stripParams(t), true
}

func sniff(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return directory, true
	}
	if !info.Mode().IsRegular() {
		return "", false
	}

	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false
	}
	return stripParams(m.String()), true
}

// stripParams drops MIME parameters such as "; charset=utf-8".
func stripParams(t string) string {
	if mediaType, _, err := mime.ParseMediaType(t); err == nil {
		return mediaType
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		return strings.TrimSpace(t[:i])
	}
	return t
}
