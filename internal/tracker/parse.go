package tracker

import (
	"strings"
)

// uriMarker matches both "file://" and variants missing the leading 'f'.
const uriMarker = "ile://"

// Guesser maps a path to a best-guess content type. uncertain is true when
// the guess is low-confidence.
type Guesser interface {
	Guess(path string) (contentType string, uncertain bool)
}

// GuesserFunc adapts a function to the Guesser interface.
type GuesserFunc func(path string) (string, bool)

// Guess implements Guesser.
func (f GuesserFunc) Guess(path string) (string, bool) {
	return f(path)
}

// ParseLine turns one line of tracker-search output into a Result.
// Malformed lines yield a Result with empty fields; no line is rejected.
func ParseLine(line string, g Guesser) Result {
	line = strings.ToValidUTF8(line, "�")

	segments := strings.Split(line, "/")
	filename := decodeOrRaw(segments[len(segments)-1])

	var extension string
	hasExtension := false
	if parts := strings.Split(filename, "."); len(parts) > 1 {
		hasExtension = true
		extension = strings.ToUpper(parts[len(parts)-1])
	}

	var path string
	if parts := strings.Split(line, uriMarker); len(parts) == 2 {
		path = decodeOrRaw(parts[1])
	}

	guessed, uncertain := g.Guess(path)

	return Result{
		ID:          line,
		Filename:    filename,
		Path:        path,
		Extension:   extension,
		ContentType: Classify(guessed, uncertain, hasExtension),
	}
}

// Classify applies the fallback policy for uncertain guesses. Only uncertain
// octet-stream guesses are corrected: extensionless ones are folders, the
// rest are shown as plain text so an icon can still be picked.
// An empty guess counts as an uncertain octet-stream.
func Classify(guessed string, uncertain, hasExtension bool) string {
	if guessed == "" {
		guessed, uncertain = ContentTypeOctetStream, true
	}
	if uncertain && guessed == ContentTypeOctetStream {
		if !hasExtension {
			return ContentTypeDirectory
		}
		return ContentTypeText
	}
	return guessed
}
