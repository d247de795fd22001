package icons

import "strings"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style, one per kind of result.
type Icons struct {
	Folder   string
	Document string
	Text     string
	Image    string
	Audio    string
	Video    string
	Archive  string
	Code     string
	Generic  string
}

var (
	nerdIcons = Icons{
		Folder:   "\uf07b ", // nf-fa-folder
		Document: "\uf1c1 ", // nf-fa-file_pdf_o
		Text:     "\uf15c ", // nf-fa-file_text
		Image:    "\uf1c5 ", // nf-fa-file_image_o
		Audio:    "\uf1c7 ", // nf-fa-file_audio_o
		Video:    "\uf1c8 ", // nf-fa-file_video_o
		Archive:  "\uf1c6 ", // nf-fa-file_archive_o
		Code:     "\uf1c9 ", // nf-fa-file_code_o
		Generic:  "\uf15b ", // nf-fa-file
	}

	unicodeIcons = Icons{
		Folder:   "📁 ",
		Document: "📕 ",
		Text:     "📄 ",
		Image:    "🖼 ",
		Audio:    "🎵 ",
		Video:    "🎬 ",
		Archive:  "📦 ",
		Code:     "📜 ",
		Generic:  "📄 ",
	}

	noneIcons = Icons{
		Folder: "/",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// kind groups content types that share a glyph and a generic icon.
type kind int

const (
	kindGeneric kind = iota
	kindFolder
	kindDocument
	kindText
	kindImage
	kindAudio
	kindVideo
	kindArchive
	kindCode
)

var archiveTypes = map[string]bool{
	"application/zip":              true,
	"application/gzip":             true,
	"application/x-tar":            true,
	"application/x-bzip2":          true,
	"application/x-xz":             true,
	"application/x-7z-compressed":  true,
	"application/vnd.rar":          true,
	"application/x-rar-compressed": true,
	"application/zstd":             true,
	"application/x-compressed-tar": true,
	"application/java-archive":     true,
}

var codeTypes = map[string]bool{
	"application/javascript":    true,
	"application/json":          true,
	"application/xml":           true,
	"application/x-shellscript": true,
	"text/x-go":                 true,
	"text/x-python":             true,
	"text/x-c":                  true,
	"text/x-csrc":               true,
	"text/x-chdr":               true,
	"text/x-makefile":           true,
	"text/javascript":           true,
	"text/css":                  true,
	"text/html":                 true,
}

func classify(contentType string) kind {
	ct := strings.ToLower(contentType)
	switch {
	case ct == "inode/directory":
		return kindFolder
	case archiveTypes[ct]:
		return kindArchive
	case codeTypes[ct]:
		return kindCode
	case ct == "application/pdf",
		strings.HasPrefix(ct, "application/vnd.oasis.opendocument"),
		strings.HasPrefix(ct, "application/vnd.openxmlformats-officedocument"),
		ct == "application/msword",
		ct == "application/epub+zip":
		return kindDocument
	case strings.HasPrefix(ct, "text/"):
		return kindText
	case strings.HasPrefix(ct, "image/"):
		return kindImage
	case strings.HasPrefix(ct, "audio/"):
		return kindAudio
	case strings.HasPrefix(ct, "video/"):
		return kindVideo
	}
	return kindGeneric
}

// Glyph returns the glyph for a content type in the current style.
func Glyph(contentType string) string {
	switch classify(contentType) {
	case kindFolder:
		return current.Folder
	case kindDocument:
		return current.Document
	case kindText:
		return current.Text
	case kindImage:
		return current.Image
	case kindAudio:
		return current.Audio
	case kindVideo:
		return current.Video
	case kindArchive:
		return current.Archive
	case kindCode:
		return current.Code
	case kindGeneric:
		return current.Generic
	}
	return current.Generic
}

// FormatName formats a result name with the glyph for its content type.
// For "none" style folders get a "/" suffix and files are left as-is.
func FormatName(name, contentType string) string {
	if current == noneIcons {
		if classify(contentType) == kindFolder {
			return name + current.Folder
		}
		return name
	}
	return Glyph(contentType) + name
}

// Names returns freedesktop themed icon names for a content type, most
// specific first. The list always ends with text-x-generic.
func Names(contentType string) []string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	var names []string
	add := func(name string) {
		for _, n := range names {
			if n == name {
				return
			}
		}
		names = append(names, name)
	}

	if ct != "" {
		add(strings.ReplaceAll(ct, "/", "-"))
	}

	switch classify(ct) {
	case kindFolder:
		add("folder")
	case kindArchive:
		add("package-x-generic")
	case kindDocument:
		add("x-office-document")
	case kindCode, kindText:
		add("text-x-generic")
	case kindImage:
		add("image-x-generic")
	case kindAudio:
		add("audio-x-generic")
	case kindVideo:
		add("video-x-generic")
	case kindGeneric:
		if strings.HasPrefix(ct, "application/") {
			add("application-x-generic")
		}
	}

	add("text-x-generic")
	return names
}

// GIcon serializes themed icon names the way g_icon_to_string does: a single
// name stays bare, several become a GThemedIcon.
func GIcon(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return ". GThemedIcon " + strings.Join(names, " ")
}
