//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"reflect"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	Init("none")
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		style       string
		contentType string
		expected    string
	}{
		{"nerd", "inode/directory", "\uf07b "},
		{"nerd", "application/pdf", "\uf1c1 "},
		{"nerd", "text/x-log", "\uf15c "},
		{"nerd", "image/png", "\uf1c5 "},
		{"nerd", "application/zip", "\uf1c6 "},
		{"nerd", "text/x-go", "\uf1c9 "},
		{"nerd", "application/x-unknown", "\uf15b "},
		{"unicode", "audio/flac", "🎵 "},
		{"unicode", "video/mp4", "🎬 "},
		{"none", "image/png", ""},
		{"none", "inode/directory", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"_"+tt.contentType, func(t *testing.T) {
			Init(tt.style)
			if got := Glyph(tt.contentType); got != tt.expected {
				t.Errorf("Glyph(%q) = %q, want %q", tt.contentType, got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		style       string
		name        string
		contentType string
		expected    string
	}{
		{"none", "Projects", "inode/directory", "Projects/"},
		{"none", "notes.txt", "text/plain", "notes.txt"},
		{"nerd", "Projects", "inode/directory", "\uf07b Projects"},
		{"unicode", "cat.png", "image/png", "🖼 cat.png"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"_"+tt.name, func(t *testing.T) {
			Init(tt.style)
			if got := FormatName(tt.name, tt.contentType); got != tt.expected {
				t.Errorf("FormatName(%q, %q) = %q, want %q", tt.name, tt.contentType, got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestNames(t *testing.T) {
	tests := []struct {
		contentType string
		expected    []string
	}{
		{"inode/directory", []string{"inode-directory", "folder", "text-x-generic"}},
		{"text/x-log", []string{"text-x-log", "text-x-generic"}},
		{"text/plain", []string{"text-plain", "text-x-generic"}},
		{"image/png", []string{"image-png", "image-x-generic", "text-x-generic"}},
		{"application/pdf", []string{"application-pdf", "x-office-document", "text-x-generic"}},
		{"application/zip", []string{"application-zip", "package-x-generic", "text-x-generic"}},
		{"application/x-thing", []string{"application-x-thing", "application-x-generic", "text-x-generic"}},
		{"Audio/FLAC", []string{"audio-flac", "audio-x-generic", "text-x-generic"}},
		{"", []string{"text-x-generic"}},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got := Names(tt.contentType)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Names(%q) = %v, want %v", tt.contentType, got, tt.expected)
			}
		})
	}
}

func TestGIcon(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected string
	}{
		{"empty", nil, ""},
		{"single name", []string{"folder"}, "folder"},
		{"themed icon", []string{"text-x-log", "text-x-generic"}, ". GThemedIcon text-x-log text-x-generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GIcon(tt.names); got != tt.expected {
				t.Errorf("GIcon(%v) = %q, want %q", tt.names, got, tt.expected)
			}
		})
	}
}
