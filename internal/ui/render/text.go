// Package render provides width-aware text helpers for the terminal views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes.
// File names may contain both; either breaks the terminal layout.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if (b < 0x20 && b != '\t') || b == 0x7f {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] >= 0x80 && s[i+1] <= 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens s to maxWidth cells, keeping its start.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), max(maxWidth, 0), ellipsis)
}

// TruncatePath shortens s to maxWidth cells, keeping its end, so that the
// file name part of a path stays visible.
func TruncatePath(s string, maxWidth int) string {
	s = Sanitize(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return ellipsis[:max(maxWidth, 0)]
	}

	runes := []rune(s)
	budget := maxWidth - len(ellipsis)
	start, w := len(runes), 0
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if w+rw > budget {
			break
		}
		w += rw
		start--
	}
	return ellipsis + string(runes[start:])
}

// Columns lays out left and right on one line of exactly width cells. The
// left column keeps at least half the width; the right one is shortened
// from its start.
func Columns(left, right string, width int) string {
	if right == "" {
		return runewidth.FillRight(Truncate(left, width), width)
	}
	rightMax := max(width-lipgloss.Width(left)-1, width/2)
	right = TruncatePath(right, rightMax)
	left = Truncate(left, width-lipgloss.Width(right)-1)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
