package search

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/trackersearch/internal/keymap"
	"github.com/llehouerou/trackersearch/internal/tracker"
	"github.com/llehouerou/trackersearch/internal/ui/render"
	"github.com/llehouerou/trackersearch/internal/ui/styles"
)

// maxVisibleResults matches what one default query can return; longer
// result lists scroll.
const maxVisibleResults = tracker.MaxResults - 1

func popupStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func (m Model) popupWidth() int {
	w := m.width * 70 / 100
	if w < 50 {
		w = min(50, m.width-2)
	}
	return max(w, 10)
}

func (m Model) popupHeight() int {
	h := m.height * 60 / 100
	if h < 10 {
		h = min(10, m.height)
	}
	return h
}

func (m Model) visibleHeight() int {
	// border (2) + input (1) + separator (1) + status (1)
	h := max(m.popupHeight()-5, 1)
	return min(h, maxVisibleResults)
}

func (m Model) statusLine() string {
	s := styles.T().S()
	switch {
	case m.err != nil:
		return s.Error.Render(m.err.Error())
	case m.loading:
		return s.Subtle.Render("Searching...")
	case strings.TrimSpace(m.query) == "":
		return s.Subtle.Render("Type to search...")
	case len(m.items) == 0:
		return s.Subtle.Render("No matches")
	default:
		return s.Subtle.Render(keymap.Hints(keymap.Overlay))
	}
}

func (m Model) formatRow(item Item, innerW int, isCursor bool) string {
	s := styles.T().S()

	prefix := "  "
	if isCursor {
		prefix = "> "
	}
	name := item.Meta.Label
	if ext := item.Result.Extension; ext != "" {
		name += " " + s.Badge.Render(ext)
	}

	row := render.Columns(name, item.Path(), innerW-len(prefix))
	if isCursor {
		return s.Selected.Render(prefix + ansi.Strip(row))
	}
	return s.Base.Render(prefix) + row
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.selected != nil || m.canceled {
		return ""
	}

	innerW := m.popupWidth() - 2

	lines := make([]string, 0, m.visibleHeight()+3)
	lines = append(lines, m.input.View(), render.Separator(innerW))

	visible := m.visibleHeight()
	end := min(m.offset+visible, len(m.items))
	for i := m.offset; i < end; i++ {
		lines = append(lines, ansi.Truncate(m.formatRow(m.items[i], innerW, i == m.cursor), innerW, ""))
	}
	for range visible - (end - m.offset) {
		lines = append(lines, "")
	}
	lines = append(lines, ansi.Truncate(m.statusLine(), innerW, "..."))

	box := popupStyle().Width(innerW).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
