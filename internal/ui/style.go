package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by the editor and CLI output.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	URL      lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:    lipgloss.NewStyle().Faint(true),
		URL:      lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// PlainStyles returns styles that render text unchanged, for pipes and
// --no-color.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Label:    plain,
		Selected: plain,
		Value:    plain,
		Muted:    plain,
		URL:      plain,
		Error:    plain,
	}
}

// Pairs renders key/value rows with the keys padded to the same width.
func (s Styles) Pairs(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}

	var b strings.Builder
	for _, r := range rows {
		label := fmt.Sprintf("%-*s", width+1, r[0]+":")
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render(label), s.Value.Render(r[1]))
	}
	return b.String()
}
