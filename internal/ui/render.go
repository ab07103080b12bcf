// Package ui renders Settings for operators, as plain styled text or as an
// interactive inspector.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/pagebot/internal/settings"
)

type styles struct {
	title   lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	present lipgloss.Style
	absent  lipgloss.Style
	frame   lipgloss.Style
}

func newStyles(theme string) styles {
	p := paletteFor(theme)
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		key:     lipgloss.NewStyle().Width(14).Foreground(p.Text),
		value:   lipgloss.NewStyle().Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		present: lipgloss.NewStyle().Width(3).Foreground(p.Present),
		absent:  lipgloss.NewStyle().Width(3).Foreground(p.Absent),
		frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
	}
}

// Render returns the settings table with secrets redacted.
func Render(s settings.Settings, theme string) string {
	return render(s, newStyles(theme), false)
}

func render(s settings.Settings, st styles, reveal bool) string {
	var b strings.Builder
	b.WriteString(st.title.Render(fmt.Sprintf("Settings (%s profile)", s.Profile())))
	b.WriteString("\n")
	for _, k := range settings.Keys() {
		v, ok := s.Lookup(k)
		marker := st.absent.Render("✗")
		shown := st.muted.Render("<unset>")
		if ok {
			marker = st.present.Render("✓")
			if reveal {
				shown = st.value.Render(v)
			} else {
				shown = st.value.Render(s.Display(k))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, marker, st.key.Render(k), shown))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.present.Render("•"), st.key.Render("DATA_DIR"), st.value.Render(s.DataDir())))
	return st.frame.Render(b.String())
}

// consumerMarkdown describes which consumers can start with s.
func consumerMarkdown(s settings.Settings) string {
	var b strings.Builder
	b.WriteString("## Consumers\n\n")
	for _, c := range settings.Consumers() {
		err := s.Check(c)
		if err == nil {
			fmt.Fprintf(&b, "- **%s**: ready\n", c)
			continue
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", c, err)
	}
	b.WriteString("\nValues are read once at startup. Restart the process to pick up changes.\n")
	return b.String()
}
