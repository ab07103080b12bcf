package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/DaanHessen/pagebot/internal/settings"
)

type model struct {
	settings settings.Settings
	theme    string
	styles   styles
	reveal   bool
	width    int
	detail   string
}

func newModel(s settings.Settings, theme string) model {
	if _, ok := palettes[theme]; !ok {
		theme = defaultTheme
	}
	m := model{settings: s, theme: theme, styles: newStyles(theme), width: 80}
	m.detail = m.renderDetail()
	return m
}

func (m model) renderDetail() string {
	md := consumerMarkdown(m.settings)
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(m.width))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) View() string {
	var b strings.Builder
	b.WriteString(render(m.settings, m.styles, m.reveal))
	b.WriteString("\n")
	b.WriteString(m.detail)
	help := "r reveal secrets • t theme (" + m.theme + ") • q quit"
	if m.reveal {
		help = "r hide secrets • t theme (" + m.theme + ") • q quit"
	}
	b.WriteString(m.styles.muted.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.detail = m.renderDetail()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.reveal = !m.reveal
		case "t":
			m.theme = nextThemeName(m.theme, 1)
			m.styles = newStyles(m.theme)
		case "T":
			m.theme = nextThemeName(m.theme, -1)
			m.styles = newStyles(m.theme)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// Run boots the inspector and blocks until it exits.
func Run(ctx context.Context, s settings.Settings, theme string) error {
	program := tea.NewProgram(newModel(s, theme), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
