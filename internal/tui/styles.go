package tui

import "github.com/charmbracelet/lipgloss"

const (
	focusColor  = lipgloss.Color("#04B575")
	borderColor = lipgloss.Color("#626262")
)

// Static styles for the editor chrome
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0"))

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 2)

	FocusedButtonStyle = ButtonStyle.
				Background(focusColor).
				Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	TipBulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(borderColor)
)

func panelStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	if focused {
		style = style.BorderForeground(focusColor)
	}
	return style
}

func renderPanel(title, content string, focused bool) string {
	return panelStyle(focused).Render(PanelTitleStyle.Render(title) + "\n" + content)
}
