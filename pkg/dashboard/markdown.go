package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// renderDetailAsync returns a command that renders the reward description in
// the background; glamour is too slow for the render path.
func (m Model) renderDetailAsync(rewardID int, desc string, width int) tea.Cmd {
	dark := m.Theme.Dark
	return func() tea.Msg {
		return MarkdownRenderedMsg{
			RewardID: rewardID,
			Render:   preRenderMarkdown(desc, width, dark),
		}
	}
}

// preRenderMarkdown renders markdown once (expensive operation)
func preRenderMarkdown(text string, width int, dark bool) string {
	if text == "" {
		return ""
	}

	style := "light"
	if dark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text // fallback to plain text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text // fallback to plain text
	}

	// Glamour adds lots of trailing newlines - strip them all
	return strings.TrimRight(rendered, "\n\r\t ")
}
