package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/rd/internal/models"
)

// Theme holds the style set for one palette. Two palettes exist, dark and
// light, toggled at runtime with the d key.
type Theme struct {
	Dark bool

	// Panel styles
	Panel       lipgloss.Style
	ActivePanel lipgloss.Style
	PanelTitle  lipgloss.Style

	// Text styles
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Help      lipgloss.Style
	Timestamp lipgloss.Style

	// Feedback styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Points styles
	PointsUp   lipgloss.Style
	PointsDown lipgloss.Style
	PointsCost lipgloss.Style

	// Selected row style
	SelectedRow lipgloss.Style

	// Redemption status styles
	Status map[models.RedemptionStatus]lipgloss.Style

	// Reward category badges
	Category map[models.Category]lipgloss.Style
}

// NewTheme builds the style set for the requested palette
func NewTheme(dark bool) Theme {
	primary := lipgloss.Color("212")
	muted := lipgloss.Color("241")
	success := lipgloss.Color("42")
	warning := lipgloss.Color("214")
	errc := lipgloss.Color("196")
	border := lipgloss.Color("240")
	text := lipgloss.Color("255")
	rowBg := lipgloss.Color("237")
	stamp := lipgloss.Color("244")

	if !dark {
		primary = lipgloss.Color("162")
		muted = lipgloss.Color("245")
		success = lipgloss.Color("28")
		warning = lipgloss.Color("130")
		errc = lipgloss.Color("160")
		border = lipgloss.Color("250")
		text = lipgloss.Color("235")
		rowBg = lipgloss.Color("253")
		stamp = lipgloss.Color("243")
	}

	return Theme{
		Dark: dark,

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		ActivePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Background(rowBg).
			Foreground(text).
			Padding(0, 1),

		Title:     lipgloss.NewStyle().Bold(true),
		Subtle:    lipgloss.NewStyle().Foreground(muted),
		Help:      lipgloss.NewStyle().Foreground(muted),
		Timestamp: lipgloss.NewStyle().Foreground(stamp),

		Success: lipgloss.NewStyle().Foreground(success),
		Warning: lipgloss.NewStyle().Foreground(warning),
		Error:   lipgloss.NewStyle().Foreground(errc),

		PointsUp:   lipgloss.NewStyle().Foreground(success).Bold(true),
		PointsDown: lipgloss.NewStyle().Foreground(errc).Bold(true),
		PointsCost: lipgloss.NewStyle().Foreground(warning),

		SelectedRow: lipgloss.NewStyle().
			Background(rowBg).
			Foreground(text),

		Status: map[models.RedemptionStatus]lipgloss.Style{
			models.RedemptionPending:   lipgloss.NewStyle().Foreground(warning),
			models.RedemptionCompleted: lipgloss.NewStyle().Foreground(success),
			models.RedemptionFailed:    lipgloss.NewStyle().Foreground(errc),
		},

		Category: map[models.Category]lipgloss.Style{
			models.CategoryElectronics: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
			models.CategoryGiftCards:   lipgloss.NewStyle().Foreground(primary),
			models.CategoryMerchandise: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		},
	}
}

// formatStatus renders a redemption status with color
func (t Theme) formatStatus(s models.RedemptionStatus) string {
	style, ok := t.Status[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}

// formatCategory renders a category badge with color
func (t Theme) formatCategory(c models.Category) string {
	style, ok := t.Category[c]
	if !ok {
		return string(c)
	}
	return style.Render("[" + string(c) + "]")
}

// formatDelta renders a signed point delta with color
func (t Theme) formatDelta(points int) string {
	if points >= 0 {
		return t.PointsUp.Render(plusPrefix(points))
	}
	return t.PointsDown.Render(plusPrefix(points))
}
