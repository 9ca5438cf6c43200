// Package output provides styled terminal output helpers (success, error,
// warning, entity formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/rd/internal/models"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	pointsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	roleStyles   = map[models.Role]lipgloss.Style{
		models.RoleAdmin: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		models.RoleUser:  lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	}
	statusStyles = map[models.RedemptionStatus]lipgloss.Style{
		models.RedemptionPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.RedemptionCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.RedemptionFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Title renders a bold section title
func Title(s string) string {
	return titleStyle.Render(s)
}

// Subtle renders de-emphasized text
func Subtle(s string) string {
	return subtleStyle.Render(s)
}

// FormatRole formats a role with color
func FormatRole(r models.Role) string {
	style, ok := roleStyles[r]
	if !ok {
		return string(r)
	}
	return style.Render(fmt.Sprintf("[%s]", r))
}

// FormatStatus formats a redemption status with color
func FormatStatus(s models.RedemptionStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}

// FormatPoints renders a signed points delta ("+10" / "-25")
func FormatPoints(points int) string {
	if points >= 0 {
		return pointsStyle.Render(fmt.Sprintf("+%d", points))
	}
	return errorStyle.Render(fmt.Sprintf("%d", points))
}

// FormatUserShort renders a one-line user summary
func FormatUserShort(u *models.User) string {
	return fmt.Sprintf("%-4d %s %s  %s",
		u.ID,
		FormatRole(u.Role),
		titleStyle.Render(u.Name),
		subtleStyle.Render(fmt.Sprintf("%d pts", u.Points)))
}

// FormatRewardShort renders a one-line reward summary
func FormatRewardShort(r *models.Reward) string {
	return fmt.Sprintf("%-4d %-12s %s  %s",
		r.ID,
		subtleStyle.Render(string(r.Category)),
		titleStyle.Render(r.Name),
		pointsStyle.Render(fmt.Sprintf("%d pts", r.PointsCost)))
}

// FormatTimestamp renders a timestamp for feed display
func FormatTimestamp(t time.Time) string {
	return subtleStyle.Render(t.Local().Format("2006-01-02 15:04"))
}
