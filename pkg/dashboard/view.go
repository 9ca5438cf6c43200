package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/rd/internal/store"
)

// renderView renders the complete TUI view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	// Handle small terminal sizes gracefully
	if m.Width < MinWidth || m.Height < MinHeight {
		return m.renderCompact()
	}

	if m.HelpOpen {
		return m.renderHelp()
	}

	// Render search bar if active or has query
	searchBar := m.renderSearchBar()
	searchBarHeight := 0
	if searchBar != "" {
		searchBarHeight = 2 // Content + border
	}

	// Calculate panel heights (3 panels + footer + optional search bar)
	footerHeight := 1
	availableHeight := m.Height - footerHeight - searchBarHeight
	panelHeight := availableHeight / 3

	rewards := m.renderRewardsPanel(panelHeight)
	users := m.renderUsersPanel(panelHeight)
	activity := m.renderActivityPanel(panelHeight)

	panels := lipgloss.JoinVertical(lipgloss.Left,
		rewards,
		users,
		activity,
	)

	var content string
	if searchBar != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, searchBar, panels)
	} else {
		content = panels
	}

	footer := m.renderFooter()
	base := lipgloss.JoinVertical(lipgloss.Left, content, footer)

	// Overlay modals if open
	if m.FormOpen && m.FormState != nil {
		return m.overlay(m.FormState.Form.View())
	}
	if m.DetailOpen {
		return m.overlay(m.renderDetailModal())
	}
	if m.CartOpen {
		return m.overlay(m.renderCartModal())
	}
	if m.HistoryOpen {
		return m.overlay(m.renderHistoryModal())
	}
	if m.UserHistoryOpen {
		return m.overlay(m.renderUserHistoryModal())
	}

	return base
}

// overlay centers a modal over a blank backdrop
func (m Model) overlay(modal string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")))
}

// renderCompact renders a minimal view for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder

	s.WriteString("rd dash (resize for full view)\n\n")
	s.WriteString(fmt.Sprintf("Rewards: %d\n", m.Stores.Rewards.Len()))
	s.WriteString(fmt.Sprintf("Members: %d\n", m.Stores.Users.Len()))
	s.WriteString(fmt.Sprintf("Cart: %d item(s), %d pts\n", m.Cart.Len(), m.Cart.Total()))
	s.WriteString("\nq:quit r:refresh ?:help")

	return s.String()
}

// renderRewardsPanel renders the reward catalog panel (Panel 1)
func (m Model) renderRewardsPanel(height int) string {
	var lines []string

	rewards := m.visibleRewards()
	switch {
	case m.Stores.Rewards.Status() == store.StatusLoading && len(rewards) == 0:
		lines = append(lines, m.Theme.Subtle.Render("Loading..."))
	case len(rewards) == 0:
		lines = append(lines, m.Theme.Subtle.Render("No rewards match"))
	default:
		offset := m.ScrollOffset[PanelRewards]
		for i := offset; i < len(rewards); i++ {
			r := rewards[i]
			row := fmt.Sprintf("%s %s %s",
				m.Theme.formatCategory(r.Category),
				r.Name,
				m.Theme.PointsCost.Render(fmt.Sprintf("%d pts", r.PointsCost)))
			if m.ActivePanel == PanelRewards && i == m.Cursor[PanelRewards] {
				row = m.Theme.SelectedRow.Render("> " + row)
			} else {
				row = "  " + row
			}
			lines = append(lines, row)
		}
	}

	if msg := m.staleNotice(m.Stores.Rewards.Status(), m.Stores.Rewards.ErrMessage()); msg != "" {
		lines = append([]string{msg}, lines...)
	}

	title := fmt.Sprintf("Rewards [%d]", len(rewards))
	if c := m.category(); c != "" {
		title += " " + string(c)
	}
	title += " sort:" + string(m.Sort)

	return m.wrapPanel(title, strings.Join(lines, "\n"), height, PanelRewards)
}

// renderUsersPanel renders the members panel with the leaderboard (Panel 2)
func (m Model) renderUsersPanel(height int) string {
	var lines []string

	users := m.Stores.Users.Items()
	switch {
	case m.Stores.Users.Status() == store.StatusLoading && len(users) == 0:
		lines = append(lines, m.Theme.Subtle.Render("Loading..."))
	case len(users) == 0:
		lines = append(lines, m.Theme.Subtle.Render("No members"))
	default:
		top := m.leaderboard()
		var board []string
		for rank, u := range top {
			board = append(board, fmt.Sprintf("%s%d %s", medal(rank), u.Points, u.Name))
		}
		lines = append(lines, m.Theme.Subtle.Render("Top earners: ")+strings.Join(board, "  "))

		offset := m.ScrollOffset[PanelUsers]
		for i := offset; i < len(users); i++ {
			u := users[i]
			row := fmt.Sprintf("%-20s %s %s",
				ansi.Truncate(u.Name, 20, "…"),
				m.Theme.PointsCost.Render(fmt.Sprintf("%5d pts", u.Points)),
				m.Theme.Subtle.Render(string(u.Role)))
			if m.ActivePanel == PanelUsers && i == m.Cursor[PanelUsers] {
				row = m.Theme.SelectedRow.Render("> " + row)
			} else {
				row = "  " + row
			}
			lines = append(lines, row)
		}
	}

	if msg := m.staleNotice(m.Stores.Users.Status(), m.Stores.Users.ErrMessage()); msg != "" {
		lines = append([]string{msg}, lines...)
	}

	return m.wrapPanel(fmt.Sprintf("Members [%d]", len(users)), strings.Join(lines, "\n"), height, PanelUsers)
}

// renderActivityPanel renders the activity feed panel (Panel 3)
func (m Model) renderActivityPanel(height int) string {
	var lines []string

	feed := m.activityFeed()
	switch {
	case m.Stores.Activities.Status() == store.StatusLoading && len(feed) == 0:
		lines = append(lines, m.Theme.Subtle.Render("Loading..."))
	case len(feed) == 0:
		lines = append(lines, m.Theme.Subtle.Render("No activity yet"))
	default:
		offset := m.ScrollOffset[PanelActivity]
		for i := offset; i < len(feed); i++ {
			a := feed[i]
			row := fmt.Sprintf("%s %s %s %s",
				m.Theme.Timestamp.Render(a.Timestamp.Format("Jan 02 15:04")),
				m.Theme.formatDelta(a.Points),
				m.userName(a.UserID),
				m.Theme.Subtle.Render(a.Description))
			if m.ActivePanel == PanelActivity && i == m.Cursor[PanelActivity] {
				row = m.Theme.SelectedRow.Render("> " + row)
			} else {
				row = "  " + row
			}
			lines = append(lines, row)
		}
	}

	if msg := m.staleNotice(m.Stores.Activities.Status(), m.Stores.Activities.ErrMessage()); msg != "" {
		lines = append([]string{msg}, lines...)
	}

	return m.wrapPanel(fmt.Sprintf("Activity [%d]", len(feed)), strings.Join(lines, "\n"), height, PanelActivity)
}

// staleNotice renders the stale-data warning for a failed fetch. Data from
// the previous successful fetch stays on screen underneath it.
func (m Model) staleNotice(status store.Status, errMsg string) string {
	if status != store.StatusFailed || errMsg == "" {
		return ""
	}
	return m.Theme.Warning.Render("⚠ stale: " + errMsg)
}

// medal returns the rank marker for a leaderboard position
func medal(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank+1)
	}
}

// renderDetailModal renders the reward detail modal
func (m Model) renderDetailModal() string {
	if m.DetailReward == nil {
		return ""
	}
	r := m.DetailReward

	var s strings.Builder
	s.WriteString(m.Theme.Title.Render(r.Name))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%s  %s\n",
		m.Theme.formatCategory(r.Category),
		m.Theme.PointsCost.Render(fmt.Sprintf("%d pts", r.PointsCost))))
	if r.Image != "" {
		s.WriteString(m.Theme.Subtle.Render(r.Image))
		s.WriteString("\n")
	}

	if m.DetailRender != "" {
		s.WriteString("\n")
		s.WriteString(m.scrolled(m.DetailRender, m.DetailScroll))
	} else if r.Description != "" {
		s.WriteString("\n")
		s.WriteString(m.Theme.Subtle.Render("Rendering..."))
	}

	s.WriteString("\n\n")
	s.WriteString(m.Theme.Help.Render("a:add to cart  esc:close"))

	return m.wrapModal(s.String())
}

// renderCartModal renders the cart contents
func (m Model) renderCartModal() string {
	lines := m.Cart.Lines()

	var s strings.Builder
	s.WriteString(m.Theme.Title.Render(fmt.Sprintf("Cart (%d)", len(lines))))
	s.WriteString("\n\n")

	if len(lines) == 0 {
		s.WriteString(m.Theme.Subtle.Render("Cart is empty"))
	} else {
		for i, l := range lines {
			row := fmt.Sprintf("%-24s %s",
				ansi.Truncate(l.Reward.Name, 24, "…"),
				m.Theme.PointsCost.Render(fmt.Sprintf("%5d pts", l.Reward.PointsCost)))
			if i == m.CartCursor {
				row = m.Theme.SelectedRow.Render("> " + row)
			} else {
				row = "  " + row
			}
			s.WriteString(row)
			s.WriteString("\n")
		}
		s.WriteString("\n")
		s.WriteString(m.Theme.Title.Render(fmt.Sprintf("Total: %d pts", m.Cart.Total())))
	}

	s.WriteString("\n\n")
	s.WriteString(m.Theme.Help.Render("enter:checkout  x:remove  esc:close"))

	return m.wrapModal(s.String())
}

// renderHistoryModal renders the session's redemption history, newest first
func (m Model) renderHistoryModal() string {
	history := m.Cart.History()

	var s strings.Builder
	s.WriteString(m.Theme.Title.Render("Redemptions"))
	s.WriteString("\n\n")

	if len(history) == 0 {
		s.WriteString(m.Theme.Subtle.Render("Nothing redeemed this session"))
	} else {
		var rows []string
		for i := len(history) - 1; i >= 0; i-- {
			rec := history[i]
			rows = append(rows, fmt.Sprintf("%s %-24s %s %s",
				m.Theme.Timestamp.Render(rec.Date.Format("15:04:05")),
				ansi.Truncate(rec.Name, 24, "…"),
				m.Theme.PointsCost.Render(fmt.Sprintf("%5d pts", rec.PointsCost)),
				m.Theme.formatStatus(rec.Status)))
		}
		s.WriteString(m.scrolled(strings.Join(rows, "\n"), m.HistoryScroll))
	}

	s.WriteString("\n\n")
	s.WriteString(m.Theme.Help.Render("j/k:scroll  esc:close"))

	return m.wrapModal(s.String())
}

// renderUserHistoryModal renders the selected member's point history
func (m Model) renderUserHistoryModal() string {
	entries := m.userHistory(m.UserHistoryID)

	var s strings.Builder
	s.WriteString(m.Theme.Title.Render("Point history: " + m.userName(m.UserHistoryID)))
	s.WriteString("\n\n")

	if len(entries) == 0 {
		s.WriteString(m.Theme.Subtle.Render("No point history"))
	} else {
		var rows []string
		for _, e := range entries {
			rows = append(rows, fmt.Sprintf("%s %s %s",
				m.Theme.Timestamp.Render(e.Timestamp.Format("Jan 02 15:04")),
				m.Theme.formatDelta(e.Points),
				e.Kind))
		}
		s.WriteString(m.scrolled(strings.Join(rows, "\n"), m.UserHistoryScroll))
	}

	s.WriteString("\n\n")
	s.WriteString(m.Theme.Help.Render("j/k:scroll  esc:close"))

	return m.wrapModal(s.String())
}

// renderHelp renders the help overlay
func (m Model) renderHelp() string {
	help := `Dashboard keys

  Tab/Shift+Tab  Switch panels
  1/2/3          Jump to panel
  ↑/↓ j/k        Select row
  Enter          Open details (reward or member)
  a              Add selected reward to cart
  c              Cart / checkout
  h              Redemption history
  l              Log an activity
  /              Filter rewards by name
  s              Cycle reward sort order
  f              Cycle category filter
  d              Toggle dark mode
  r              Force refresh
  ?              Close help
  q              Quit`

	return m.Theme.Help.Render(help)
}

// renderSearchBar renders the reward filter bar
func (m Model) renderSearchBar() string {
	if !m.SearchMode && m.SearchQuery == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Filter: ")
	if m.SearchMode {
		sb.WriteString(m.SearchInput.View())
	} else {
		sb.WriteString(m.SearchQuery)
	}

	padding := m.Width - lipgloss.Width(sb.String()) - 12
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(m.Theme.Subtle.Render("[Esc:clear]"))

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(sb.String())
}

// renderFooter renders the footer with key hints, status, and refresh time
func (m Model) renderFooter() string {
	keys := m.Theme.Help.Render("tab:panels enter:open a:cart+ c:cart h:history l:log ?:help q:quit")

	status := ""
	if m.StatusMessage != "" {
		if m.StatusIsError {
			status = m.Theme.Error.Render(" " + m.StatusMessage + " ")
		} else {
			status = m.Theme.Success.Render(" " + m.StatusMessage + " ")
		}
	}

	cartBadge := ""
	if n := m.Cart.Len(); n > 0 {
		cartBadge = m.Theme.Warning.Render(fmt.Sprintf(" [cart %d | %d pts] ", n, m.Cart.Total()))
	}

	refresh := ""
	if !m.LastRefresh.IsZero() {
		refresh = m.Theme.Timestamp.Render(fmt.Sprintf("Last: %s", m.LastRefresh.Format("15:04:05")))
	}

	padding := m.Width - lipgloss.Width(keys) - lipgloss.Width(status) - lipgloss.Width(cartBadge) - lipgloss.Width(refresh) - 2
	if padding < 0 {
		padding = 0
	}

	return fmt.Sprintf(" %s%s%s%s%s", keys, strings.Repeat(" ", padding), status, cartBadge, refresh)
}

// wrapPanel wraps content in a panel with title and border
func (m Model) wrapPanel(title, content string, height int, panel Panel) string {
	style := m.Theme.Panel
	if m.ActivePanel == panel {
		style = m.Theme.ActivePanel
	}

	titleStr := m.Theme.PanelTitle.Render(title)

	contentWidth := m.Width - 4 // Account for border and padding
	lines := strings.Split(content, "\n")
	contentHeight := height - 3 // Title + border

	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	for i, line := range lines {
		if lipgloss.Width(line) > contentWidth {
			lines[i] = ansi.Truncate(line, contentWidth, "…")
		}
	}

	body := strings.Join(lines, "\n")
	inner := lipgloss.JoinVertical(lipgloss.Left, titleStr, body)

	return style.Width(m.Width - 2).Render(inner)
}

// wrapModal wraps modal content in a border sized for the terminal
func (m Model) wrapModal(content string) string {
	width := m.detailContentWidth() + 4

	style := m.Theme.ActivePanel
	return style.Width(width).Render(content)
}

// scrolled drops the first n lines of a block of text
func (m Model) scrolled(content string, n int) string {
	if n <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if n >= len(lines) {
		n = len(lines) - 1
	}
	return strings.Join(lines[n:], "\n")
}
