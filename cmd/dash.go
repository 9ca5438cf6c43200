package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/cart"
	"github.com/marcus/rd/internal/config"
	"github.com/marcus/rd/internal/output"
	"github.com/marcus/rd/internal/store"
	"github.com/marcus/rd/pkg/dashboard"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Live TUI dashboard for the rewards program",
	Long: `Launch a live-updating TUI dashboard showing:
- Reward catalog: browse, filter, and add rewards to a cart
- Users: point totals and the top-5 leaderboard
- Activity feed: recent point-earning activity across all users

Key bindings:
  Tab/Shift+Tab  Switch panels
  1/2/3          Jump to panel
  ↑/↓            Select row in active panel
  Enter          Open details modal
  a              Add selected reward to cart
  c              Open cart / checkout
  h              Redemption history
  l              Log an activity
  /              Filter rewards
  s              Cycle reward sort order
  d              Toggle dark mode
  Esc            Close modal
  r              Force refresh
  ?              Toggle help
  q              Quit`,
	GroupID: "browse",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient(cmd)
		stores := store.NewStores(client)

		dark, err := config.DarkMode(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		interval, _ := cmd.Flags().GetDuration("interval")
		if interval < time.Second {
			interval = 30 * time.Second
		}

		model := dashboard.NewModel(stores, cart.New(nil), dashboard.Options{
			Interval: interval,
			Dark:     dark,
			BaseDir:  getBaseDir(),
			Version:  version,
		})

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running dashboard: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashCmd)
	dashCmd.Flags().Duration("interval", 30*time.Second, "Refresh interval (default 30s)")
}
