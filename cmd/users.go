package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/apiclient"
	"github.com/marcus/rd/internal/catalog"
	"github.com/marcus/rd/internal/models"
	"github.com/marcus/rd/internal/output"
	"github.com/marcus/rd/internal/points"
	"github.com/marcus/rd/internal/store"
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"u"},
	Short:   "List users with points, optionally with their point history",
	GroupID: "browse",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores := store.NewStores(newClient(cmd))
		ctx := context.Background()

		withHistory, _ := cmd.Flags().GetBool("history")

		stores.Users.Fetch(ctx)
		if err := stores.Users.Err(); err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}
		if withHistory {
			// History needs both feeds; a failure leaves stale-but-available
			// snapshots, so keep going and show what we have.
			stores.Activities.Fetch(ctx)
			stores.AdminActions.Fetch(ctx)
			if err := stores.Activities.Err(); err != nil {
				output.Warning("activities unavailable: %s", apiclient.Humanize(err))
			}
			if err := stores.AdminActions.Err(); err != nil {
				output.Warning("admin actions unavailable: %s", apiclient.Humanize(err))
			}
		}

		search, _ := cmd.Flags().GetString("search")
		roleStr, _ := cmd.Flags().GetString("role")
		role := models.Role(roleStr)
		if roleStr != "" && !models.IsValidRole(role) {
			output.Error("invalid role %q (admin|user)", roleStr)
			return fmt.Errorf("invalid role %q", roleStr)
		}

		users := catalog.FilterUsers(stores.Users.Items(), search, role)

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(users)
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}

		for i := range users {
			u := &users[i]
			fmt.Println(output.FormatUserShort(u))
			if !withHistory {
				continue
			}
			history := points.History(u.ID, stores.Activities.Items(), stores.AdminActions.Items())
			for _, e := range history {
				fmt.Printf("     %s %s %s\n",
					output.FormatPoints(e.Points), e.Kind, output.FormatTimestamp(e.Timestamp))
			}
		}
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"top"},
	Short:   "Show the top users by points",
	GroupID: "browse",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores := store.NewStores(newClient(cmd))

		stores.Users.Fetch(context.Background())
		if err := stores.Users.Err(); err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		ranked := points.Leaderboard(stores.Users.Items(), limit)

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(ranked)
		}

		for i := range ranked {
			u := &ranked[i]
			fmt.Printf("%s %s  %s\n",
				output.Title(fmt.Sprintf("#%d", i+1)), u.Name,
				output.Subtle(fmt.Sprintf("%d points", u.Points)))
		}
		return nil
	},
}

func init() {
	usersCmd.Flags().String("search", "", "filter users by name")
	usersCmd.Flags().String("role", "", "filter users by role (admin|user)")
	usersCmd.Flags().Bool("history", false, "show each user's point history")
	usersCmd.Flags().Bool("json", false, "output as JSON")

	leaderboardCmd.Flags().Int("limit", 5, "number of users to show")
	leaderboardCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(leaderboardCmd)
}
