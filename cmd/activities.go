package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/apiclient"
	"github.com/marcus/rd/internal/models"
	"github.com/marcus/rd/internal/output"
	"github.com/marcus/rd/internal/store"
)

var activitiesCmd = &cobra.Command{
	Use:     "activities",
	Aliases: []string{"feed", "a"},
	Short:   "Show the activity feed",
	GroupID: "browse",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores := store.NewStores(newClient(cmd))
		ctx := context.Background()

		stores.Activities.Fetch(ctx)
		if err := stores.Activities.Err(); err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}
		// User names enrich the feed but are not required for it.
		stores.Users.Fetch(ctx)

		activities := stores.Activities.Items()

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(activities)
		}

		printFeed(activities, stores.Users.Items())
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:   "log [activity]",
	Short: "Log a predefined activity for the current session",
	Long: `Log a predefined activity. By default the entry is appended locally only
(it is not sent to the backend and disappears when the process exits); pass
--post to create it on the backend instead.

Activities: ` + activityOptionList(),
	GroupID: "browse",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores := store.NewStores(newClient(cmd))
		ctx := context.Background()

		option, err := resolveActivityOption(strings.Join(args, " "))
		if err != nil {
			output.Error("%v", err)
			return err
		}

		userID, _ := cmd.Flags().GetInt("user")

		stores.Activities.Fetch(ctx)
		stores.Users.Fetch(ctx)

		entry := models.Activity{
			// Client-generated id; unique within this session only.
			ID:          int(time.Now().UnixMilli()),
			UserID:      userID,
			Description: option.Description,
			Points:      option.Points,
			Timestamp:   time.Now(),
		}

		if post, _ := cmd.Flags().GetBool("post"); post {
			created, err := stores.Activities.Create(ctx, entry)
			if err != nil {
				output.Error("%s", apiclient.Humanize(err))
				return err
			}
			output.Success("Logged %s (+%d points) as #%d", created.Description, created.Points, created.ID)
		} else {
			stores.Activities.AddLocal(entry)
			output.Success("Logged %s (+%d points) locally", entry.Description, entry.Points)
		}

		printFeed(stores.Activities.Items(), stores.Users.Items())
		return nil
	},
}

// printFeed renders activities newest-last with user names resolved.
func printFeed(activities []models.Activity, users []models.User) {
	if len(activities) == 0 {
		fmt.Println("No activities yet")
		return
	}
	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for _, a := range activities {
		name := names[a.UserID]
		if name == "" {
			name = fmt.Sprintf("User %d", a.UserID)
		}
		fmt.Printf("%s  %s - %s %s\n",
			output.FormatTimestamp(a.Timestamp), name, a.Description,
			output.FormatPoints(a.Points))
	}
}

// resolveActivityOption matches the argument against the predefined activity
// options; an empty argument picks the first one.
func resolveActivityOption(arg string) (models.ActivityOption, error) {
	if arg == "" {
		return models.ActivityOptions[0], nil
	}
	for _, opt := range models.ActivityOptions {
		if strings.EqualFold(opt.Description, arg) {
			return opt, nil
		}
	}
	return models.ActivityOption{}, fmt.Errorf("unknown activity %q; choose one of: %s", arg, activityOptionList())
}

func activityOptionList() string {
	names := make([]string, len(models.ActivityOptions))
	for i, opt := range models.ActivityOptions {
		names[i] = fmt.Sprintf("%s (+%d)", opt.Description, opt.Points)
	}
	return strings.Join(names, ", ")
}

func init() {
	activitiesCmd.Flags().Bool("json", false, "output as JSON")

	logCmd.Flags().Int("user", 0, "user id to log the activity for")
	logCmd.Flags().Bool("post", false, "create the activity on the backend instead of locally")

	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(logCmd)
}
