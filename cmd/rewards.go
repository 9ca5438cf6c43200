package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/apiclient"
	"github.com/marcus/rd/internal/catalog"
	"github.com/marcus/rd/internal/models"
	"github.com/marcus/rd/internal/output"
	"github.com/marcus/rd/internal/store"
)

var rewardsCmd = &cobra.Command{
	Use:     "rewards",
	Aliases: []string{"r"},
	Short:   "Browse the reward catalog",
	GroupID: "browse",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores := store.NewStores(newClient(cmd))

		stores.Rewards.Fetch(context.Background())
		if err := stores.Rewards.Err(); err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}

		categoryStr, _ := cmd.Flags().GetString("category")
		category := models.Category(categoryStr)
		if categoryStr != "" && !models.IsValidCategory(category) {
			output.Error("invalid category %q (electronics|giftcards|merchandise)", categoryStr)
			return fmt.Errorf("invalid category %q", categoryStr)
		}

		sortStr, _ := cmd.Flags().GetString("sort")
		mode := catalog.SortMode(sortStr)
		if !catalog.IsValidSortMode(mode) {
			output.Error("invalid sort %q (points-asc|points-desc|name)", sortStr)
			return fmt.Errorf("invalid sort %q", sortStr)
		}

		search, _ := cmd.Flags().GetString("search")
		rewards := catalog.Filter(stores.Rewards.Items(), category, search, mode)

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(rewards)
		}

		if len(rewards) == 0 {
			fmt.Println("No rewards found")
			return nil
		}
		for i := range rewards {
			fmt.Println(output.FormatRewardShort(&rewards[i]))
		}
		return nil
	},
}

var rewardShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one reward with its full description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			output.Error("invalid reward id %q", args[0])
			return err
		}

		stores := store.NewStores(newClient(cmd))
		stores.Rewards.Fetch(context.Background())
		if err := stores.Rewards.Err(); err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}

		var reward *models.Reward
		for _, r := range stores.Rewards.Items() {
			if r.ID == id {
				reward = &r
				break
			}
		}
		if reward == nil {
			output.Error("no reward with id %d", id)
			return fmt.Errorf("no reward with id %d", id)
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(reward)
		}

		fmt.Println(output.FormatRewardShort(reward))
		if reward.Description != "" {
			rendered, err := output.RenderMarkdown(reward.Description)
			if err != nil {
				fmt.Println(reward.Description)
			} else {
				fmt.Println(rendered)
			}
		}
		if reward.Image != "" {
			fmt.Println(output.Subtle("image: " + reward.Image))
		}
		return nil
	},
}

func init() {
	rewardsCmd.Flags().String("category", "", "filter by category (electronics|giftcards|merchandise)")
	rewardsCmd.Flags().String("sort", string(catalog.SortPointsAsc), "sort order (points-asc|points-desc|name)")
	rewardsCmd.Flags().String("search", "", "filter rewards by name")
	rewardsCmd.Flags().Bool("json", false, "output as JSON")
	rewardShowCmd.Flags().Bool("json", false, "output as JSON")

	rewardsCmd.AddCommand(rewardShowCmd)
	rootCmd.AddCommand(rewardsCmd)
}
