package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/apiclient"
	"github.com/marcus/rd/internal/auth"
	"github.com/marcus/rd/internal/models"
	"github.com/marcus/rd/internal/output"
)

var adminCmd = &cobra.Command{
	Use:     "admin",
	Short:   "Manage backend collections (users, activities, rewards, adminActions)",
	GroupID: "admin",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		gate := auth.Gate{BaseDir: getBaseDir()}
		if !gate.Authed() {
			output.Error("not logged in; run 'rd login' first")
			return fmt.Errorf("not logged in")
		}
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List all entries of a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := parseCollection(args[0])
		if err != nil {
			return err
		}
		client := newClient(cmd)

		rows, err := client.ListRaw(context.Background(), collection)
		if err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(rows)
		}

		printRows(rows)
		return nil
	},
}

var adminAddCmd = &cobra.Command{
	Use:   "add <collection> field=value ...",
	Short: "Create an entry in a collection",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := parseCollection(args[0])
		if err != nil {
			return err
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			output.Error("%v", err)
			return err
		}
		client := newClient(cmd)

		created, err := client.CreateRaw(context.Background(), collection, fields)
		if err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}
		output.Success("Added %s entry", collection)
		return output.JSON(created)
	},
}

var adminEditCmd = &cobra.Command{
	Use:   "edit <collection> <id> field=value ...",
	Short: "Update an entry in a collection",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := parseCollection(args[0])
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			output.Error("invalid id %q", args[1])
			return err
		}
		fields, err := parseFields(args[2:])
		if err != nil {
			output.Error("%v", err)
			return err
		}
		client := newClient(cmd)

		updated, err := client.UpdateRaw(context.Background(), collection, id, fields)
		if err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}
		output.Success("Updated %s/%d", collection, id)
		return output.JSON(updated)
	},
}

var adminRmCmd = &cobra.Command{
	Use:     "rm <collection> <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an entry from a collection",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := parseCollection(args[0])
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			output.Error("invalid id %q", args[1])
			return err
		}
		client := newClient(cmd)

		if err := client.DeleteRaw(context.Background(), collection, id); err != nil {
			output.Error("%s", apiclient.Humanize(err))
			return err
		}
		output.Success("Deleted %s/%d", collection, id)
		return nil
	},
}

func parseCollection(arg string) (models.Collection, error) {
	c := models.Collection(arg)
	if !models.IsValidCollection(c) {
		output.Error("unknown collection %q (users|activities|rewards|adminActions)", arg)
		return "", fmt.Errorf("unknown collection %q", arg)
	}
	return c, nil
}

// parseFields turns field=value arguments into a JSON object. Values that
// parse as integers or booleans are sent as such, everything else as strings.
func parseFields(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		if n, err := strconv.Atoi(value); err == nil {
			fields[key] = n
		} else if b, err := strconv.ParseBool(value); err == nil {
			fields[key] = b
		} else {
			fields[key] = value
		}
	}
	return fields, nil
}

// printRows renders raw collection entries as aligned key=value lines, with
// keys in stable order and id first.
func printRows(rows []map[string]any) {
	if len(rows) == 0 {
		fmt.Println("No entries")
		return
	}
	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for k := range row {
			if k != "id" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(row))
		if id, ok := row["id"]; ok {
			parts = append(parts, fmt.Sprintf("id=%v", id))
		}
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, row[k]))
		}
		fmt.Println(strings.Join(parts, "  "))
	}
}

func init() {
	adminListCmd.Flags().Bool("json", false, "output as JSON")

	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminAddCmd)
	adminCmd.AddCommand(adminEditCmd)
	adminCmd.AddCommand(adminRmCmd)
	rootCmd.AddCommand(adminCmd)
}
