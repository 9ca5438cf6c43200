package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/apiclient"
	"github.com/marcus/rd/internal/config"
	"github.com/marcus/rd/internal/output"
)

// validConfigKeys lists the supported config keys for set/get.
var validConfigKeys = []string{
	"server.url",
	"dark_mode",
}

func isValidConfigKey(key string) bool {
	for _, k := range validConfigKeys {
		if k == key {
			return true
		}
	}
	return false
}

func parseBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q (use true/false/1/0)", val)
	}
}

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage rd configuration",
	GroupID: "system",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		if !isValidConfigKey(key) {
			output.Error("unknown config key: %s", key)
			fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
			return fmt.Errorf("unknown config key: %s", key)
		}

		switch key {
		case "server.url":
			if err := config.SetBaseURL(getBaseDir(), val); err != nil {
				output.Error("save config: %v", err)
				return err
			}
		case "dark_mode":
			b, err := parseBool(val)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if err := config.SetDarkMode(getBaseDir(), b); err != nil {
				output.Error("save config: %v", err)
				return err
			}
		}

		output.Success("set %s = %s", key, val)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		if !isValidConfigKey(key) {
			output.Error("unknown config key: %s", key)
			fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
			return fmt.Errorf("unknown config key: %s", key)
		}

		var val string
		switch key {
		case "server.url":
			url, err := config.BaseURL(getBaseDir())
			if err != nil {
				output.Error("load config: %v", err)
				return err
			}
			val = url
			if val == "" {
				val = apiclient.DefaultBaseURL + " (default)"
			}
		case "dark_mode":
			dark, err := config.DarkMode(getBaseDir())
			if err != nil {
				output.Error("load config: %v", err)
				return err
			}
			val = strconv.FormatBool(dark)
		}

		fmt.Println(val)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("load config: %v", err)
			return err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			output.Error("marshal config: %v", err)
			return err
		}

		fmt.Println(string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
