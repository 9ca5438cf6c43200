package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/auth"
	"github.com/marcus/rd/internal/output"
)

var loginCmd = &cobra.Command{
	Use:     "login",
	Short:   "Log in to unlock admin commands",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" || password == "" {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Username").
						Value(&username),
					huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Value(&password),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		}

		gate := auth.Gate{BaseDir: getBaseDir()}
		if err := gate.Login(username, password); err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				output.Error("invalid credentials")
				return err
			}
			output.Error("saving login state: %v", err)
			return err
		}
		output.Success("Logged in as %s", username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Log out and lock admin commands",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gate := auth.Gate{BaseDir: getBaseDir()}
		if !gate.Authed() {
			fmt.Println("Not logged in")
			return nil
		}
		if err := gate.Logout(); err != nil {
			output.Error("saving login state: %v", err)
			return err
		}
		output.Success("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "username (prompted if omitted)")
	loginCmd.Flags().String("password", "", "password (prompted if omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
