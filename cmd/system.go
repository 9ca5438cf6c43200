package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/rd/internal/auth"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show version",
	GroupID: "system",
	Run: func(cmd *cobra.Command, args []string) {
		short, _ := cmd.Flags().GetBool("short")
		if short {
			fmt.Print(version)
			return
		}
		fmt.Printf("rd version %s\n", version)
	},
}

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show login state",
	GroupID: "system",
	Run: func(cmd *cobra.Command, args []string) {
		gate := auth.Gate{BaseDir: getBaseDir()}
		if !gate.Authed() {
			fmt.Println("Not logged in")
			return
		}
		fmt.Println(gate.Username())
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print bare version string")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(whoamiCmd)
}
