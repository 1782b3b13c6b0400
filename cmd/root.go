package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"SoundX/server"
)

var rootCmd = &cobra.Command{
	Use:   "soundx",
	Short: "SoundX is the shell backend for the SoundX music player.",
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
