package cmd

import (
	"github.com/spf13/cobra"

	"SoundX/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the SoundX shell server",
	Long:  `Start the local HTTP server the SoundX frontend talks to for cache management, media resolution and player state fan-out.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
