package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"SoundX/cache"
	"SoundX/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the local audio cache",
}

var cacheSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the total size of the audio cache",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		m, err := cache.NewManager(cfg.CacheDir)
		if err != nil {
			log.Fatalf("Failed to open cache: %v", err)
		}
		defer m.Close()

		size, err := m.Size()
		if err != nil {
			log.Fatalf("Failed to read cache size: %v", err)
		}
		fmt.Printf("Cache directory: %s\n", cfg.CacheDir)
		fmt.Printf("Total size: %.2f MB (%d bytes)\n", float64(size)/(1024*1024), size)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached audio files",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		m, err := cache.NewManager(cfg.CacheDir)
		if err != nil {
			log.Fatalf("Failed to open cache: %v", err)
		}
		defer m.Close()

		if err := m.Clear(); err != nil {
			log.Fatalf("Failed to clear cache: %v", err)
		}
		fmt.Println("Cache cleared")
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheSizeCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
