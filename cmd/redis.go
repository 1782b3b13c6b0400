package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"SoundX/config"
	"SoundX/store"
)

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Check Redis connectivity",
	Long:  `Connect to the configured Redis instance and verify the credential and search-history store is reachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("Connecting to Redis at %s:%s (db %d)...\n", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB)

		if err := store.Connect(cfg); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		defer store.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Fatalf("Redis ping failed: %v", err)
		}
		fmt.Println("Redis connection OK")

		creds, err := store.LoadCredentials(ctx)
		if err != nil {
			log.Fatalf("Failed to read stored credentials: %v", err)
		}
		if creds == nil {
			fmt.Println("No stored backend credentials")
		} else {
			fmt.Printf("Stored binding: source=%s baseUrl=%s user=%s\n", creds.Source, creds.BaseURL, creds.Username)
		}

		records, err := store.SearchRecords(ctx)
		if err != nil {
			log.Fatalf("Failed to read search records: %v", err)
		}
		fmt.Printf("Search records: %d\n", len(records))
	},
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
