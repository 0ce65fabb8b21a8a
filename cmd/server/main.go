// Package main is the entry point for the equipment gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-equipment/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-equipment",
	Short: "RPG equipment gRPC server",
	Long:  `RPG equipment creates items from prototypes and stores them in character inventories.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadEnv(cmd); err != nil {
			return err
		}
		return setupLogging(logLevel)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "Redis address")
	rootCmd.PersistentFlags().StringVar(&redisPassword, "redis-password", os.Getenv("REDIS_PASSWORD"), "Redis password")
	rootCmd.PersistentFlags().IntVar(&redisDB, "redis-db", envIntOr("REDIS_DB", 0), "Redis database number")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(importSRDCmd)
	rootCmd.AddCommand(checkDataCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
