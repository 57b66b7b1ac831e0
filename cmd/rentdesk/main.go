package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/config"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/database"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rentdesk",
		Short:         "Rental property management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd(), markOverdueCmd())
	return root
}

// loadConfig reads the optional dotenv file, then the environment.
func loadConfig() *config.Config {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load env file", "path", envFile, "error", err)
	}
	cfg := config.Load()
	logging.Setup(cfg.AppEnv)
	return cfg
}

// connect opens and migrates the configured database.
func connect(cfg *config.Config) error {
	if err := database.Connect(cfg); err != nil {
		return err
	}
	return database.Migrate(database.DB)
}
