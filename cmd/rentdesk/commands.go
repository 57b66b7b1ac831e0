package main

import (
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/database"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/seed"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if err := connect(cfg); err != nil {
				return err
			}
			defer database.Close(database.DB)

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo landlord, tenants and properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if err := connect(cfg); err != nil {
				return err
			}
			defer database.Close(database.DB)

			inserted, err := seed.Run(database.DB)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			if !inserted {
				fmt.Fprintln(cmd.OutOrStdout(), "demo data already present")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo data loaded, sign in as %s / landlord123\n", seed.LandlordEmail)
			return nil
		},
	}
}

func markOverdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-overdue",
		Short: "Mark PENDING payments past their due date as OVERDUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if err := connect(cfg); err != nil {
				return err
			}
			defer database.Close(database.DB)

			payments := services.NewPaymentService(database.DB, access.NewAuthorizer(database.DB))
			marked, err := payments.MarkOverdue(time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d payment(s) marked overdue\n", marked)
			return nil
		},
	}
}
