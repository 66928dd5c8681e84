package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nuffylu-cyber/property-management-system/internal/interfaces/cli/migrate"
	"github.com/nuffylu-cyber/property-management-system/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pms",
		Short: "Property maintenance back office",
		Long:  `Back-office service for property maintenance tickets: lifecycle engine, audit trail, notifications and statistics.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
