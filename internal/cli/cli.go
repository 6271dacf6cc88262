//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for smartstore-dw.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/smartstore/smartstore-dw/internal/config"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	dataDir  string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "smartstore-dw",
		Short: "Retail data warehouse pipeline: clean, load, and cube",
		Long: `smartstore-dw is a CLI tool that turns raw retail extracts into an
analysis-ready star schema and pre-aggregated OLAP cubes.

The pipeline has three stages: 'clean' repairs and filters raw CSV extracts
into prepared tables, 'load' populates the SQLite warehouse with referential
integrity enforced, and 'cube' aggregates the joined star schema into a
two-dimensional cube artifact. 'seed' generates realistic raw extracts with
injected defects for exercising the pipeline end to end.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./smartstore-dw.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"root directory for raw, prepared, warehouse, and cube data")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(cubeCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List registered datasets",
	Long: `List all registered datasets with their role in the star schema.
Dimensions are always cleaned and loaded before the fact.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Registered datasets:")
		cmd.Println()
		for _, spec := range datasets.All() {
			cmd.Printf("  %-10s %-10s %s\n", spec.Name, spec.Role, spec.Description)
		}
		cmd.Println()
		cmd.Printf("Raw extracts are read from <data-dir>/raw, prepared tables are\n")
		cmd.Printf("written to <data-dir>/prepared.\n")
	},
}
