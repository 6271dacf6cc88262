//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for smartstore-dw.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for smartstore-dw.
type Config struct {
	// DataDir is the root directory holding raw extracts, prepared
	// tables, the warehouse file, and cube outputs.
	DataDir string `mapstructure:"data_dir"`

	// Warehouse overrides the warehouse database path.
	// Empty means <data_dir>/warehouse/smartstore.db.
	Warehouse string `mapstructure:"warehouse"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed holds configuration for the seed subcommand.
	Seed SeedConfig `mapstructure:"seed"`

	// Cube holds configuration for the cube subcommand.
	Cube CubeConfig `mapstructure:"cube"`
}

// SeedConfig holds configuration for raw-extract generation.
type SeedConfig struct {
	// Customers is the number of customer rows to generate.
	Customers int `mapstructure:"customers"`

	// Products is the number of product rows to generate.
	Products int `mapstructure:"products"`

	// Sales is the number of sale rows to generate.
	Sales int `mapstructure:"sales"`

	// Seed is the RNG seed for reproducible extracts (0 = random).
	Seed uint64 `mapstructure:"seed"`

	// DirtyPercent is the share of rows (0-100) that receive an
	// injected defect.
	DirtyPercent int `mapstructure:"dirty_percent"`
}

// CubeConfig holds configuration for cube building.
type CubeConfig struct {
	// Dimensions are the two joined attributes the cube groups by.
	Dimensions []string `mapstructure:"dimensions"`

	// Measure is the fact column aggregated per cell.
	Measure string `mapstructure:"measure"`

	// Output overrides the cube artifact path.
	// Empty means <data_dir>/cubes/sales_cube.csv.
	Output string `mapstructure:"output"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  "data",
		LogLevel: "info",
		Seed: SeedConfig{
			Customers:    200,
			Products:     120,
			Sales:        2500,
			DirtyPercent: 8,
		},
		Cube: CubeConfig{
			Dimensions: []string{"region", "category"},
			Measure:    "sale_amount",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./smartstore-dw.yaml
// 3. ~/.config/smartstore-dw/smartstore-dw.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("smartstore-dw")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "smartstore-dw"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// RawDir returns the directory holding raw extracts.
func (c *Config) RawDir() string {
	return filepath.Join(c.DataDir, "raw")
}

// PreparedDir returns the directory holding prepared tables.
func (c *Config) PreparedDir() string {
	return filepath.Join(c.DataDir, "prepared")
}

// WarehousePath returns the warehouse database file path.
func (c *Config) WarehousePath() string {
	if c.Warehouse != "" {
		return c.Warehouse
	}
	return filepath.Join(c.DataDir, "warehouse", "smartstore.db")
}

// CubeOutput returns the cube artifact path.
func (c *Config) CubeOutput() string {
	if c.Cube.Output != "" {
		return c.Cube.Output
	}
	return filepath.Join(c.DataDir, "cubes", "sales_cube.csv")
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Seed.Customers < 1 {
		return fmt.Errorf("seed customer count must be at least 1")
	}
	if c.Seed.Products < 1 {
		return fmt.Errorf("seed product count must be at least 1")
	}
	if c.Seed.Sales < 1 {
		return fmt.Errorf("seed sale count must be at least 1")
	}
	if c.Seed.DirtyPercent < 0 || c.Seed.DirtyPercent > 100 {
		return fmt.Errorf("dirty_percent must be between 0 and 100")
	}
	return nil
}

// ValidateCube checks configuration required for the cube command.
func (c *Config) ValidateCube() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Cube.Dimensions) != 2 {
		return fmt.Errorf("exactly two cube dimensions are required, got %d",
			len(c.Cube.Dimensions))
	}
	if c.Cube.Dimensions[0] == c.Cube.Dimensions[1] {
		return fmt.Errorf("cube dimensions must be distinct")
	}
	if c.Cube.Measure == "" {
		return fmt.Errorf("cube measure is required")
	}
	return nil
}
