//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	// Check default values
	if cfg.DataDir != "data" {
		t.Errorf("Expected DataDir 'data', got '%s'", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.Warehouse != "" {
		t.Errorf("Expected empty Warehouse override, got '%s'", cfg.Warehouse)
	}

	// Seed defaults
	if cfg.Seed.Customers != 200 {
		t.Errorf("Expected Seed.Customers 200, got %d", cfg.Seed.Customers)
	}
	if cfg.Seed.Products != 120 {
		t.Errorf("Expected Seed.Products 120, got %d", cfg.Seed.Products)
	}
	if cfg.Seed.Sales != 2500 {
		t.Errorf("Expected Seed.Sales 2500, got %d", cfg.Seed.Sales)
	}
	if cfg.Seed.DirtyPercent != 8 {
		t.Errorf("Expected Seed.DirtyPercent 8, got %d", cfg.Seed.DirtyPercent)
	}

	// Cube defaults
	if len(cfg.Cube.Dimensions) != 2 ||
		cfg.Cube.Dimensions[0] != "region" || cfg.Cube.Dimensions[1] != "category" {
		t.Errorf("Expected Cube.Dimensions [region category], got %v", cfg.Cube.Dimensions)
	}
	if cfg.Cube.Measure != "sale_amount" {
		t.Errorf("Expected Cube.Measure 'sale_amount', got '%s'", cfg.Cube.Measure)
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join("some", "dir")

	if got := cfg.RawDir(); got != filepath.Join("some", "dir", "raw") {
		t.Errorf("RawDir mismatch: %s", got)
	}
	if got := cfg.PreparedDir(); got != filepath.Join("some", "dir", "prepared") {
		t.Errorf("PreparedDir mismatch: %s", got)
	}
	if got := cfg.WarehousePath(); got != filepath.Join("some", "dir", "warehouse", "smartstore.db") {
		t.Errorf("WarehousePath mismatch: %s", got)
	}
	if got := cfg.CubeOutput(); got != filepath.Join("some", "dir", "cubes", "sales_cube.csv") {
		t.Errorf("CubeOutput mismatch: %s", got)
	}

	// Explicit overrides win over derived paths
	cfg.Warehouse = "/tmp/custom.db"
	if got := cfg.WarehousePath(); got != "/tmp/custom.db" {
		t.Errorf("WarehousePath should honor override, got %s", got)
	}
	cfg.Cube.Output = "/tmp/cube.csv"
	if got := cfg.CubeOutput(); got != "/tmp/cube.csv" {
		t.Errorf("CubeOutput should honor override, got %s", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantError bool
	}{
		{
			name:      "valid config",
			cfg:       &Config{DataDir: "data"},
			wantError: false,
		},
		{
			name:      "missing data dir",
			cfg:       &Config{},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestConfigValidateSeed(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantError bool
	}{
		{
			name: "valid seed config",
			cfg: &Config{
				DataDir: "data",
				Seed: SeedConfig{
					Customers:    10,
					Products:     10,
					Sales:        100,
					DirtyPercent: 5,
				},
			},
			wantError: false,
		},
		{
			name: "zero customers",
			cfg: &Config{
				DataDir: "data",
				Seed: SeedConfig{
					Customers:    0,
					Products:     10,
					Sales:        100,
					DirtyPercent: 5,
				},
			},
			wantError: true,
		},
		{
			name: "zero products",
			cfg: &Config{
				DataDir: "data",
				Seed: SeedConfig{
					Customers:    10,
					Products:     0,
					Sales:        100,
					DirtyPercent: 5,
				},
			},
			wantError: true,
		},
		{
			name: "zero sales",
			cfg: &Config{
				DataDir: "data",
				Seed: SeedConfig{
					Customers:    10,
					Products:     10,
					Sales:        0,
					DirtyPercent: 5,
				},
			},
			wantError: true,
		},
		{
			name: "dirty percent above 100",
			cfg: &Config{
				DataDir: "data",
				Seed: SeedConfig{
					Customers:    10,
					Products:     10,
					Sales:        100,
					DirtyPercent: 101,
				},
			},
			wantError: true,
		},
		{
			name: "negative dirty percent",
			cfg: &Config{
				DataDir: "data",
				Seed: SeedConfig{
					Customers:    10,
					Products:     10,
					Sales:        100,
					DirtyPercent: -1,
				},
			},
			wantError: true,
		},
		{
			name: "missing data dir for seed",
			cfg: &Config{
				Seed: SeedConfig{
					Customers:    10,
					Products:     10,
					Sales:        100,
					DirtyPercent: 5,
				},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateSeed()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestConfigValidateCube(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantError bool
	}{
		{
			name: "valid cube config",
			cfg: &Config{
				DataDir: "data",
				Cube: CubeConfig{
					Dimensions: []string{"region", "category"},
					Measure:    "sale_amount",
				},
			},
			wantError: false,
		},
		{
			name: "one dimension",
			cfg: &Config{
				DataDir: "data",
				Cube: CubeConfig{
					Dimensions: []string{"region"},
					Measure:    "sale_amount",
				},
			},
			wantError: true,
		},
		{
			name: "three dimensions",
			cfg: &Config{
				DataDir: "data",
				Cube: CubeConfig{
					Dimensions: []string{"region", "category", "store_id"},
					Measure:    "sale_amount",
				},
			},
			wantError: true,
		},
		{
			name: "duplicate dimensions",
			cfg: &Config{
				DataDir: "data",
				Cube: CubeConfig{
					Dimensions: []string{"region", "region"},
					Measure:    "sale_amount",
				},
			},
			wantError: true,
		},
		{
			name: "missing measure",
			cfg: &Config{
				DataDir: "data",
				Cube: CubeConfig{
					Dimensions: []string{"region", "category"},
				},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateCube()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "smartstore-dw.yaml")

	configContent := `
data_dir: "/srv/smartstore/data"
warehouse: "/srv/smartstore/dw/store.db"
log_level: "debug"

seed:
  customers: 50
  products: 40
  sales: 900
  seed: 42
  dirty_percent: 12

cube:
  dimensions: ["region", "payment_type"]
  measure: "discount_percent"
  output: "/srv/smartstore/cubes/out.csv"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify loaded values
	if cfg.DataDir != "/srv/smartstore/data" {
		t.Errorf("DataDir mismatch: %s", cfg.DataDir)
	}
	if cfg.Warehouse != "/srv/smartstore/dw/store.db" {
		t.Errorf("Warehouse mismatch: %s", cfg.Warehouse)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel mismatch: %s", cfg.LogLevel)
	}
	if cfg.Seed.Customers != 50 {
		t.Errorf("Seed.Customers mismatch: %d", cfg.Seed.Customers)
	}
	if cfg.Seed.Products != 40 {
		t.Errorf("Seed.Products mismatch: %d", cfg.Seed.Products)
	}
	if cfg.Seed.Sales != 900 {
		t.Errorf("Seed.Sales mismatch: %d", cfg.Seed.Sales)
	}
	if cfg.Seed.Seed != 42 {
		t.Errorf("Seed.Seed mismatch: %d", cfg.Seed.Seed)
	}
	if cfg.Seed.DirtyPercent != 12 {
		t.Errorf("Seed.DirtyPercent mismatch: %d", cfg.Seed.DirtyPercent)
	}
	if len(cfg.Cube.Dimensions) != 2 || cfg.Cube.Dimensions[1] != "payment_type" {
		t.Errorf("Cube.Dimensions mismatch: %v", cfg.Cube.Dimensions)
	}
	if cfg.Cube.Measure != "discount_percent" {
		t.Errorf("Cube.Measure mismatch: %s", cfg.Cube.Measure)
	}
	if cfg.Cube.Output != "/srv/smartstore/cubes/out.csv" {
		t.Errorf("Cube.Output mismatch: %s", cfg.Cube.Output)
	}
}

func TestLoadConfigFileNotFound(t *testing.T) {
	// When a specific config file is provided but doesn't exist, Load returns an error
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load should error when specified config file doesn't exist")
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	// When no config file is specified (empty string), Load returns defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should not error with empty path, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load should return default config")
	}
	// Should have default values
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default LogLevel 'info', got '%s'", cfg.LogLevel)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidContent := `
data_dir: [invalid yaml
  that: won't parse
`
	err := os.WriteFile(configPath, []byte(invalidContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}
