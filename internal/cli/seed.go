package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smartstore/smartstore-dw/internal/datagen"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/logging"
)

var (
	seedCustomers int
	seedProducts  int
	seedSales     int
	seedSeed      uint64
	seedDirty     int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate raw extracts with injected defects",
	Long: `Generate raw CSV extracts for every registered dataset, written with
the legacy header spellings the cleaner resolves. A configurable share of
rows receives an injected defect (duplicate keys, missing cells,
unparseable values, out-of-range values, dangling references) so the
cleaning and loading stages have something to reject.

Example:
  smartstore-dw seed --customers 500 --products 200 --sales 10000 --dirty 10
  smartstore-dw seed --seed 42`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCustomers, "customers", 0,
		"number of customer rows to generate")
	seedCmd.Flags().IntVar(&seedProducts, "products", 0,
		"number of product rows to generate")
	seedCmd.Flags().IntVar(&seedSales, "sales", 0,
		"number of sale rows to generate")
	seedCmd.Flags().Uint64Var(&seedSeed, "seed", 0,
		"RNG seed for reproducible extracts (0 = random)")
	seedCmd.Flags().IntVar(&seedDirty, "dirty", -1,
		"percent of rows receiving an injected defect (0-100)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if seedCustomers > 0 {
		cfg.Seed.Customers = seedCustomers
	}
	if seedProducts > 0 {
		cfg.Seed.Products = seedProducts
	}
	if seedSales > 0 {
		cfg.Seed.Sales = seedSales
	}
	if seedSeed != 0 {
		cfg.Seed.Seed = seedSeed
	}
	if seedDirty >= 0 {
		cfg.Seed.DirtyPercent = seedDirty
	}

	// Validate configuration
	if err := cfg.ValidateSeed(); err != nil {
		return err
	}

	faker := datagen.NewFaker()
	if cfg.Seed.Seed != 0 {
		faker = datagen.NewFakerWithSeed(cfg.Seed.Seed)
	}

	rows := map[string]int{
		"customers": cfg.Seed.Customers,
		"products":  cfg.Seed.Products,
		"sales":     cfg.Seed.Sales,
	}

	logging.Info().
		Int("customers", cfg.Seed.Customers).
		Int("products", cfg.Seed.Products).
		Int("sales", cfg.Seed.Sales).
		Int("dirty_percent", cfg.Seed.DirtyPercent).
		Msg("Generating raw extracts")

	for _, spec := range datasets.All() {
		raw := spec.Seed(faker, datasets.SeedParams{
			Rows:         rows[spec.Name],
			DirtyPercent: cfg.Seed.DirtyPercent,
			Customers:    cfg.Seed.Customers,
			Products:     cfg.Seed.Products,
		})

		path := filepath.Join(cfg.RawDir(), spec.RawFile)
		if err := raw.WriteFile(path); err != nil {
			return fmt.Errorf("failed to write raw extract %s: %w", spec.Name, err)
		}

		logging.Info().
			Str("dataset", spec.Name).
			Str("path", path).
			Int("rows", len(raw.Rows)).
			Msg("Wrote raw extract")
	}

	logging.Info().
		Str("raw_dir", cfg.RawDir()).
		Msg("Seeding complete")

	return nil
}
