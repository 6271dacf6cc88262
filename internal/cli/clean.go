package cli

import (
	"github.com/spf13/cobra"

	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/internal/pipeline"
)

var cleanDataset string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean raw extracts into prepared tables",
	Long: `Clean the raw CSV extracts into prepared tables: resolve legacy header
spellings, apply missing-value policies, coerce types, deduplicate primary
keys, and enforce value ranges. Rejected rows are counted per dataset and
reported; a dataset whose extract is missing or structurally broken fails
without stopping its siblings.

Example:
  smartstore-dw clean
  smartstore-dw clean --dataset sales`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanDataset, "dataset", "",
		"clean a single dataset (default: all)")
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	reports, err := pipeline.CleanAll(cfg.RawDir(), cfg.PreparedDir(), cleanDataset)
	if err != nil {
		return err
	}

	rowsOut := 0
	for _, r := range reports {
		rowsOut += r.RowsOut
	}

	logging.Info().
		Int("datasets", len(reports)).
		Int("rows_out", rowsOut).
		Str("prepared_dir", cfg.PreparedDir()).
		Msg("Cleaning complete")

	return nil
}
