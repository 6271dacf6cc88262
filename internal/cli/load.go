package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/internal/pipeline"
)

var loadWarehouse string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load prepared tables into the warehouse",
	Long: `Load the prepared tables into the SQLite warehouse. The star schema is
dropped and recreated inside a single transaction, dimensions load before
the fact, and fact rows with unresolved references are rejected and
counted. Reloading the same prepared tables yields the same warehouse.

Example:
  smartstore-dw load
  smartstore-dw load --warehouse /tmp/smartstore.db`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadWarehouse, "warehouse", "",
		"warehouse database path (default: <data-dir>/warehouse/smartstore.db)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadWarehouse != "" {
		cfg.Warehouse = loadWarehouse
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	report, err := pipeline.LoadAll(context.Background(), cfg.PreparedDir(), cfg.WarehousePath())
	if err != nil {
		return err
	}

	logging.Info().
		Int("rows_inserted", report.TotalInserted()).
		Str("warehouse", cfg.WarehousePath()).
		Msg("Load complete")

	return nil
}
