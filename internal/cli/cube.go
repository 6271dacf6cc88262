package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/smartstore/smartstore-dw/internal/logging"
	"github.com/smartstore/smartstore-dw/internal/pipeline"
)

var (
	cubeDimensions []string
	cubeMeasure    string
	cubeOut        string
	cubeWarehouse  string
)

var cubeCmd = &cobra.Command{
	Use:   "cube",
	Short: "Build the cube artifact from the warehouse",
	Long: `Aggregate the joined star schema into a two-dimensional cube: one cell
per observed dimension pair, carrying the sum, mean, and fact count of the
measure. The cube is written as a CSV artifact sorted by dimension values.

Dimensions are joined attributes (region, category, product_name,
customer_name, supplier_name, store_id, campaign_id, payment_type,
sale_date); measures are fact columns (sale_amount, discount_percent).

Example:
  smartstore-dw cube
  smartstore-dw cube --dimensions region,payment_type --measure discount_percent
  smartstore-dw cube --out /tmp/cube.csv`,
	RunE: runCube,
}

func init() {
	cubeCmd.Flags().StringSliceVar(&cubeDimensions, "dimensions", nil,
		"the two dimensions to group by (default: region,category)")
	cubeCmd.Flags().StringVar(&cubeMeasure, "measure", "",
		"fact column to aggregate (default: sale_amount)")
	cubeCmd.Flags().StringVar(&cubeOut, "out", "",
		"cube artifact path (default: <data-dir>/cubes/sales_cube.csv)")
	cubeCmd.Flags().StringVar(&cubeWarehouse, "warehouse", "",
		"warehouse database path (default: <data-dir>/warehouse/smartstore.db)")
}

func runCube(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if len(cubeDimensions) > 0 {
		cfg.Cube.Dimensions = cubeDimensions
	}
	if cubeMeasure != "" {
		cfg.Cube.Measure = cubeMeasure
	}
	if cubeOut != "" {
		cfg.Cube.Output = cubeOut
	}
	if cubeWarehouse != "" {
		cfg.Warehouse = cubeWarehouse
	}

	// Validate configuration
	if err := cfg.ValidateCube(); err != nil {
		return err
	}

	dims := [2]string{cfg.Cube.Dimensions[0], cfg.Cube.Dimensions[1]}
	c, err := pipeline.BuildCube(context.Background(), cfg.WarehousePath(),
		dims, cfg.Cube.Measure, cfg.CubeOutput())
	if err != nil {
		return err
	}

	logging.Info().
		Str("dimensions", dims[0]+","+dims[1]).
		Str("measure", cfg.Cube.Measure).
		Int("cells", len(c.Cells)).
		Int("fact_rows", c.Rows()).
		Str("artifact", cfg.CubeOutput()).
		Msg("Cube build complete")

	return nil
}
