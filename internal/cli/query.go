package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartstore/smartstore-dw/internal/cube"
	"github.com/smartstore/smartstore-dw/internal/pipeline"
)

var (
	queryDimensions []string
	queryMeasure    string
	queryWarehouse  string

	diceWhere     []string
	diceBelowMean bool
	diceMinSum    float64
	diceMaxSum    float64
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the cube: slice, dice, or drill down",
	Long: `Build the cube from the warehouse and run a query against it. The cube
dimensions and measure come from config and can be overridden with the
--dimensions and --measure flags. Dimension values match case-insensitively.`,
}

var querySliceCmd = &cobra.Command{
	Use:   "slice <dimension> <value>",
	Short: "Fix one dimension to a value",
	Long: `Fix one of the cube's two dimensions to a value and print the matching
cells. A value that never occurs yields an empty result, not an error.

Example:
  smartstore-dw query slice region east
  smartstore-dw query slice category office`,
	Args: cobra.ExactArgs(2),
	RunE: runQuerySlice,
}

var queryDiceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Filter cells by dimension values and measure bounds",
	Long: `Filter the cube's cells. Repeatable --where entries restrict a dimension
to one or more values (values within one entry are ORed, entries for
different dimensions are ANDed). --below-mean keeps cells whose sum is
strictly below the mean cell sum; --min-sum and --max-sum are inclusive
bounds on the cell sum.

Example:
  smartstore-dw query dice --where region=east
  smartstore-dw query dice --where region=east,west --where category=office
  smartstore-dw query dice --below-mean
  smartstore-dw query dice --min-sum 100 --max-sum 5000`,
	RunE: runQueryDice,
}

var queryDrilldownCmd = &cobra.Command{
	Use:   "drilldown <dim1-value> <dim2-value> <attribute>",
	Short: "Break one cell down by a finer attribute",
	Long: `Break the cell identified by the two dimension values down by a finer
joined attribute, printing one group per attribute value. The group sums
add up to the cell's sum.

Example:
  smartstore-dw query drilldown east office product_name
  smartstore-dw query drilldown east office payment_type`,
	Args: cobra.ExactArgs(3),
	RunE: runQueryDrilldown,
}

func init() {
	queryCmd.PersistentFlags().StringSliceVar(&queryDimensions, "dimensions", nil,
		"the two cube dimensions (default: region,category)")
	queryCmd.PersistentFlags().StringVar(&queryMeasure, "measure", "",
		"fact column to aggregate (default: sale_amount)")
	queryCmd.PersistentFlags().StringVar(&queryWarehouse, "warehouse", "",
		"warehouse database path (default: <data-dir>/warehouse/smartstore.db)")

	queryDiceCmd.Flags().StringArrayVar(&diceWhere, "where", nil,
		"dimension filter, dimension=value[,value...] (repeatable)")
	queryDiceCmd.Flags().BoolVar(&diceBelowMean, "below-mean", false,
		"keep only cells whose sum is below the mean cell sum")
	queryDiceCmd.Flags().Float64Var(&diceMinSum, "min-sum", 0,
		"keep only cells whose sum is at least this value")
	queryDiceCmd.Flags().Float64Var(&diceMaxSum, "max-sum", 0,
		"keep only cells whose sum is at most this value")

	queryCmd.AddCommand(querySliceCmd)
	queryCmd.AddCommand(queryDiceCmd)
	queryCmd.AddCommand(queryDrilldownCmd)
}

// buildQueryCube applies the query flag overrides and builds the cube the
// subcommands query. No artifact is written.
func buildQueryCube(ctx context.Context) (*cube.Cube, error) {
	if len(queryDimensions) > 0 {
		cfg.Cube.Dimensions = queryDimensions
	}
	if queryMeasure != "" {
		cfg.Cube.Measure = queryMeasure
	}
	if queryWarehouse != "" {
		cfg.Warehouse = queryWarehouse
	}

	if err := cfg.ValidateCube(); err != nil {
		return nil, err
	}

	dims := [2]string{cfg.Cube.Dimensions[0], cfg.Cube.Dimensions[1]}
	return pipeline.BuildCube(ctx, cfg.WarehousePath(), dims, cfg.Cube.Measure, "")
}

func runQuerySlice(cmd *cobra.Command, args []string) error {
	c, err := buildQueryCube(context.Background())
	if err != nil {
		return err
	}

	cells, err := c.Slice(args[0], args[1])
	if err != nil {
		return err
	}

	printCells(cmd, c, cells)
	return nil
}

func runQueryDice(cmd *cobra.Command, args []string) error {
	where, err := parseWhere(diceWhere)
	if err != nil {
		return err
	}

	filter := cube.Filter{
		Dimensions: where,
		BelowMean:  diceBelowMean,
	}
	if cmd.Flags().Changed("min-sum") {
		filter.MinSum = &diceMinSum
	}
	if cmd.Flags().Changed("max-sum") {
		filter.MaxSum = &diceMaxSum
	}

	c, err := buildQueryCube(context.Background())
	if err != nil {
		return err
	}

	cells, err := c.Dice(filter)
	if err != nil {
		return err
	}

	printCells(cmd, c, cells)
	return nil
}

func runQueryDrilldown(cmd *cobra.Command, args []string) error {
	c, err := buildQueryCube(context.Background())
	if err != nil {
		return err
	}

	groups, err := c.Drilldown(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	cmd.Printf("%-28s %14s %14s %8s\n", args[2], "sum", "mean", "count")
	for i := range groups {
		g := &groups[i]
		cmd.Printf("%-28s %14.3f %14.3f %8d\n", g.Value, g.Sum, g.Mean(), g.Count)
	}
	cmd.Println()
	cmd.Printf("%d groups within (%s, %s)\n", len(groups), args[0], args[1])
	return nil
}

// parseWhere turns repeated dimension=value[,value...] entries into the
// dice filter map. Entries for the same dimension accumulate.
func parseWhere(entries []string) (map[string][]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	where := make(map[string][]string, len(entries))
	for _, entry := range entries {
		dim, values, ok := strings.Cut(entry, "=")
		if !ok || dim == "" || values == "" {
			return nil, fmt.Errorf(
				"invalid --where %q, expected dimension=value[,value...]", entry)
		}
		where[dim] = append(where[dim], strings.Split(values, ",")...)
	}
	return where, nil
}

func printCells(cmd *cobra.Command, c *cube.Cube, cells []cube.Cell) {
	cmd.Printf("%-24s %-24s %14s %14s %8s\n", c.Dim1, c.Dim2, "sum", "mean", "count")
	for i := range cells {
		cell := &cells[i]
		cmd.Printf("%-24s %-24s %14.3f %14.3f %8d\n",
			cell.Dim1, cell.Dim2, cell.Sum, cell.Mean(), cell.Count)
	}
	cmd.Println()
	cmd.Printf("%d of %d cells (measure: %s)\n", len(cells), len(c.Cells), c.Measure)
}
