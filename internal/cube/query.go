package cube

import (
	"sort"
	"strings"

	"github.com/smartstore/smartstore-dw/internal/errdefs"
)

// Filter selects cells for Dice. Dimension filters are AND-combined across
// dimensions; values within one dimension are OR-combined. Measure
// thresholds apply to the cell sum.
type Filter struct {
	// Dimensions maps a dimension name (one of the cube's pair) to the
	// accepted values for it.
	Dimensions map[string][]string

	// BelowMean keeps cells whose sum is strictly below the mean cell sum
	// of the full cube, computed at query time.
	BelowMean bool

	// MinSum and MaxSum, when set, bound the cell sum inclusively.
	MinSum *float64
	MaxSum *float64
}

// Group is one drilldown bucket: a finer-grain attribute value with its
// aggregate over the rows of the coarse cell.
type Group struct {
	Value string
	Sum   float64
	Count int
}

// Mean returns the group's average measure value.
func (g *Group) Mean() float64 {
	if g.Count == 0 {
		return 0
	}
	return g.Sum / float64(g.Count)
}

// Slice returns the cells where the named dimension equals value. Dimension
// values compare case-insensitively. An unseen value yields an empty result;
// only an unknown dimension name is an error.
func (c *Cube) Slice(dimension, value string) ([]Cell, error) {
	pick, err := c.dimensionPicker(dimension)
	if err != nil {
		return nil, err
	}

	var out []Cell
	for i := range c.Cells {
		if strings.EqualFold(pick(&c.Cells[i]), value) {
			out = append(out, c.Cells[i])
		}
	}
	return out, nil
}

// Dice returns the cells matching every dimension filter and every measure
// threshold. The mean used by BelowMean is recomputed from the full cube on
// each call.
func (c *Cube) Dice(filter Filter) ([]Cell, error) {
	pickers := make(map[string]func(*Cell) string, len(filter.Dimensions))
	for dim := range filter.Dimensions {
		pick, err := c.dimensionPicker(dim)
		if err != nil {
			return nil, err
		}
		pickers[dim] = pick
	}

	mean := 0.0
	if filter.BelowMean {
		mean = c.meanCellSum()
	}

	var out []Cell
cells:
	for i := range c.Cells {
		cell := &c.Cells[i]
		for dim, values := range filter.Dimensions {
			if !containsFold(values, pickers[dim](cell)) {
				continue cells
			}
		}
		if filter.BelowMean && cell.Sum >= mean {
			continue
		}
		if filter.MinSum != nil && cell.Sum < *filter.MinSum {
			continue
		}
		if filter.MaxSum != nil && cell.Sum > *filter.MaxSum {
			continue
		}
		out = append(out, *cell)
	}
	return out, nil
}

// Drilldown re-aggregates the retained joined rows of the (v1, v2) cell by a
// finer-grain attribute. Unknown cell values yield an empty result; an
// unknown attribute name is an error. The returned groups sum to the coarse
// cell's measure.
func (c *Cube) Drilldown(v1, v2, finerKey string) ([]Group, error) {
	if _, ok := attributes[finerKey]; !ok {
		return nil, errdefs.NewNotFoundError("attribute", finerKey)
	}

	agg := make(map[string]*Group)
	for i := range c.rows {
		r := &c.rows[i]
		if !strings.EqualFold(r.Attrs[c.Dim1], v1) || !strings.EqualFold(r.Attrs[c.Dim2], v2) {
			continue
		}
		v := r.Attrs[finerKey]
		g, ok := agg[v]
		if !ok {
			g = &Group{Value: v}
			agg[v] = g
		}
		g.Sum += r.Measure
		g.Count++
	}

	out := make([]Group, 0, len(agg))
	for _, g := range agg {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out, nil
}

// dimensionPicker resolves a dimension name against the cube's pair and
// returns an accessor for that coordinate.
func (c *Cube) dimensionPicker(dimension string) (func(*Cell) string, error) {
	switch {
	case strings.EqualFold(dimension, c.Dim1):
		return func(cell *Cell) string { return cell.Dim1 }, nil
	case strings.EqualFold(dimension, c.Dim2):
		return func(cell *Cell) string { return cell.Dim2 }, nil
	}
	return nil, errdefs.NewNotFoundError("dimension", dimension)
}

// meanCellSum returns the mean of the cell sums over the whole cube.
func (c *Cube) meanCellSum() float64 {
	if len(c.Cells) == 0 {
		return 0
	}
	total := 0.0
	for i := range c.Cells {
		total += c.Cells[i].Sum
	}
	return total / float64(len(c.Cells))
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}
