package datagen

import (
	"github.com/smartstore/smartstore-dw/internal/logging"
)

// ProgressReporter tracks and reports row-processing progress for a table.
type ProgressReporter struct {
	tableName        string
	totalRows        int64
	currentRow       int64
	progressInterval int64
}

// NewProgressReporter creates a new progress reporter. The interval is the
// number of rows between log lines.
func NewProgressReporter(tableName string, totalRows, interval int64) *ProgressReporter {
	if interval < 1 {
		interval = 1
	}
	return &ProgressReporter{
		tableName:        tableName,
		totalRows:        totalRows,
		progressInterval: interval,
	}
}

// Update advances the progress and logs if an interval boundary was crossed.
func (p *ProgressReporter) Update(rows int64) {
	oldRow := p.currentRow
	p.currentRow += rows

	if p.currentRow/p.progressInterval > oldRow/p.progressInterval {
		pct := float64(p.currentRow) / float64(p.totalRows) * 100
		logging.Info().
			Str("table", p.tableName).
			Int64("rows", p.currentRow).
			Int64("total", p.totalRows).
			Float64("percent", pct).
			Msg("Processing rows")
	}
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("table", p.tableName).
		Int64("rows", p.currentRow).
		Msg("Table complete")
}
