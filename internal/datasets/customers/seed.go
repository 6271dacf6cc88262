package customers

import (
	"strconv"
	"strings"
	"time"

	"github.com/smartstore/smartstore-dw/internal/datagen"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/tabular"
)

var (
	regions       = []string{"North", "South", "East", "West"}
	regionWeights = []int{20, 20, 35, 25}

	contactMethods = []string{"Email", "Phone", "Text", "Mail"}
)

// seedCustomers produces a raw customer extract with the legacy header
// spellings the cleaner has to resolve.
func seedCustomers(f *datagen.Faker, p datasets.SeedParams) *tabular.Table {
	t := tabular.New(
		"CustomerID", "Name", "Region", "JoinDate",
		"LoyaltyPoints", "PreferredContactMethod",
	)

	joinStart := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	joinEnd := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < p.Rows; i++ {
		row := []string{
			strconv.Itoa(datasets.CustomerIDBase + i),
			f.Name(),
			datagen.ChooseWeighted(f, regions, regionWeights),
			f.DateRange(joinStart, joinEnd).Format("2006-01-02"),
			strconv.Itoa(f.Int(0, 5000)),
			datagen.Choose(f, contactMethods),
		}
		if f.Int(1, 100) <= p.DirtyPercent {
			dirtyCustomer(f, i, row)
		}
		t.AddRow(row)
	}
	return t
}

// dirtyCustomer injects one defect into the row in place.
func dirtyCustomer(f *datagen.Faker, i int, row []string) {
	switch f.Int(0, 4) {
	case 0:
		// Duplicate key of an earlier row.
		if i > 0 {
			row[0] = strconv.Itoa(datasets.CustomerIDBase + f.Int(0, i-1))
		}
	case 1:
		// Missing region, defaulted downstream.
		row[2] = datagen.Choose(f, []string{"", "NULL", "NaN"})
	case 2:
		// Unparseable join date.
		row[3] = datagen.Choose(f, []string{"2023-13-45", "not a date", "31-31-2020"})
	case 3:
		// Garbage or missing loyalty points.
		row[4] = datagen.Choose(f, []string{"???", "many", ""})
	case 4:
		// Shouting and stray whitespace, normalized downstream.
		row[1] = "  " + strings.ToUpper(row[1]) + "  "
	}
}
