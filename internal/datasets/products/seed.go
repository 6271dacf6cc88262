package products

import (
	"strconv"
	"strings"

	"github.com/smartstore/smartstore-dw/internal/datagen"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/tabular"
)

var (
	categories      = []string{"Office", "Electronics", "Clothing", "Grocery", "Toys"}
	categoryWeights = []int{30, 25, 20, 15, 10}
)

// seedProducts produces a raw product extract. The legacy export wrote
// all-lowercase headers, which the cleaner resolves by normalized match.
func seedProducts(f *datagen.Faker, p datasets.SeedParams) *tabular.Table {
	t := tabular.New(
		"productid", "productname", "category",
		"unitprice", "stockquantity", "suppliername",
	)

	for i := 0; i < p.Rows; i++ {
		row := []string{
			strconv.Itoa(datasets.ProductIDBase + i),
			f.ProductName(),
			datagen.ChooseWeighted(f, categories, categoryWeights),
			strconv.FormatFloat(f.Price(1, 1800), 'f', 2, 64),
			strconv.Itoa(f.Int(0, 900)),
			f.Company(),
		}
		if f.Int(1, 100) <= p.DirtyPercent {
			dirtyProduct(f, i, row)
		}
		t.AddRow(row)
	}
	return t
}

// dirtyProduct injects one defect into the row in place.
func dirtyProduct(f *datagen.Faker, i int, row []string) {
	switch f.Int(0, 4) {
	case 0:
		// Duplicate key of an earlier row.
		if i > 0 {
			row[0] = strconv.Itoa(datasets.ProductIDBase + f.Int(0, i-1))
		}
	case 1:
		// Out-of-range or unparseable price.
		row[3] = datagen.Choose(f, []string{"2500.00", "-10", "free"})
	case 2:
		// Out-of-range stock count.
		row[4] = datagen.Choose(f, []string{"5000", "-3"})
	case 3:
		// Missing name, defaulted downstream.
		row[1] = datagen.Choose(f, []string{"", "null", "NaN"})
	case 4:
		// Shouting and stray whitespace, normalized downstream.
		row[2] = " " + strings.ToUpper(row[2]) + " "
	}
}
