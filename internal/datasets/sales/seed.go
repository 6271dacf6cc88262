package sales

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/smartstore/smartstore-dw/internal/datagen"
	"github.com/smartstore/smartstore-dw/internal/datasets"
	"github.com/smartstore/smartstore-dw/internal/tabular"
)

var (
	paymentTypes   = []string{"Credit", "Debit", "Cash", "PayPal"}
	paymentWeights = []int{40, 25, 20, 15}
)

// seedSales produces a raw sales extract. Keys reference the seeded
// customer and product id ranges so cleaned rows resolve at load time;
// defect injection adds dangling references on purpose.
func seedSales(f *datagen.Faker, p datasets.SeedParams) *tabular.Table {
	t := tabular.New(
		"TransactionID", "CustomerID", "ProductID", "StoreID", "CampaignID",
		"SaleDate", "SaleAmount", "DiscountPercent", "PaymentType",
	)

	saleStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	saleEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	for i := 0; i < p.Rows; i++ {
		amount := math.Round(f.Float64(0.05, 30)*1000) / 1000 // thousands
		discount := f.Float64(0, 60)
		discountCell := strconv.FormatFloat(math.Round(discount*10)/10, 'f', 1, 64)
		if f.Int(1, 4) == 1 {
			// Legacy exports sometimes carry a percent sign.
			discountCell += "%"
		}

		row := []string{
			strconv.Itoa(datasets.SaleIDBase + i),
			strconv.Itoa(datasets.CustomerIDBase + f.Int(0, max(p.Customers-1, 0))),
			strconv.Itoa(datasets.ProductIDBase + f.Int(0, max(p.Products-1, 0))),
			fmt.Sprintf("S%02d", f.Int(1, 25)),
			f.NullableString("CAMP-"+f.Digits(3), 0.3),
			f.DateRange(saleStart, saleEnd).Format("2006-01-02"),
			strconv.FormatFloat(amount, 'f', 3, 64),
			discountCell,
			datagen.ChooseWeighted(f, paymentTypes, paymentWeights),
		}
		if f.Int(1, 100) <= p.DirtyPercent {
			dirtySale(f, i, p, row)
		}
		t.AddRow(row)
	}
	return t
}

// dirtySale injects one defect into the row in place.
func dirtySale(f *datagen.Faker, i int, p datasets.SeedParams, row []string) {
	switch f.Int(0, 6) {
	case 0:
		// Duplicate key of an earlier row.
		if i > 0 {
			row[0] = strconv.Itoa(datasets.SaleIDBase + f.Int(0, i-1))
		}
	case 1:
		// Dangling customer reference, rejected at load time.
		row[1] = strconv.Itoa(datasets.CustomerIDBase + p.Customers + f.Int(1, 500))
	case 2:
		// Dangling product reference.
		row[2] = strconv.Itoa(datasets.ProductIDBase + p.Products + f.Int(1, 500))
	case 3:
		// Garbage or missing amount, dropped by the cleaner.
		row[6] = datagen.Choose(f, []string{"?", "", "N/A"})
	case 4:
		// Out-of-range amount.
		row[6] = "15000"
	case 5:
		// Out-of-range or garbage discount.
		row[7] = datagen.Choose(f, []string{"150", "-5", "lots"})
	case 6:
		// Unparseable sale date.
		row[5] = datagen.Choose(f, []string{"2025-13-01", "someday"})
	}
}
