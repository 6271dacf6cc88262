//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"testing"
	"time"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerName(t *testing.T) {
	f := NewFaker()
	name := f.Name()
	if name == "" {
		t.Error("Name returned empty string")
	}
}

func TestFakerCompany(t *testing.T) {
	f := NewFaker()
	company := f.Company()
	if company == "" {
		t.Error("Company returned empty string")
	}
}

func TestFakerProductName(t *testing.T) {
	f := NewFaker()
	name := f.ProductName()
	if name == "" {
		t.Error("ProductName returned empty string")
	}
}

func TestFakerPrice(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		price := f.Price(10.0, 100.0)
		if price < 10.0 || price > 100.0 {
			t.Errorf("Price %f outside range [10, 100]", price)
		}
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Int(5, 10)
		if v < 5 || v > 10 {
			t.Errorf("Int %d outside range [5, 10]", v)
		}
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Float64(1.5, 2.5)
		if v < 1.5 || v > 2.5 {
			t.Errorf("Float64 %f outside range [1.5, 2.5]", v)
		}
	}
}

func TestFakerDateRange(t *testing.T) {
	f := NewFaker()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := f.DateRange(start, end)
		if d.Before(start) || d.After(end) {
			t.Errorf("DateRange %v outside [%v, %v]", d, start, end)
		}
	}
}

func TestFakerDigits(t *testing.T) {
	f := NewFaker()
	s := f.Digits(6)
	if len(s) != 6 {
		t.Errorf("Expected 6 digits, got %d: %s", len(s), s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Errorf("Digits returned non-digit character: %s", s)
		}
	}
}

func TestFakerNullableString(t *testing.T) {
	f := NewFaker()

	// Probability 0 never nulls
	for i := 0; i < 100; i++ {
		if s := f.NullableString("value", 0); s != "value" {
			t.Errorf("NullableString with probability 0 returned %q", s)
		}
	}

	// Probability 1 always nulls
	for i := 0; i < 100; i++ {
		if s := f.NullableString("value", 1); s != "" {
			t.Errorf("NullableString with probability 1 returned %q", s)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		chosen := Choose(f, items)
		seen[chosen] = true

		found := false
		for _, item := range items {
			if chosen == item {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Choose returned item not in slice: %s", chosen)
		}
	}
}

func TestChooseEmpty(t *testing.T) {
	f := NewFaker()
	var items []string

	chosen := Choose(f, items)
	if chosen != "" {
		t.Errorf("Choose on empty slice should return zero value, got: %s", chosen)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c"}
	weights := []int{1, 2, 7} // c should be chosen ~70% of the time

	counts := make(map[string]int)
	iterations := 1000

	for i := 0; i < iterations; i++ {
		chosen := ChooseWeighted(f, items, weights)
		counts[chosen]++
	}

	// c should be most common
	if counts["c"] < counts["a"] || counts["c"] < counts["b"] {
		t.Errorf("Weighted choice distribution unexpected: %v", counts)
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	f := NewFaker()
	var items []string
	var weights []int

	chosen := ChooseWeighted(f, items, weights)
	if chosen != "" {
		t.Errorf("ChooseWeighted on empty slices should return zero value, got: %s", chosen)
	}
}
