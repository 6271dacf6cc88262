// Package main is the entry point for smartstore-dw.
package main

import (
	"fmt"
	"os"

	"github.com/smartstore/smartstore-dw/internal/cli"

	// Register datasets
	_ "github.com/smartstore/smartstore-dw/internal/datasets/customers"
	_ "github.com/smartstore/smartstore-dw/internal/datasets/products"
	_ "github.com/smartstore/smartstore-dw/internal/datasets/sales"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
