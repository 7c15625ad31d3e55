// Package main is the entry point for the bank-backoffice CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/bank-backoffice/cmd/bank-backoffice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
