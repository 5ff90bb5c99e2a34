// Command vecdemo prints components of small fixed-size vectors.
package main

import (
	"os"

	"github.com/custodia-labs/vecdemo/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
