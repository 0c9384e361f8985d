// SPDX-License-Identifier: MIT

// Command chemsp runs graph spectral analysis on molecular datasets.
package main

import (
	"os"

	"github.com/katalvlaran/chemsp/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
