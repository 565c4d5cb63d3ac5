package main

import (
	"os"

	"github.com/dshills/sheetdiff/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
