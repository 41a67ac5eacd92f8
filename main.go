package main

import (
	"os"

	"github.com/pinecoastbbq/pinecoast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
