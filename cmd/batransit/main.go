package main

import (
	"os"

	"github.com/baires-transit/batransit/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
