package main

import (
	"os"

	"github.com/bestlessonever/readiness/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
