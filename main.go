package main

import (
	"os"

	"github.com/Rana718/evseed/cmd"
	"github.com/fatih/color"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
