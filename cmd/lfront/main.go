package main

import (
	"os"

	"LFront/cmd/lfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
