package main

import (
	"os"

	"github.com/sravani919/studyhall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
