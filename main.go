package main

import (
	"os"

	"github.com/abhisek/munhak/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
