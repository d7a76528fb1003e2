package main

import (
	"os"

	"github.com/murajaa/murajaa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
