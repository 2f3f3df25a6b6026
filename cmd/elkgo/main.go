package main

import (
	"os"

	"github.com/mark/elkgo/cmd/elkgo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
