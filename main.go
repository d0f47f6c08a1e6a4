package main

import (
	"fmt"
	"os"

	"github.com/corpeningc/cgit-resolve/cmd"
	"github.com/corpeningc/cgit-resolve/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err))
		os.Exit(1)
	}
}
