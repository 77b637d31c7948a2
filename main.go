package main

import (
	"fmt"
	"os"

	"github.com/picoforge/picoforge/cmd"
	"github.com/picoforge/picoforge/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "picoforge:", err)
		os.Exit(errors.ExitCode(err))
	}
}
