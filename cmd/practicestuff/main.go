// Package main provides the practicestuff entry point: a terminal quiz that
// drills arithmetic and calendar skills.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"practicestuff/internal/app"
	"practicestuff/internal/config"
	"practicestuff/internal/logger"
)

func main() {
	// optional .env with PRACTICESTUFF_* settings
	_ = godotenv.Load()

	if err := logger.Configure(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Build(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.New(cfg).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
