package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/logger"
)

// main - reads one integer from stdin and reports whether it is prime.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	conf := config.MustLoad(filepath.Join(baseDir, "./config.yml"))
	log := logger.New(os.Stderr, conf.LogLevel)

	if err = app.RunPrimeCheck(context.Background(), log, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("prime check failed: %w", err))
	}
}
