package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/drill/internal/cli"
	"github.com/alexanderramin/drill/internal/db"
	"github.com/alexanderramin/drill/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.drill/drill.db
	dbPath := os.Getenv("DRILL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".drill", "drill.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewSQLiteStateStore(database, repository.NewLogObserver(os.Stderr))

	app := &cli.App{
		Store: store,
	}

	// Detect interactive terminal for the TUI entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
