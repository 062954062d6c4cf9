package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/orgplant/internal/cli"
	"github.com/alexanderramin/orgplant/internal/config"
	"github.com/alexanderramin/orgplant/internal/db"
	"github.com/alexanderramin/orgplant/internal/repository"
	"github.com/alexanderramin/orgplant/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine config path: env var or default ~/.orgplant/config.json
	configPath := os.Getenv("ORGPLANT_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configPath = filepath.Join(home, ".orgplant", "config.json")
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Determine history DB path: env var or default ~/.orgplant/history.db
	dbPath := os.Getenv("ORGPLANT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".orgplant", "history.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer database.Close()

	history := repository.NewSQLitePlantingRepo(database)

	var observers []service.UseCaseObserver
	if os.Getenv("ORGPLANT_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Plant:      service.NewPlantService(settings, service.NewFSDocumentStore(), history, observers...),
		History:    history,
		Settings:   settings,
		ConfigPath: configPath,
	}

	// Wizards and confirmations only run against a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
