package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gartenlabs/lifegarden/internal/cli"
	"github.com/gartenlabs/lifegarden/internal/db"
	"github.com/gartenlabs/lifegarden/internal/repository"
	"github.com/gartenlabs/lifegarden/internal/seed"
	"github.com/gartenlabs/lifegarden/internal/service"
	"github.com/gartenlabs/lifegarden/internal/vision"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.lifegarden/garden.db
	dbPath := os.Getenv("LIFEGARDEN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lifegarden", "garden.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	arealRepo := repository.NewSQLiteArealRepo(database)
	plantRepo := repository.NewSQLitePlantRepo(database)
	wateringRepo := repository.NewSQLiteWateringRepo(database)
	configRepo := repository.NewSQLiteConfigRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("LIFEGARDEN_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Watering: service.NewWateringService(plantRepo, wateringRepo, configRepo, uow, observers...),
		Garden:   service.NewGardenService(arealRepo, plantRepo, wateringRepo),
		Seeder:   seed.NewSeeder(arealRepo, plantRepo),
	}

	// Detect interactive terminal for pickers and the garden view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the checklist vision pipeline (only when enabled)
	visionCfg := vision.LoadConfig()
	if visionCfg.Enabled {
		var observer vision.Observer = vision.NoopObserver{}
		if visionCfg.LogCalls {
			observer = vision.NewLogObserver(os.Stderr)
		}
		client := vision.NewOllamaClient(visionCfg, observer)
		app.Checklist = vision.NewChecklistService(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
