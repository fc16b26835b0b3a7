package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"botforge/config"
	"botforge/db"
	"botforge/models"
	"botforge/services/export"
	"botforge/services/txmanager"
	"botforge/utils"
)

type Options struct {
	Input   string `long:"input" description:"Path to a JSON file describing the bot, its commands and env vars"`
	BotID   string `long:"bot-id" description:"ID of a stored bot to export (reads from DB_URL)"`
	OwnerID string `long:"owner-id" description:"Owner of the stored bot, required with --bot-id"`
	Out     string `long:"out" required:"true" description:"Directory the project files are written to"`
	Force   bool   `long:"force" description:"Write into a non-empty output directory"`
}

// exportInput is the offline form of a bot accepted by --input
type exportInput struct {
	Bot      models.Bot        `json:"bot"`
	Commands []*models.Command `json:"commands"`
	EnvVars  []*models.EnvVar  `json:"env_vars"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	if (opts.Input == "") == (opts.BotID == "") {
		return fmt.Errorf("exactly one of --input or --bot-id must be set")
	}
	if opts.BotID != "" && opts.OwnerID == "" {
		return fmt.Errorf("--owner-id is required with --bot-id")
	}

	var botExport *models.BotExport
	var err error
	if opts.Input != "" {
		botExport, err = exportFromFile(opts.Input)
	} else {
		botExport, err = exportFromDatabase(opts.OwnerID, opts.BotID)
	}
	if err != nil {
		return err
	}

	dirLock, err := utils.NewDirLock(opts.Out)
	if err != nil {
		return err
	}
	if err := dirLock.TryLock(); err != nil {
		return err
	}
	defer func() {
		if err := dirLock.Unlock(); err != nil {
			log.Printf("⚠️ Failed to release output lock: %v", err)
		}
	}()

	if err := writeBundle(opts.Out, botExport.Files, opts.Force); err != nil {
		return err
	}

	log.Printf("✅ Wrote %d files for %q to %s (archive name %s)", len(botExport.Files), botExport.BotName, opts.Out, botExport.ArchiveName)
	return nil
}

func exportFromFile(path string) (*models.BotExport, error) {
	log.Printf("📋 Starting to export bot from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var input exportInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}

	commands := make([]*models.Command, 0, len(input.Commands))
	for _, c := range input.Commands {
		if c != nil {
			commands = append(commands, c)
		}
	}
	envVars := make([]*models.EnvVar, 0, len(input.EnvVars))
	for _, v := range input.EnvVars {
		if v != nil {
			envVars = append(envVars, v)
		}
	}

	log.Printf("📋 Completed successfully - read bot with %d commands and %d env vars", len(commands), len(envVars))
	return export.Assemble(&input.Bot, commands, envVars), nil
}

func exportFromDatabase(ownerID, botID string) (*models.BotExport, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer dbConn.Close()

	exportService := export.NewExportService(
		db.NewPostgresBotsRepository(dbConn, cfg.DatabaseSchema),
		db.NewPostgresCommandsRepository(dbConn, cfg.DatabaseSchema),
		db.NewPostgresEnvVarsRepository(dbConn, cfg.DatabaseSchema),
		txmanager.NewTransactionManager(dbConn),
	)

	return exportService.ExportBot(context.Background(), ownerID, botID)
}

// writeBundle writes every file of the bundle under outDir. An existing
// non-empty directory is only written to with force.
func writeBundle(outDir string, files models.FileBundle, force bool) error {
	entries, err := os.ReadDir(outDir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read output directory: %w", err)
	}
	if len(entries) > 0 && !force {
		return fmt.Errorf("output directory %s is not empty (use --force to overwrite)", outDir)
	}

	for _, p := range files.Paths() {
		target := filepath.Join(outDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", p, err)
		}
		if err := os.WriteFile(target, []byte(files[p]), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", p, err)
		}
	}

	return nil
}
