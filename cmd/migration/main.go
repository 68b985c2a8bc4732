package main

import (
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/fadedpez/ginrummy/internal/config"
	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)

	// Create command options
	migrationsDir := createCmd.String("dir", "pkg/db/migrations/sql", "Directory to store migrations")

	// Migrate and status options; an empty -dir uses the migrations built into the binary
	dbPath := migrateCmd.String("db", "", "Path to SQLite database (default DB_PATH)")
	migrateDir := migrateCmd.String("dir", "", "Directory containing migrations")
	statusDB := statusCmd.String("db", "", "Path to SQLite database (default DB_PATH)")
	statusDir := statusCmd.String("dir", "", "Directory containing migrations")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		createCmd.Parse(os.Args[2:])
		if createCmd.NArg() < 1 {
			fmt.Println("Error: Missing migration description")
			createCmd.Usage()
			os.Exit(1)
		}
		filePath, err := migrations.CreateMigration(*migrationsDir, createCmd.Arg(0))
		if err != nil {
			log.Fatalf("Error creating migration: %v", err)
		}
		fmt.Printf("Created migration file: %s\n", filePath)

	case "migrate":
		migrateCmd.Parse(os.Args[2:])
		migrator, db := openMigrator(*dbPath, *migrateDir)
		defer db.Close()
		if err := migrator.MigrateUp(); err != nil {
			log.Fatalf("Error applying migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully!")

	case "status":
		statusCmd.Parse(os.Args[2:])
		migrator, db := openMigrator(*statusDB, *statusDir)
		defer db.Close()
		pending, err := migrator.Pending()
		if err != nil {
			log.Fatalf("Error checking migrations: %v", err)
		}
		if len(pending) == 0 {
			fmt.Println("Database is up to date")
			return
		}
		for _, m := range pending {
			fmt.Printf("pending %s: %s\n", m.Version, m.Description)
		}

	case "help":
		printUsage()

	default:
		fmt.Printf("Error: Unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migration create DESCRIPTION  - Create a new migration")
	fmt.Println("  go run ./cmd/migration migrate             - Apply pending migrations")
	fmt.Println("  go run ./cmd/migration status              - List pending migrations")
	fmt.Println("  go run ./cmd/migration help                - Show this help")
	fmt.Println("\nExamples:")
	fmt.Println("  go run ./cmd/migration create \"add player index\"")
	fmt.Println("  go run ./cmd/migration migrate -db data/rummy.db")
}

func openMigrator(dbPath, dir string) (*migrations.Migrator, *sql.DB) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.INFO
	}
	logger := logging.NewLogger(level)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Error creating database directory: %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	var source fs.FS = migrations.Embedded()
	if dir != "" {
		source = os.DirFS(dir)
	}

	return migrations.NewMigrator(db, source, logger), db
}
