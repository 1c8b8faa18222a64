package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/ridwanfathin/claw-dashboard-service/internal/database"
)

const migrationsDir = "scripts/migrations"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbURL := os.Getenv("POSTGRES_DB_URL")
	if dbURL == "" {
		log.Fatalf("POSTGRES_DB_URL environment variable not set")
	}

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, dbURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close()

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		log.Fatalf("Unable to list migrations: %v", err)
	}
	sort.Strings(files)

	err = db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		for _, file := range files {
			migrationSQL, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("unable to read %s: %w", file, err)
			}
			if _, err := tx.Exec(ctx, string(migrationSQL)); err != nil {
				return fmt.Errorf("failed to execute %s: %w", file, err)
			}
			log.Printf("Applied %s", filepath.Base(file))
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	fmt.Println("Migration successfully executed!")
}
