package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/ignite/newsletter/internal/config"
	"github.com/ignite/newsletter/internal/repository/postgres"
)

func main() {
	dir := "migrations"
	configPath := "config/config.yaml"
	listOnly := false
	createDB := false
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "--list":
			listOnly = true
		case "--create-db":
			createDB = true
		case "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		default:
			dir = a
		}
	}

	if listOnly {
		files, err := postgres.MigrationFiles(os.DirFS(dir))
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range files {
			fmt.Println(" ", f)
		}
		fmt.Printf("Total: %d migrations\n", len(files))
		return
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if createDB && cfg.Database.URL == "" {
		admin, err := sql.Open("postgres", cfg.Database.DSNWithoutDB())
		if err != nil {
			log.Fatalf("connect: %v", err)
		}
		created, err := postgres.EnsureDatabase(ctx, admin, cfg.Database.DatabaseName)
		admin.Close()
		if err != nil {
			log.Fatal(err)
		}
		if created {
			log.Printf("Created database %s", cfg.Database.DatabaseName)
		}
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	log.Println("Connected to database")

	n, err := postgres.Migrate(ctx, db, os.DirFS(dir))
	if err != nil {
		log.Fatalf("Migration failed after %d applied: %v", n, err)
	}
	log.Printf("Done: %d applied", n)
	log.Println("Migrations complete")
}
