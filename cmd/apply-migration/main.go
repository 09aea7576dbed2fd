package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"roomwatch/internal/config"
	"roomwatch/internal/database"
)

// Applies every *.sql file in the given directory (default ./migrations) in
// lexical order. Files are numbered 001_, 002_, ... so order is deterministic.
func main() {
	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		log.Fatalf("Failed to list migrations: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("No .sql files found in %s", dir)
	}
	sort.Strings(files)

	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer db.Close()

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", file, err)
		}

		fmt.Printf("Applying %s...\n", file)
		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("Failed to apply %s: %v", file, err)
		}
	}

	fmt.Printf("Applied %d migration(s)\n", len(files))
}
