package main

import (
	"fmt"
	"log"
	"os"

	"github.com/atahmasb/trivia-api/internal/config"
	"github.com/atahmasb/trivia-api/internal/database"
	"github.com/atahmasb/trivia-api/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment")
	}

	fs := config.Flags("seed")
	fs.String("bank", "data/trivia.yaml", "question bank to load (.yaml, .yml or .json)")
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	path, _ := fs.GetString("bank")

	bank, err := seed.Load(path)
	if err != nil {
		log.Fatalf("failed to load bank: %v", err)
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	res, err := seed.Apply(db, bank)
	if err != nil {
		log.Fatalf("failed to seed %s: %v", path, err)
	}
	log.Printf("seeded %s: %d categories created, %d questions created, %d questions already present",
		path, res.CategoriesCreated, res.QuestionsCreated, res.QuestionsSkipped)
}
