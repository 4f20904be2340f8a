package main // Entry point package

import (
	"context"
	"log"
	"os"

	"github.com/Avinash949367/terminal-vacation-planner/internal/config"
	"github.com/Avinash949367/terminal-vacation-planner/internal/database"
	"github.com/Avinash949367/terminal-vacation-planner/internal/shell"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("initialize schema: %v", err)
	}

	sh := shell.New(db, cfg.ExportDir, os.Stdin, os.Stdout)
	if err := sh.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
