package main

import (
	"context"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/pageza/alchemorsel-v2/scaler/config"
	"github.com/pageza/alchemorsel-v2/scaler/internal/database"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	status := flag.Bool("status", false, "Print the migration status and exit")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		dsn = cfg.DatabaseURL()
	}

	db, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	command := "up"
	switch {
	case *status:
		command = "status"
	case *rollback:
		command = "down"
	}

	if err := database.Migrate(context.Background(), db, command, flag.Args()...); err != nil {
		log.Fatal(err)
	}
	log.Printf("migrate %s finished", command)
}
