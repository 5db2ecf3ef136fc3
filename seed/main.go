package main

import (
	"flag"
	"log"
	"os"

	"github.com/Kevin-Guilherme/fluentify/seed/seeders"
	"github.com/Kevin-Guilherme/fluentify/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, topics")
		driver   = flag.String("driver", "", "Database driver: postgres or sqlite (overrides DB_DRIVER)")
		dsn      = flag.String("db", "", "Connection string or sqlite path (overrides the environment)")
		migrate  = flag.Bool("migrate", true, "Run schema migrations before seeding")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	dbDriver := *driver
	if dbDriver == "" {
		dbDriver = os.Getenv("DB_DRIVER")
	}

	db, err := services.OpenDatabase(dbDriver, *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *migrate {
		if err := services.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		err = mainSeeder.SeedAll()
	case "topics":
		err = mainSeeder.SeedTopicsOnly()
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all' or 'topics'", *seedType)
	}
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for Fluentify

Usage: go run ./seed [flags]

Flags:
  -type string     all or topics (default "all")
  -driver string   postgres or sqlite (default DB_DRIVER, then postgres)
  -db string       DSN or sqlite file (default from the environment)
  -migrate         run migrations first (default true)

Examples:
  go run ./seed -driver=sqlite -db=./fluentify.db
  go run ./seed -type=topics`)
}
