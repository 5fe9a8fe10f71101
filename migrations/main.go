package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Applies the numbered sql files in this directory. The schema_migrations
// bookkeeping table lives in the fairway schema next to the tables.
func main() {
	_ = godotenv.Load()

	host := getenv("DATABASE_HOST", "localhost")
	port := getenv("DATABASE_PORT", "5432")
	user := getenv("POSTGRES_USER", "postgres")
	password := getenv("POSTGRES_PASSWORD", "postgres")
	dbName := getenv("DATABASE_NAME", "postgres")

	// the schema has to exist before migrate can place its version table there
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbName)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS fairway"); err != nil {
		log.Fatal(err)
	}
	db.Close()

	dbUrl := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=fairway",
		user, password, host, port, dbName)
	m, err := migrate.New("file://migrations", dbUrl)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "up":
		handleMigrationErr(m.Up())
		fmt.Println("Migrated up")
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				log.Fatalf("invalid step count %q", os.Args[2])
			}
		}
		handleMigrationErr(m.Steps(-steps))
		fmt.Printf("Rolled back %d migration(s)\n", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("No migrations applied yet")
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Version %d, dirty: %t\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "usage: %s <up|down [steps]|version>\n", os.Args[0])
		os.Exit(2)
	}
}

func handleMigrationErr(err error) {
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return
	}
	log.Fatal(err)
}

func getenv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
