package main

import (
	"database/sql"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

const defaultMigrationDir = "./db/migrations"

func main() {
	// Load .env if present, don't fail if missing
	_ = godotenv.Load()

	var (
		downFlag     = flag.Bool("down", false, "Roll back the last migration instead of applying")
		statusFlag   = flag.Bool("status", false, "Print migration status and exit")
		migrationDir = flag.String("dir", defaultMigrationDir, "Directory with goose migrations")
		dbConn       = os.Getenv("DB_CONN")
	)
	flag.Parse()

	if dbConn == "" {
		logrus.Fatal("DB_CONN environment variable is required")
	}

	if err := runMigrations("postgres", dbConn, *migrationDir, *downFlag, *statusFlag); err != nil {
		logrus.Fatalf("Migration failed: %+v", err)
	}
}

func runMigrations(dialect, creds, dir string, migrateDown, statusOnly bool) error {
	db, err := sql.Open(dialect, creds)
	if err != nil {
		return errors.Errorf("cannot open %s db connection: %v", dialect, err)
	}
	defer db.Close()

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Errorf("cannot set %s dialect: %v", dialect, err)
	}

	if statusOnly {
		return errors.Wrap(goose.Status(db, dir), "status")
	}

	if migrateDown {
		if err := goose.Down(db, dir); err != nil {
			return errors.Errorf("cannot down %s migrations: %v", dialect, err)
		}
		logrus.Info("Migrations rolled back successfully")
		return nil
	}

	if err := goose.Up(db, dir, goose.WithAllowMissing()); err != nil {
		return errors.Errorf("cannot up %s migrations: %v", dialect, err)
	}
	logrus.Info("Migrations applied successfully")
	return nil
}
