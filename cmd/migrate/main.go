package main

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/infrastructure/config"
	"github.com/karobar/backoffice/internal/infrastructure/logger"
)

func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "path", "migrations", "path to migrations directory")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	_ = godotenv.Load()

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading configuration", zap.Error(err))
	}

	m, err := migrate.New("file://"+migrationsPath, migrateURL(&cfg.Database))
	if err != nil {
		log.Fatal("opening migrator", zap.Error(err))
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn("closing migrator", zap.Errors("errors", []error{srcErr, dbErr}))
		}
	}()

	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "drop":
		err = m.Drop()
	case "force":
		if len(args) < 2 {
			log.Fatal("force requires a version argument")
		}
		var v int
		v, err = strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("invalid force version", zap.String("arg", args[1]))
		}
		err = m.Force(v)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal("reading version", zap.Error(verr))
		}
		log.Info("schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("migration failed", zap.String("command", args[0]), zap.Error(err))
	}
	log.Info("migration complete", zap.String("command", args[0]))
}

func migrateURL(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: migrate [-path dir] <command>

commands:
  up             apply all pending migrations
  down           roll back one migration
  drop           drop everything in the database
  force <v>      set the schema version without running migrations
  version        print the current schema version`)
}
