// Command createdb creates the application database if it does not exist.
// Run it once before starting the server; migrations run on server startup.
//
// It reads the same configuration as the server, connects to the postgres
// maintenance database on the configured host, and issues CREATE DATABASE
// for the database named in the DSN.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/littlelemon/restaurant-server/internal/config"
	"github.com/littlelemon/restaurant-server/internal/logger"
)

func main() {
	log := logger.NewLogger("restaurant-createdb")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	dbName, adminDSN, err := splitDSN(cfg.Storage.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing database DSN")
	}

	conn, err := sql.Open("pgx", adminDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}
	defer conn.Close()

	ctx := context.Background()
	if err = conn.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres (ping)")
	}

	// CREATE DATABASE cannot run inside a transaction and has no
	// IF NOT EXISTS form, so a duplicate is detected by its error code.
	_, err = conn.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE %q`, dbName))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.DuplicateDatabase {
			log.Info().Str("database", dbName).Msg("database already exists")
			return
		}
		log.Fatal().Err(err).Str("database", dbName).Msg("error creating database")
	}

	log.Info().Str("database", dbName).Msg("database created")
}

// splitDSN extracts the target database name from dsn and returns it together
// with a DSN pointing at the postgres maintenance database on the same host.
func splitDSN(dsn string) (dbName string, adminDSN string, err error) {
	if dsn == "" {
		return "", "", errors.New("empty DSN, set STORAGE_DB_DATABASE_URI or the -d flag")
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", "", fmt.Errorf("parsing DSN: %w", err)
	}

	dbName = strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", errors.New("DSN does not name a database")
	}

	u.Path = "/postgres"
	return dbName, u.String(), nil
}
