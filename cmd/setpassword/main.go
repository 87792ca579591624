// Command setpassword resets the password of an existing account directly in
// the database, bypassing the HTTP API. Intended for operators who need to
// recover access to an account.
package main

import (
	"context"
	"flag"

	"golang.org/x/crypto/bcrypt"

	"github.com/littlelemon/restaurant-server/internal/config"
	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/store"
)

func main() {
	log := logger.NewLogger("restaurant-setpassword")

	// registered on the global flag set so that GetStructuredConfig parses
	// them together with the shared configuration flags
	var username, password string
	flag.StringVar(&username, "username", "admin", "account to update")
	flag.StringVar(&password, "password", "", "new password (required)")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if password == "" {
		log.Fatal().Msg("the -password flag is required")
	}

	ctx := context.Background()
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing password")
	}

	storages := store.NewStorages(db, log)
	if err = storages.UserRepository.UpdatePassword(ctx, username, string(hash)); err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("error updating password")
	}

	log.Info().Str("username", username).Msg("password updated")
}
