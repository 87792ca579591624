package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It owns the "tokens" table: one permanent opaque key
// per user, issued lazily.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken implements idempotent token issuance.
//
// The [getOrCreateToken] statement attempts to insert candidateKey and, on
// conflict with an existing row, returns the stored key instead. Two
// concurrent calls for the same user therefore always observe the same key:
// the tokens primary key decides the winner, not application code. The
// statement yields exactly one row in every outcome, including a conflicting
// insert committed by another session mid-statement, so a scan failure here
// is a genuine database fault.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.Token, error) {
	log := logger.FromContext(ctx)

	var token models.Token
	row := r.db.QueryRowContext(ctx, getOrCreateToken, userID, candidateKey)

	if err := row.Scan(&token.UserID, &token.Key, &token.CreatedAt); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Int64("user_id", userID).Msg("error: scanning token")
		return models.Token{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// FindUserByKey resolves a presented token key to its owning user record.
// Returns [ErrTokenNotFound] when the key is unknown.
func (r *tokenRepository) FindUserByKey(ctx context.Context, key string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByTokenKey, key)

	if err := row.Scan(&found.UserID, &found.Username, &found.PasswordHash, &found.Email, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrTokenNotFound
		}

		log.Err(err).Str("func", "*tokenRepository.FindUserByKey").Msg("error: scanning token owner")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
