package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/store"
	"github.com/littlelemon/restaurant-server/models"
)

// Success messages carried in the JSON body of the auth endpoints.
const (
	msgUserCreated     = "User created successfully"
	msgLoginSuccessful = "Login successful"
)

// tokenKeyBytes is the number of random bytes behind an opaque token key.
// Hex encoding yields a 40-character string.
const tokenKeyBytes = 20

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and opaque token
// issuance using a UserRepository and a TokenRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository owns the one-token-per-user mapping. Issuance goes
	// through its atomic get-or-create so a token, once issued, never
	// changes for the lifetime of the account.
	tokenRepository store.TokenRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		logger:          logger,
	}
}

// Register creates a new user account and issues its token.
//
// It validates that both Username and Password are non-empty, hashes the
// password with bcrypt, delegates persistence to the UserRepository, and
// finally get-or-creates the account's opaque token.
//
// Returns the response body for a 201 or:
//   - ErrUsernameAndPasswordRequired if Username or Password is empty.
//     No side effects in this case.
//   - A wrapped store.ErrUsernameTaken if the username is already registered,
//     whether caught here or by the database uniqueness constraint under a
//     concurrent duplicate registration. No rows are mutated.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("registration with missing credentials")
		return models.AuthResponse{}, ErrUsernameAndPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		Message:  msgUserCreated,
		Token:    token.Key,
		Username: user.Username,
	}, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks up the
// account, and compares the supplied password against the stored bcrypt hash.
// On success it get-or-creates the account's token: repeated logins always
// return the same key, and the only possible state change is the one-time
// first issuance for accounts created by means other than Register.
//
// Returns the response body for a 200 or:
//   - ErrUsernameAndPasswordRequired if Username or Password is empty.
//   - ErrInvalidCredentials for an unknown username AND for a wrong
//     password. The collapse is intentional: responses must not reveal
//     whether an account exists. Storage failures are not collapsed; they
//     are wrapped and propagated so they surface as server errors.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("login with missing credentials")
		return models.AuthResponse{}, ErrUsernameAndPasswordRequired
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Error().Str("username", req.Username).Msg("login for unknown username")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.AuthResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Error().Int64("id", user.UserID).Str("username", user.Username).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		Message:  msgLoginSuccessful,
		Token:    token.Key,
		Username: user.Username,
	}, nil
}

// Authenticate resolves a presented token key to the owning user account.
// Returns a wrapped store.ErrTokenNotFound for unknown or empty keys.
func (a *authService) Authenticate(ctx context.Context, tokenKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.tokenRepository.FindUserByKey(ctx, tokenKey)
	if err != nil {
		log.Err(err).Msg("token lookup failed")
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return user, nil
}

// issueToken get-or-creates the opaque token for user. A fresh candidate key
// is generated on every call, but the repository's atomic upsert guarantees
// the stored key wins whenever one already exists, so concurrent callers for
// the same account always observe a single token.
func (a *authService) issueToken(ctx context.Context, user models.User) (models.Token, error) {
	candidate, err := newTokenKey()
	if err != nil {
		return models.Token{}, err
	}

	token, err := a.tokenRepository.GetOrCreateToken(ctx, user.UserID, candidate)
	if err != nil {
		return models.Token{}, fmt.Errorf("token issuance failed: %w", err)
	}

	return token, nil
}

// newTokenKey produces a 40-character hex key from 20 random bytes.
func newTokenKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenGenerationFailed, err)
	}

	return hex.EncodeToString(buf), nil
}
