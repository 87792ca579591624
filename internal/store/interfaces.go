package store

import (
	"context"

	"github.com/littlelemon/restaurant-server/models"
)

// UserRepository is the credential store: a persistent mapping from username
// to hashed password and profile fields, uniqueness-enforced on username.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// TokenRepository is the token store: a persistent one-to-one mapping from
// user to opaque bearer token with idempotent get-or-create issuance.
type TokenRepository interface {
	// GetOrCreateToken returns the existing token for userID, or atomically
	// inserts candidateKey and returns it if the user has no token yet.
	// Under concurrent calls for the same user exactly one key wins and is
	// returned to all callers.
	GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.Token, error)

	// FindUserByKey resolves a presented token key to its owning user.
	FindUserByKey(ctx context.Context, key string) (models.User, error)
}

// MenuRepository provides CRUD over menu items.
type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

// BookingRepository provides CRUD over bookings.
type BookingRepository interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id int64) (models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	UpdateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}
