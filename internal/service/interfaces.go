package service

import (
	"context"

	"github.com/littlelemon/restaurant-server/models"
)

// AuthService orchestrates registration and login against the credential and
// token stores, enforcing the validation rules and producing the uniform
// response contract of the /api/register/ and /api/login/ endpoints.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Authenticate resolves a presented opaque token key to the account it
	// belongs to. Used by the auth middleware protecting the CRUD routes.
	Authenticate(ctx context.Context, tokenKey string) (models.User, error)
}

// MenuService provides validated CRUD over menu items.
type MenuService interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

// BookingService provides validated CRUD over bookings.
type BookingService interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id int64) (models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	UpdateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}
