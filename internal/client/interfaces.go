// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/littlelemon/restaurant-server/models"
)

// APIClient is the typed surface of the restaurant REST API.
//
// Register and Login store the returned token on the client, so subsequent
// authenticated calls need no explicit SetToken.
type APIClient interface {
	// Register creates a new account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an existing account and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CreateMenuItem adds a dish to the menu. Requires a token.
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)

	// ListMenuItems returns the full menu. Requires a token.
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)

	// CreateBooking reserves a table. Requires a token.
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)

	// ListBookings returns all reservations. Requires a token.
	ListBookings(ctx context.Context) ([]models.Booking, error)

	// SetToken replaces the token used for authenticated requests.
	SetToken(token string)

	// Token returns the token currently held by the client.
	Token() string
}
