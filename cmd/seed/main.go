// Command seed fills a running API server with sample menu items and
// bookings. It talks to the server over the public HTTP API, so the server
// must be up and reachable at the configured client address.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/littlelemon/restaurant-server/internal/client"
	"github.com/littlelemon/restaurant-server/internal/config"
	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/models"
)

// seeder account used to authorize the sample-data requests.
const (
	seederUsername = "seeder"
	seederPassword = "seederpass"
)

func main() {
	log := logger.NewLogger("restaurant-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := client.NewAPIClient(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx := context.Background()

	if err = authenticate(ctx, api); err != nil {
		log.Fatal().Err(err).Msg("error authenticating seeder account")
	}

	menuItems := []models.MenuItem{
		{Title: "Pasta Carbonara", Price: 12.99, Inventory: 50},
		{Title: "Pizza Margherita", Price: 15.50, Inventory: 40},
		{Title: "Caesar Salad", Price: 8.99, Inventory: 60},
		{Title: "Grilled Salmon", Price: 24.99, Inventory: 25},
		{Title: "Chocolate Cake", Price: 6.99, Inventory: 30},
	}

	for _, item := range menuItems {
		created, err := api.CreateMenuItem(ctx, item)
		if err != nil {
			log.Fatal().Err(err).Str("title", item.Title).Msg("error creating menu item")
		}
		log.Info().Int64("id", created.ID).Str("title", created.Title).Float64("price", created.Price).Msg("created menu item")
	}

	now := time.Now()
	bookings := []models.Booking{
		{Name: "John Doe", NoOfGuests: 4, BookingDate: now.Add(7*24*time.Hour + 19*time.Hour)},
		{Name: "Jane Smith", NoOfGuests: 2, BookingDate: now.Add(8*24*time.Hour + 20*time.Hour)},
		{Name: "Michael Johnson", NoOfGuests: 6, BookingDate: now.Add(9*24*time.Hour + 18*time.Hour)},
		{Name: "Sarah Williams", NoOfGuests: 3, BookingDate: now.Add(10*24*time.Hour + 19*time.Hour + 30*time.Minute)},
		{Name: "Robert Brown", NoOfGuests: 5, BookingDate: now.Add(11*24*time.Hour + 20*time.Hour)},
	}

	for _, booking := range bookings {
		created, err := api.CreateBooking(ctx, booking)
		if err != nil {
			log.Fatal().Err(err).Str("name", booking.Name).Msg("error creating booking")
		}
		log.Info().Int64("id", created.ID).Str("name", created.Name).Int64("guests", created.NoOfGuests).Msg("created booking")
	}

	log.Info().Msg("sample data added successfully")
}

// authenticate registers the seeder account, falling back to login when the
// account already exists from a previous run.
func authenticate(ctx context.Context, api client.APIClient) error {
	_, err := api.Register(ctx, models.RegisterRequest{Username: seederUsername, Password: seederPassword})
	if err == nil {
		return nil
	}
	if !errors.Is(err, client.ErrBadRequest) {
		return err
	}

	_, err = api.Login(ctx, models.LoginRequest{Username: seederUsername, Password: seederPassword})
	return err
}
