// Package client provides a typed HTTP client for the restaurant REST API.
//
// It is used by the command-line tools (most notably the sample-data seeder)
// to register accounts, obtain tokens, and manage menu items and bookings
// over the same public surface the API exposes to any other consumer.
package client
