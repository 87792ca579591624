// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists. The
	// database uniqueness constraint is the authority; the error is raised
	// whether the duplicate was detected by a pre-check or by a
	// unique-violation surfaced from the INSERT itself.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrTokenNotFound is returned when a token key presented by a client
	// does not exist in the tokens table.
	ErrTokenNotFound = errors.New("no token was found")

	// ErrMenuItemNotFound is returned when a query or update targets a menu
	// item that does not exist in the database.
	ErrMenuItemNotFound = errors.New("menu item was not found")

	// ErrBookingNotFound is returned when a query or update targets a
	// booking that does not exist in the database.
	ErrBookingNotFound = errors.New("booking was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
