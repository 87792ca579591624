package service

import "errors"

var (
	// ErrUsernameAndPasswordRequired is returned by Register and Login when
	// either required credential field is missing or empty.
	ErrUsernameAndPasswordRequired = errors.New("username and password are required")

	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password. The two cases are deliberately
	// indistinguishable so that callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenGenerationFailed is returned when a new opaque token key
	// cannot be produced from the system's randomness source.
	ErrTokenGenerationFailed = errors.New("token generation failed")

	ErrValidationTitleRequired     = errors.New("menu item title is required")
	ErrValidationNegativePrice     = errors.New("menu item price must not be negative")
	ErrValidationNegativeInventory = errors.New("menu item inventory must not be negative")

	ErrValidationNameRequired        = errors.New("booking name is required")
	ErrValidationGuestsRequired      = errors.New("booking must have at least one guest")
	ErrValidationBookingDateRequired = errors.New("booking date is required")
)
