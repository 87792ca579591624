package http

import (
	"errors"
	"net/http"

	"github.com/littlelemon/restaurant-server/internal/service"
	"github.com/littlelemon/restaurant-server/internal/store"
	"github.com/littlelemon/restaurant-server/internal/utils"
	"github.com/littlelemon/restaurant-server/models"
)

var errorStatusMap = map[error]int{
	// a duplicate username answers 400, not 409, to match the documented API
	service.ErrUsernameAndPasswordRequired: http.StatusBadRequest,
	store.ErrUsernameTaken:                 http.StatusBadRequest,
	service.ErrInvalidCredentials:          http.StatusUnauthorized,

	service.ErrValidationTitleRequired:     http.StatusBadRequest,
	service.ErrValidationNegativePrice:     http.StatusBadRequest,
	service.ErrValidationNegativeInventory: http.StatusBadRequest,

	service.ErrValidationNameRequired:        http.StatusBadRequest,
	service.ErrValidationGuestsRequired:      http.StatusBadRequest,
	service.ErrValidationBookingDateRequired: http.StatusBadRequest,

	store.ErrTokenNotFound:    http.StatusUnauthorized,
	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrMenuItemNotFound: http.StatusNotFound,
	store.ErrBookingNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the caller-visible wording for known failures.
// Responses never carry the internal error chain.
var errorMessageMap = map[error]string{
	service.ErrUsernameAndPasswordRequired: "Username and password are required",
	store.ErrUsernameTaken:                 "Username already exists",
	service.ErrInvalidCredentials:          "Invalid credentials",
	store.ErrTokenNotFound:                 "Invalid token",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if statusFromError(err) != http.StatusInternalServerError {
		for target := range errorStatusMap {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
	}
	return "Internal server error"
}

// writeError converts err into the uniform JSON failure body.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}
