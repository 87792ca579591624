package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/littlelemon/restaurant-server/internal/config"
	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/utils"
	"github.com/littlelemon/restaurant-server/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewAPIClient(cfg config.Client, logger *logger.Logger) (APIClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid client http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (h *httpAPIClient) Token() string {
	return h.token
}

// Register implements [APIClient]. It POSTs the credentials to
// POST /api/register/ and stores the token from the response body via
// SetToken.
func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&authResp).
		Post("/api/register/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// Login implements [APIClient]. It POSTs the credentials to POST /api/login/
// and stores the token from the response body via SetToken.
func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&authResp).
		Post("/api/login/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// CreateMenuItem implements [APIClient].
func (h *httpAPIClient) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	var created models.MenuItem

	resp, err := h.authorizedRequest(ctx).
		SetBody(item).
		SetResult(&created).
		Post("/api/menu/")
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("create menu item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MenuItem{}, err
	}

	return created, nil
}

// ListMenuItems implements [APIClient].
func (h *httpAPIClient) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem

	resp, err := h.authorizedRequest(ctx).
		SetResult(&items).
		Get("/api/menu/")
	if err != nil {
		return nil, fmt.Errorf("list menu items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateBooking implements [APIClient].
func (h *httpAPIClient) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	var created models.Booking

	resp, err := h.authorizedRequest(ctx).
		SetBody(booking).
		SetResult(&created).
		Post("/api/bookings/")
	if err != nil {
		return models.Booking{}, fmt.Errorf("create booking request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Booking{}, err
	}

	return created, nil
}

// ListBookings implements [APIClient].
func (h *httpAPIClient) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking

	resp, err := h.authorizedRequest(ctx).
		SetResult(&bookings).
		Get("/api/bookings/")
	if err != nil {
		return nil, fmt.Errorf("list bookings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return bookings, nil
}

// authorizedRequest prepares a request carrying the stored token.
func (h *httpAPIClient) authorizedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Token "+h.token)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
