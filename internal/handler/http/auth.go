package http

import (
	"encoding/json"
	"net/http"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/utils"
	"github.com/littlelemon/restaurant-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON"}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Str("username", req.Username).Msg("registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("username", resp.Username).Msg("user successfully registered")

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON"}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Str("username", req.Username).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("username", resp.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, resp, http.StatusOK)
}
