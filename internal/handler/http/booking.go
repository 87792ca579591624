package http

import (
	"encoding/json"
	"net/http"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/utils"
	"github.com/littlelemon/restaurant-server/models"
)

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookings, err := h.services.BookingService.ListBookings(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBookings").Msg("error listing bookings")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, bookings, http.StatusOK)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBooking").Msg("invalid id url param")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid id"}, http.StatusBadRequest)
		return
	}

	booking, err := h.services.BookingService.GetBooking(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBooking").Int64("id", id).Msg("error getting booking")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, booking, http.StatusOK)
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		log.Err(err).Str("func", "*Handler.createBooking").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.BookingService.CreateBooking(r.Context(), booking)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBooking").Msg("error creating booking")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateBooking").Msg("invalid id url param")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid id"}, http.StatusBadRequest)
		return
	}

	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		log.Err(err).Str("func", "*Handler.updateBooking").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON"}, http.StatusBadRequest)
		return
	}

	booking.ID = id

	updated, err := h.services.BookingService.UpdateBooking(r.Context(), booking)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateBooking").Int64("id", id).Msg("error updating booking")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteBooking").Msg("invalid id url param")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid id"}, http.StatusBadRequest)
		return
	}

	if err := h.services.BookingService.DeleteBooking(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteBooking").Int64("id", id).Msg("error deleting booking")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
