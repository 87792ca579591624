package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/utils"
	"github.com/littlelemon/restaurant-server/models"
)

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.MenuService.ListMenuItems(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMenuItems").Msg("error listing menu items")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMenuItem").Msg("invalid id url param")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid id"}, http.StatusBadRequest)
		return
	}

	item, err := h.services.MenuService.GetMenuItem(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMenuItem").Int64("id", id).Msg("error getting menu item")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.createMenuItem").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.MenuService.CreateMenuItem(r.Context(), item)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createMenuItem").Msg("error creating menu item")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateMenuItem").Msg("invalid id url param")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid id"}, http.StatusBadRequest)
		return
	}

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.updateMenuItem").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON"}, http.StatusBadRequest)
		return
	}

	// the id in the URL is authoritative, any id in the body is ignored
	item.ID = id

	updated, err := h.services.MenuService.UpdateMenuItem(r.Context(), item)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateMenuItem").Int64("id", id).Msg("error updating menu item")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteMenuItem").Msg("invalid id url param")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid id"}, http.StatusBadRequest)
		return
	}

	if err := h.services.MenuService.DeleteMenuItem(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteMenuItem").Int64("id", id).Msg("error deleting menu item")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// idFromURL parses the {id} url parameter of the current route.
func idFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
