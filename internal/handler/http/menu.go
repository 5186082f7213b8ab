package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
)

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// weekday 0 means the whole week
	var weekday int
	if raw := r.URL.Query().Get("weekday"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Msg("invalid weekday")
			utils.WriteJSONError(w, "invalid weekday", http.StatusBadRequest)
			return
		}
		weekday = parsed
	}

	items, err := h.services.MenuService.ListMenu(r.Context(), weekday)
	if err != nil {
		log.Err(err).Msg("menu listing failed")
		utils.WriteJSONError(w, "menu listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	added, err := h.services.MenuService.AddMenuItem(ctx, item)
	if err != nil {
		log.Err(err).Str("name", item.Name).Msg("menu item creation failed")
		utils.WriteJSONError(w, "menu item creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid menu item id")
		utils.WriteJSONError(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	if err := h.services.MenuService.RemoveMenuItem(r.Context(), itemID); err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("menu item removal failed")
		utils.WriteJSONError(w, "menu item removal failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
