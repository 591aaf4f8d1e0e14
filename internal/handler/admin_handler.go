package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/whiskerforge/catcombo/api/internal/service"
)

// AdminHandler handles privileged catalog management endpoints.
type AdminHandler struct {
	comboSvc *service.ComboService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(comboSvc *service.ComboService) *AdminHandler {
	return &AdminHandler{comboSvc: comboSvc}
}

// Reload handles POST /api/v1/admin/reload. It re-reads the data sources
// and atomically swaps in the new snapshot.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	info, err := h.comboSvc.Reload(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Catalog reload failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// Info handles GET /api/v1/admin/catalog, describing the loaded snapshot.
func (h *AdminHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.comboSvc.Info()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
