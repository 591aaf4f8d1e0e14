package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/whiskerforge/catcombo/api/internal/model"
	"github.com/whiskerforge/catcombo/api/internal/service"
	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

// Query parameter defaults for find-combinations.
const (
	defaultStrength = 1
	defaultMaxUnits = 5
)

// ComboHandler handles catalog and search endpoints.
type ComboHandler struct {
	comboSvc *service.ComboService
}

// NewComboHandler creates a ComboHandler.
func NewComboHandler(comboSvc *service.ComboService) *ComboHandler {
	return &ComboHandler{comboSvc: comboSvc}
}

// EffectTypes handles GET /api/v1/effect-types
func (h *ComboHandler) EffectTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.comboSvc.EffectTypes()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if types == nil {
		writeJSON(w, http.StatusOK, []string{})
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// ListCombos handles GET /api/v1/combos
func (h *ComboHandler) ListCombos(w http.ResponseWriter, r *http.Request) {
	combos, err := h.comboSvc.Combos()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, combos)
}

// FindCombinations handles GET /api/v1/find-combinations
func (h *ComboHandler) FindCombinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	effectType := q.Get("effect_type")
	if effectType == "" {
		writeError(w, http.StatusBadRequest, "effect_type is required")
		return
	}
	strength, ok := intParam(w, q.Get("strength"), "strength", defaultStrength)
	if !ok {
		return
	}
	maxUnits, ok := intParam(w, q.Get("max_units"), "max_units", defaultMaxUnits)
	if !ok {
		return
	}

	results, cached, err := h.comboSvc.FindCombinations(r.Context(), effectType, strength, maxUnits)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if results == nil {
		results = []combo.Candidate{}
	}
	writeJSON(w, http.StatusOK, model.SearchResponse{
		Results:    results,
		TotalFound: len(results),
		Cached:     cached,
	})
}

// AvailableCombos handles GET /api/v1/combos/available
func (h *ComboHandler) AvailableCombos(w http.ResponseWriter, r *http.Request) {
	var owned []string
	if raw := r.URL.Query().Get("units"); raw != "" {
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				owned = append(owned, u)
			}
		}
	}

	resp, err := h.comboSvc.AvailableCombos(owned)
	if err != nil {
		if errors.Is(err, service.ErrNoOwnedUnits) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}
	if resp.Combos == nil {
		resp.Combos = []model.AvailableCombo{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// intParam parses an optional integer query parameter, writing a 400
// and returning ok=false when the value is present but malformed.
func intParam(w http.ResponseWriter, raw, name string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return n, true
}

// writeServiceError maps service errors to HTTP statuses. An unloaded
// catalog is a server-side condition: queries before load are a
// deployment fault, never silently served from empty data.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotLoaded) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
