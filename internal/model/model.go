package model

import (
	"time"

	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

// SearchResponse is the find-combinations endpoint payload.
type SearchResponse struct {
	Results    []combo.Candidate `json:"results"`
	TotalFound int               `json:"total_found"`
	Cached     bool              `json:"cached,omitempty"`
}

// AvailableCombo is one combo the caller's owned units can activate.
type AvailableCombo struct {
	Name       string   `json:"name"`
	EffectType string   `json:"effect_type"`
	Strength   int      `json:"strength"`
	Units      []string `json:"units"`
}

// AvailableResponse is the available-combos endpoint payload.
type AvailableResponse struct {
	Combos     []AvailableCombo `json:"combos"`
	TotalFound int              `json:"total_found"`
	OwnedCount int              `json:"owned_count"`
}

// CatalogInfo describes the currently loaded snapshot.
type CatalogInfo struct {
	Version     int64     `json:"version"`
	ComboCount  int       `json:"combo_count"`
	EffectTypes []string  `json:"effect_types"`
	LoadedAt    time.Time `json:"loaded_at"`
}
