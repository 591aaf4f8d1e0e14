package repository

import (
	"context"
	"time"

	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

// CatalogSource loads the raw unit and combo tables. Implementations
// read TSV/XLSX files or Postgres; both tables must load successfully
// before the query surface may serve requests.
type CatalogSource interface {
	LoadUnits(ctx context.Context) ([]combo.UnitRow, error)
	LoadCombos(ctx context.Context) ([]combo.ComboRow, error)
}

// SearchCache caches find-combinations results (Redis). Keys carry the
// catalog snapshot version, so a reload invalidates stale entries
// without explicit deletion.
type SearchCache interface {
	GetResults(ctx context.Context, version int64, effectType string, strength, maxUnits int) ([]combo.Candidate, bool, error)
	SetResults(ctx context.Context, version int64, effectType string, strength, maxUnits int, results []combo.Candidate, ttl time.Duration) error
}
