package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/whiskerforge/catcombo/api/internal/model"
	"github.com/whiskerforge/catcombo/api/internal/repository"
	"github.com/whiskerforge/catcombo/api/internal/roster"
	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

var (
	ErrNotLoaded    = errors.New("catalog not loaded")
	ErrNoOwnedUnits = errors.New("no owned units given and no roster configured")
)

// Snapshot is one immutable load of the catalog, hierarchy, and
// optional roster. Queries read whichever snapshot is current; a
// reload swaps in a fresh one atomically and never mutates an old one.
type Snapshot struct {
	Catalog   *combo.Catalog
	Hierarchy *combo.Hierarchy
	Roster    []string
	Version   int64
	LoadedAt  time.Time
}

// ComboService serves catalog queries over the current snapshot.
type ComboService struct {
	source      repository.CatalogSource
	cache       repository.SearchCache // nil disables caching
	cacheTTL    time.Duration
	rosterPath  string
	broadcaster Broadcaster

	snapshot atomic.Pointer[Snapshot]
	version  atomic.Int64
}

// NewComboService creates a ComboService. The cache may be nil.
func NewComboService(source repository.CatalogSource, cache repository.SearchCache, cacheTTL time.Duration, rosterPath string) *ComboService {
	return &ComboService{
		source:      source,
		cache:       cache,
		cacheTTL:    cacheTTL,
		rosterPath:  rosterPath,
		broadcaster: NoopBroadcaster{},
	}
}

// SetBroadcaster wires the WebSocket hub for reload notifications.
func (s *ComboService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Load reads the unit and combo tables from the source and installs a
// fresh snapshot. It must complete before any query is served; queries
// against an unloaded service fail with ErrNotLoaded rather than
// pretending an empty catalog was loaded.
func (s *ComboService) Load(ctx context.Context) error {
	unitRows, err := s.source.LoadUnits(ctx)
	if err != nil {
		return fmt.Errorf("load unit table: %w", err)
	}
	comboRows, err := s.source.LoadCombos(ctx)
	if err != nil {
		return fmt.Errorf("load combo table: %w", err)
	}

	var owned []string
	if s.rosterPath != "" {
		owned, err = roster.Load(s.rosterPath)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
	}

	snap := &Snapshot{
		Catalog:   combo.NewCatalog(comboRows),
		Hierarchy: combo.BuildHierarchy(unitRows),
		Roster:    owned,
		Version:   s.version.Add(1),
		LoadedAt:  time.Now().UTC(),
	}
	s.snapshot.Store(snap)

	log.Info().
		Int64("version", snap.Version).
		Int("units", len(unitRows)).
		Int("combos", snap.Catalog.Len()).
		Int("rosterUnits", len(owned)).
		Msg("Catalog loaded")
	return nil
}

// Reload re-reads the data sources, swaps the snapshot, and notifies
// subscribed WebSocket clients.
func (s *ComboService) Reload(ctx context.Context) (model.CatalogInfo, error) {
	if err := s.Load(ctx); err != nil {
		return model.CatalogInfo{}, err
	}
	info, err := s.Info()
	if err != nil {
		return model.CatalogInfo{}, err
	}
	s.broadcaster.BroadcastCatalogReloaded(info)
	return info, nil
}

func (s *ComboService) current() (*Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// EffectTypes returns the sorted distinct effect types in the catalog.
func (s *ComboService) EffectTypes() ([]string, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return snap.Catalog.EffectTypes(), nil
}

// Combos returns the normalized catalog entries.
func (s *ComboService) Combos() ([]combo.Combo, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return snap.Catalog.Combos(), nil
}

// Info describes the current snapshot.
func (s *ComboService) Info() (model.CatalogInfo, error) {
	snap, err := s.current()
	if err != nil {
		return model.CatalogInfo{}, err
	}
	return model.CatalogInfo{
		Version:     snap.Version,
		ComboCount:  snap.Catalog.Len(),
		EffectTypes: snap.Catalog.EffectTypes(),
		LoadedAt:    snap.LoadedAt,
	}, nil
}

// FindCombinations runs the combination search, consulting the result
// cache when one is configured. The second return reports a cache hit.
// Cache failures degrade to an uncached search rather than failing the
// query.
func (s *ComboService) FindCombinations(ctx context.Context, effectType string, strength, maxUnits int) ([]combo.Candidate, bool, error) {
	snap, err := s.current()
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		results, hit, cerr := s.cache.GetResults(ctx, snap.Version, effectType, strength, maxUnits)
		if cerr != nil {
			log.Warn().Err(cerr).Msg("Search cache read failed")
		} else if hit {
			return results, true, nil
		}
	}

	results, err := s.searchSafe(snap.Catalog, effectType, strength, maxUnits)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if cerr := s.cache.SetResults(ctx, snap.Version, effectType, strength, maxUnits, results, s.cacheTTL); cerr != nil {
			log.Warn().Err(cerr).Msg("Search cache write failed")
		}
	}
	return results, false, nil
}

// searchSafe runs the exhaustive search with a panic guard: an
// unexpected fault becomes an error surfaced to the caller instead of
// taking down the process.
func (s *ComboService) searchSafe(catalog *combo.Catalog, effectType string, strength, maxUnits int) (results []combo.Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("combination search failed: %v", r)
			log.Error().Interface("panic", r).Str("effectType", effectType).Msg("Search panicked")
		}
	}()
	return catalog.FindCombinations(effectType, strength, maxUnits), nil
}

// AvailableCombos returns the combos whose required units are covered
// by the owned units, counting evolved forms via the hierarchy. With no
// owned units given, the roster from the snapshot is used.
func (s *ComboService) AvailableCombos(owned []string) (model.AvailableResponse, error) {
	snap, err := s.current()
	if err != nil {
		return model.AvailableResponse{}, err
	}
	if len(owned) == 0 {
		owned = snap.Roster
	}
	if len(owned) == 0 {
		return model.AvailableResponse{}, ErrNoOwnedUnits
	}

	var available []model.AvailableCombo
	for _, cb := range snap.Catalog.Combos() {
		if snap.Hierarchy.Satisfies(cb.Units, owned) {
			available = append(available, model.AvailableCombo{
				Name:       cb.Name,
				EffectType: cb.EffectType,
				Strength:   cb.Strength,
				Units:      cb.Units,
			})
		}
	}
	return model.AvailableResponse{
		Combos:     available,
		TotalFound: len(available),
		OwnedCount: len(owned),
	}, nil
}
