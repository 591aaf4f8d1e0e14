package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/whiskerforge/catcombo/api/internal/model"
	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

// --- Fakes ---

type fakeSource struct {
	units    []combo.UnitRow
	combos   []combo.ComboRow
	unitErr  error
	comboErr error
	loads    int
}

func (f *fakeSource) LoadUnits(context.Context) ([]combo.UnitRow, error) {
	f.loads++
	return f.units, f.unitErr
}

func (f *fakeSource) LoadCombos(context.Context) ([]combo.ComboRow, error) {
	return f.combos, f.comboErr
}

type fakeCache struct {
	stored     map[string][]combo.Candidate
	setVersion int64
}

func cacheKey(version int64, effectType string, strength, maxUnits int) string {
	return fmt.Sprintf("%d:%s:%d:%d", version, effectType, strength, maxUnits)
}

func (f *fakeCache) GetResults(_ context.Context, version int64, effectType string, strength, maxUnits int) ([]combo.Candidate, bool, error) {
	r, ok := f.stored[cacheKey(version, effectType, strength, maxUnits)]
	return r, ok, nil
}

func (f *fakeCache) SetResults(_ context.Context, version int64, effectType string, strength, maxUnits int, results []combo.Candidate, _ time.Duration) error {
	if f.stored == nil {
		f.stored = make(map[string][]combo.Candidate)
	}
	f.setVersion = version
	f.stored[cacheKey(version, effectType, strength, maxUnits)] = results
	return nil
}

type fakeBroadcaster struct {
	events []model.CatalogInfo
}

func (f *fakeBroadcaster) BroadcastCatalogReloaded(info model.CatalogInfo) {
	f.events = append(f.events, info)
}

func testSource() *fakeSource {
	return &fakeSource{
		units: []combo.UnitRow{
			{First: "Cat", Evolved: "Macho Cat", True: "Mohawk Cat"},
		},
		combos: []combo.ComboRow{
			{Name: "A", Effect: "Attack (M)", Units: []string{"u1", "u2"}},
			{Name: "B", Effect: "Attack (L)", Units: []string{"u2", "u3"}},
			{Name: "C", Effect: "Research (Sm)", Units: []string{"Cat"}},
		},
	}
}

// --- Tests ---

func TestQueriesBeforeLoadFailLoudly(t *testing.T) {
	svc := NewComboService(testSource(), nil, 0, "")

	if _, err := svc.EffectTypes(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("EffectTypes: expected ErrNotLoaded, got %v", err)
	}
	if _, _, err := svc.FindCombinations(context.Background(), "Attack", 1, 5); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("FindCombinations: expected ErrNotLoaded, got %v", err)
	}
	if _, err := svc.AvailableCombos([]string{"Cat"}); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("AvailableCombos: expected ErrNotLoaded, got %v", err)
	}
}

func TestLoadAndQuery(t *testing.T) {
	svc := NewComboService(testSource(), nil, 0, "")
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	types, err := svc.EffectTypes()
	if err != nil {
		t.Fatalf("EffectTypes: %v", err)
	}
	if want := []string{"Attack", "Research"}; !reflect.DeepEqual(types, want) {
		t.Errorf("EffectTypes = %v, want %v", types, want)
	}

	results, cached, err := svc.FindCombinations(context.Background(), "Attack", 3, 3)
	if err != nil {
		t.Fatalf("FindCombinations: %v", err)
	}
	if cached {
		t.Error("no cache configured, result should not be cached")
	}
	if len(results) == 0 || !reflect.DeepEqual(results[0].Combos, []string{"B"}) {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestLoadErrorPropagates(t *testing.T) {
	src := testSource()
	src.comboErr = errors.New("table corrupted")
	svc := NewComboService(src, nil, 0, "")

	if err := svc.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	// A failed load must not install a half-built snapshot.
	if _, err := svc.EffectTypes(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded after failed load, got %v", err)
	}
}

func TestReloadBumpsVersionAndBroadcasts(t *testing.T) {
	svc := NewComboService(testSource(), nil, 0, "")
	bc := &fakeBroadcaster{}
	svc.SetBroadcaster(bc)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	first, _ := svc.Info()

	info, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if info.Version != first.Version+1 {
		t.Errorf("expected version %d, got %d", first.Version+1, info.Version)
	}
	if len(bc.events) != 1 || bc.events[0].Version != info.Version {
		t.Errorf("expected one reload broadcast for version %d, got %+v", info.Version, bc.events)
	}
}

func TestFindCombinationsUsesCache(t *testing.T) {
	cache := &fakeCache{}
	svc := NewComboService(testSource(), cache, time.Minute, "")
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// First query misses and populates the cache.
	results, cached, err := svc.FindCombinations(context.Background(), "Attack", 3, 3)
	if err != nil {
		t.Fatalf("FindCombinations: %v", err)
	}
	if cached {
		t.Error("first query should miss the cache")
	}
	if cache.setVersion != 1 {
		t.Errorf("cache write should use snapshot version 1, got %d", cache.setVersion)
	}

	// Second identical query hits.
	again, cached, err := svc.FindCombinations(context.Background(), "Attack", 3, 3)
	if err != nil {
		t.Fatalf("FindCombinations: %v", err)
	}
	if !cached {
		t.Error("second query should hit the cache")
	}
	if !reflect.DeepEqual(again, results) {
		t.Errorf("cached results differ: %+v vs %+v", again, results)
	}

	// Reload bumps the version, so the old entry no longer matches.
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	_, cached, err = svc.FindCombinations(context.Background(), "Attack", 3, 3)
	if err != nil {
		t.Fatalf("FindCombinations: %v", err)
	}
	if cached {
		t.Error("reload should invalidate cached entries")
	}
}

func TestAvailableCombos(t *testing.T) {
	svc := NewComboService(testSource(), nil, 0, "")
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Mohawk Cat is an evolution of Cat, so combo C activates.
	resp, err := svc.AvailableCombos([]string{"Mohawk Cat"})
	if err != nil {
		t.Fatalf("AvailableCombos: %v", err)
	}
	if resp.TotalFound != 1 || resp.Combos[0].Name != "C" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.OwnedCount != 1 {
		t.Errorf("expected owned_count=1, got %d", resp.OwnedCount)
	}

	// No units and no roster configured.
	if _, err := svc.AvailableCombos(nil); !errors.Is(err, ErrNoOwnedUnits) {
		t.Errorf("expected ErrNoOwnedUnits, got %v", err)
	}
}
