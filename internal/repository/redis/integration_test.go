//go:build integration

package redis

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/whiskerforge/catcombo/api/internal/testutil"
	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

func TestSearchCacheRoundTrip(t *testing.T) {
	rdb := testutil.SetupRedis(t)
	testutil.CleanupRedis(t, rdb)
	c := NewClientFromPool(rdb)

	results := []combo.Candidate{
		{Combos: []string{"B"}, TotalStrength: 3, Units: []string{"u2", "u3"}, UnitCount: 2},
	}
	if err := c.SetResults(context.Background(), 1, "Attack", 3, 3, results, time.Minute); err != nil {
		t.Fatalf("SetResults: %v", err)
	}

	got, hit, err := c.GetResults(context.Background(), 1, "Attack", 3, 3)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, results) {
		t.Errorf("got %+v, want %+v", got, results)
	}
}

func TestSearchCacheMiss(t *testing.T) {
	rdb := testutil.SetupRedis(t)
	testutil.CleanupRedis(t, rdb)
	c := NewClientFromPool(rdb)

	_, hit, err := c.GetResults(context.Background(), 1, "Attack", 3, 3)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if hit {
		t.Error("expected cache miss")
	}
}

// TestSearchCacheVersionIsolation: the same query under a different
// snapshot version must not see the old entry.
func TestSearchCacheVersionIsolation(t *testing.T) {
	rdb := testutil.SetupRedis(t)
	testutil.CleanupRedis(t, rdb)
	c := NewClientFromPool(rdb)

	results := []combo.Candidate{{Combos: []string{"A"}, TotalStrength: 2, Units: []string{"u1"}, UnitCount: 1}}
	if err := c.SetResults(context.Background(), 1, "Attack", 1, 5, results, time.Minute); err != nil {
		t.Fatalf("SetResults: %v", err)
	}

	_, hit, err := c.GetResults(context.Background(), 2, "Attack", 1, 5)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if hit {
		t.Error("version 2 should not see version 1 entries")
	}
}
