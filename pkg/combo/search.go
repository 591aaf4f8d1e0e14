package combo

import (
	"sort"
	"strings"
)

// Candidate is one search result: a set of combos whose combined
// strength meets the target, with the deduplicated union of their
// required units.
type Candidate struct {
	Combos        []string `json:"combos"`
	TotalStrength int      `json:"total_strength"`
	Units         []string `json:"units"`
	UnitCount     int      `json:"unit_count"`
}

// FindCombinations enumerates sets of combos of the given effect type
// whose summed strength reaches targetStrength without requiring more
// than maxUnits distinct units.
//
// Enumeration is exhaustive over every subset of the matching combos
// (smallest subsets first, combos pre-sorted by strength descending),
// so cost is exponential in the number of matching combos. Catalogs
// hold at most a few dozen combos per effect type.
//
// Two candidates with the same resulting unit set are considered
// duplicates regardless of which combos produced them; the first one
// enumerated wins. Results are ordered by unit count ascending, then
// total strength descending.
func (c *Catalog) FindCombinations(effectType string, targetStrength, maxUnits int) []Candidate {
	var matching []Combo
	for _, cb := range c.combos {
		if cb.EffectType == effectType {
			matching = append(matching, cb)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Strength > matching[j].Strength
	})

	var results []Candidate
	seen := make(map[string]bool)

	for k := 1; k <= len(matching); k++ {
		forEachCombination(len(matching), k, func(idx []int) {
			total := 0
			for _, i := range idx {
				total += matching[i].Strength
			}
			if total < targetStrength {
				return
			}

			unitSet := make(map[string]bool)
			for _, i := range idx {
				for _, u := range matching[i].Units {
					unitSet[u] = true
				}
			}
			if len(unitSet) > maxUnits {
				return
			}

			units := make([]string, 0, len(unitSet))
			for u := range unitSet {
				units = append(units, u)
			}
			sort.Strings(units)

			key := strings.Join(units, "\x1f")
			if seen[key] {
				return
			}
			seen[key] = true

			names := make([]string, len(idx))
			for n, i := range idx {
				names[n] = matching[i].Name
			}
			results = append(results, Candidate{
				Combos:        names,
				TotalStrength: total,
				Units:         units,
				UnitCount:     len(units),
			})
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].UnitCount != results[j].UnitCount {
			return results[i].UnitCount < results[j].UnitCount
		}
		return results[i].TotalStrength > results[j].TotalStrength
	})
	return results
}

// forEachCombination calls fn with every k-element index combination of
// 0..n-1 in lexicographic order. The slice passed to fn is reused
// between calls.
func forEachCombination(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			fn(idx)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
