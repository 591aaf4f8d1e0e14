package combo

import "sort"

// MaxUnitSlots is the number of unit slot columns in the combo table.
const MaxUnitSlots = 5

// ComboRow is one row of the combo table: a combo name, its raw effect
// label, and up to five required-unit slots. Absent slots are empty
// strings.
type ComboRow struct {
	Name   string
	Effect string
	Units  []string
}

// Combo is a normalized catalog entry: the derived effect type and
// strength tier plus the required unit set.
type Combo struct {
	Name       string   `json:"name"`
	EffectType string   `json:"effect_type"`
	Strength   int      `json:"strength"`
	Units      []string `json:"units"`
}

// Catalog holds the normalized combo records. Built once at load time
// and read-only afterwards; rows are kept as-is, including combos that
// share a name or unit set.
type Catalog struct {
	combos []Combo
}

// NewCatalog normalizes raw combo rows into a catalog. Each row keeps
// its present unit slots in slot order; the effect label is parsed into
// (effect type, strength tier).
func NewCatalog(rows []ComboRow) *Catalog {
	combos := make([]Combo, 0, len(rows))
	for _, row := range rows {
		var units []string
		for _, u := range row.Units {
			if u != "" {
				units = append(units, u)
			}
		}
		effectType, strength := ParseEffect(row.Effect)
		combos = append(combos, Combo{
			Name:       row.Name,
			EffectType: effectType,
			Strength:   strength,
			Units:      units,
		})
	}
	return &Catalog{combos: combos}
}

// Combos returns all normalized combo records in catalog order.
func (c *Catalog) Combos() []Combo {
	return c.combos
}

// Len returns the number of cataloged combos.
func (c *Catalog) Len() int {
	return len(c.combos)
}

// EffectTypes returns the sorted distinct effect types present in the
// catalog. Combos whose label parsed to no effect type are skipped.
func (c *Catalog) EffectTypes() []string {
	seen := make(map[string]bool)
	for _, cb := range c.combos {
		if cb.EffectType != "" {
			seen[cb.EffectType] = true
		}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
