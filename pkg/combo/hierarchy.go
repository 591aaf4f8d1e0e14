package combo

import "sort"

// UnitRow is one row of the unit table: the up-to-four evolution
// stages of a single base unit, weakest to strongest. Absent stages
// are empty strings.
type UnitRow struct {
	First   string
	Evolved string
	True    string
	Ultra   string
}

// Forms returns the stage names present in the row, in evolution order.
func (r UnitRow) Forms() []string {
	var forms []string
	for _, f := range []string{r.First, r.Evolved, r.True, r.Ultra} {
		if f != "" {
			forms = append(forms, f)
		}
	}
	return forms
}

// Hierarchy maps each unit to the set of units that satisfy a
// requirement for it: the unit itself and every later form in its
// evolution chain. Built once at load time and read-only afterwards,
// so it is safe for concurrent readers.
type Hierarchy struct {
	satisfiedBy map[string]map[string]bool
}

// BuildHierarchy constructs the satisfying-set relation from unit rows.
// A unit appearing in multiple chains accumulates the union of every
// chain's tail; entries only ever grow.
func BuildHierarchy(rows []UnitRow) *Hierarchy {
	h := &Hierarchy{satisfiedBy: make(map[string]map[string]bool)}
	for _, row := range rows {
		forms := row.Forms()
		for i, form := range forms {
			set := h.satisfiedBy[form]
			if set == nil {
				set = make(map[string]bool)
				h.satisfiedBy[form] = set
			}
			for _, later := range forms[i:] {
				set[later] = true
			}
		}
	}
	return h
}

// SatisfyingSet returns the sorted names of units that satisfy a
// requirement for the given unit. Unknown units have no satisfying set.
func (h *Hierarchy) SatisfyingSet(unit string) []string {
	set := h.satisfiedBy[unit]
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SatisfiesUnit reports whether owning the given unit satisfies a
// requirement for required, i.e. owned is required itself or a later
// form of it.
func (h *Hierarchy) SatisfiesUnit(required, owned string) bool {
	return owned == required || h.satisfiedBy[required][owned]
}

// Satisfies reports whether the owned units cover every required unit,
// counting evolved forms of a required unit as that unit.
func (h *Hierarchy) Satisfies(required, owned []string) bool {
	for _, req := range required {
		found := false
		for _, own := range owned {
			if h.SatisfiesUnit(req, own) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
