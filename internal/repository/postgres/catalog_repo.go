package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

// CatalogRepo loads the unit and combo tables from Postgres. The
// schema mirrors the tabular file format: `units` has the four
// evolution-stage columns, `combos` has a name, an effect label, and
// five unit slots. NULL cells are absent stages/slots.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a CatalogRepo.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// LoadUnits reads every unit evolution chain.
func (r *CatalogRepo) LoadUnits(ctx context.Context) ([]combo.UnitRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT first, evolved, true_form, ultra FROM units ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}
	defer rows.Close()

	var out []combo.UnitRow
	for rows.Next() {
		var first, evolved, trueForm, ultra sql.NullString
		if err := rows.Scan(&first, &evolved, &trueForm, &ultra); err != nil {
			return nil, fmt.Errorf("scan unit row: %w", err)
		}
		out = append(out, combo.UnitRow{
			First:   first.String,
			Evolved: evolved.String,
			True:    trueForm.String,
			Ultra:   ultra.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units: %w", err)
	}
	return out, nil
}

// LoadCombos reads every combo row with its five unit slots.
func (r *CatalogRepo) LoadCombos(ctx context.Context) ([]combo.ComboRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, effect, unit1, unit2, unit3, unit4, unit5 FROM combos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query combos: %w", err)
	}
	defer rows.Close()

	var out []combo.ComboRow
	for rows.Next() {
		var name, effect sql.NullString
		slots := make([]sql.NullString, combo.MaxUnitSlots)
		if err := rows.Scan(&name, &effect, &slots[0], &slots[1], &slots[2], &slots[3], &slots[4]); err != nil {
			return nil, fmt.Errorf("scan combo row: %w", err)
		}
		units := make([]string, combo.MaxUnitSlots)
		for i, s := range slots {
			units[i] = s.String
		}
		out = append(out, combo.ComboRow{Name: name.String, Effect: effect.String, Units: units})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate combos: %w", err)
	}
	return out, nil
}
