package combo

import (
	"reflect"
	"testing"
)

func TestNewCatalogNormalization(t *testing.T) {
	rows := []ComboRow{
		{Name: "Bony Bone", Effect: "Attack (M)", Units: []string{"Cat", "", "Axe Cat", "", ""}},
		{Name: "Biohazard", Effect: "Research (Sm)", Units: []string{"Cat"}},
		{Name: "Blank Effect", Effect: "", Units: []string{"Titan Cat"}},
	}
	cat := NewCatalog(rows)

	if cat.Len() != 3 {
		t.Fatalf("expected 3 combos, got %d", cat.Len())
	}

	combos := cat.Combos()
	if got, want := combos[0].Units, []string{"Cat", "Axe Cat"}; !reflect.DeepEqual(got, want) {
		t.Errorf("blank slots should be skipped: got %v, want %v", got, want)
	}
	if combos[0].EffectType != "Attack" || combos[0].Strength != 2 {
		t.Errorf("got (%q, %d), want (Attack, 2)", combos[0].EffectType, combos[0].Strength)
	}
	if combos[2].EffectType != "" || combos[2].Strength != 0 {
		t.Errorf("blank effect should parse to no type: got (%q, %d)", combos[2].EffectType, combos[2].Strength)
	}
}

// TestNewCatalogKeepsDuplicates confirms normalization does not
// deduplicate rows sharing a name or unit set.
func TestNewCatalogKeepsDuplicates(t *testing.T) {
	rows := []ComboRow{
		{Name: "Twins", Effect: "Attack (Sm)", Units: []string{"Cat"}},
		{Name: "Twins", Effect: "Attack (L)", Units: []string{"Cat"}},
	}
	if got := NewCatalog(rows).Len(); got != 2 {
		t.Errorf("expected both rows kept, got %d", got)
	}
}

func TestEffectTypes(t *testing.T) {
	rows := []ComboRow{
		{Name: "a", Effect: "Research (M)", Units: []string{"u1"}},
		{Name: "b", Effect: "Attack (Sm)", Units: []string{"u2"}},
		{Name: "c", Effect: "Attack (XL)", Units: []string{"u3"}},
		{Name: "d", Effect: "", Units: []string{"u4"}},
	}
	got := NewCatalog(rows).EffectTypes()
	want := []string{"Attack", "Research"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EffectTypes() = %v, want %v", got, want)
	}
}
