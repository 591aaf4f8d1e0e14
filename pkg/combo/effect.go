package combo

import "strings"

// strengthMarkers maps the tier marker substring embedded in a raw
// effect label to its numeric tier. Scanned in ascending tier order
// (Sm, M, L, XL) so that parsing stays deterministic even if a label
// somehow carries two markers.
var strengthMarkers = []struct {
	text string
	tier int
}{
	{"(Sm)", 1},
	{"(M)", 2},
	{"(L)", 3},
	{"(XL)", 4},
}

const effectUpKeyword = "EffectUP"

// ParseEffect extracts the effect type and strength tier from a raw
// effect label, e.g. "Attack (L)" -> ("Attack", 3).
//
// An empty label yields ("", 0): empty type means no effect. Labels of
// the form `"Target" EffectUP (XL)` keep only the portion before the
// EffectUP keyword, trimmed and stripped of double quotes. A label with
// no recognized marker is returned verbatim with the default tier 1.
func ParseEffect(raw string) (effectType string, strength int) {
	if raw == "" {
		return "", 0
	}

	if strings.Contains(raw, effectUpKeyword) {
		for _, m := range strengthMarkers {
			if strings.Contains(raw, m.text) {
				before, _, _ := strings.Cut(raw, effectUpKeyword)
				return strings.ReplaceAll(strings.TrimSpace(before), `"`, ""), m.tier
			}
		}
	}

	for _, m := range strengthMarkers {
		if strings.Contains(raw, m.text) {
			return strings.TrimSpace(strings.ReplaceAll(raw, m.text, "")), m.tier
		}
	}

	return raw, 1
}
