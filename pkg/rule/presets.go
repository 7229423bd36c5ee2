package rule

import (
	"fmt"
	"sort"
	"strings"
)

// presets are the named rules selectable from the command line. All of
// them are two-state rules over the same grid model.
var presets = map[string]Rule{
	"life":     Conway,
	"highlife": MustParse("B36/S23"),
	"seeds":    MustParse("B2/S"),
	"daynight": MustParse("B3678/S34678"),
}

// Lookup resolves a preset name such as "life" or "highlife".
func Lookup(name string) (Rule, bool) {
	r, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// Names lists the available preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve accepts either a preset name or B/S notation.
func Resolve(s string) (Rule, error) {
	if r, ok := Lookup(s); ok {
		return r, nil
	}
	r, err := Parse(s)
	if err != nil {
		return Rule{}, fmt.Errorf("rule: %q is neither a preset (%s) nor valid notation: %w",
			s, strings.Join(Names(), ", "), err)
	}
	return r, nil
}
