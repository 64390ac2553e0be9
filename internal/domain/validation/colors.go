package validation

import (
	"regexp"
	"sort"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named color of a palette, in key order.
func ValidatePaletteHex(prefix string, colors map[string]string) []string {
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []string
	for _, k := range keys {
		if !IsHexColor(colors[k]) {
			errs = append(errs, prefix+"."+k+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
