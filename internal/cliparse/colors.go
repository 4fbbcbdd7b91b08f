// Package cliparse validates the indicator and horizontal-line flag values.
package cliparse

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
)

var namedColors = map[string]string{
	"red":     "#FF0000",
	"green":   "#00FF00",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"orange":  "#FFA500",
	"purple":  "#800080",
	"cyan":    "#00FFFF",
	"magenta": "#FF00FF",
	"black":   "#000000",
	"white":   "#FFFFFF",
	"gray":    "#808080",
	"grey":    "#808080",
}

// defaultPalette is the pool used when a line spec omits its color.
var defaultPalette = []string{
	"#FF0000", // red
	"#00FF00", // green
	"#0000FF", // blue
	"#FFA500", // orange
	"#800080", // purple
	"#00FFFF", // cyan
	"#FF00FF", // magenta
	"#FFFF00", // yellow
	"#FF6B35", // coral
	"#004E89", // navy
	"#32CD32", // lime green
	"#DC143C", // crimson
}

var hexColor = regexp.MustCompile(`^[0-9A-F]{6}$`)

// NormalizeColor resolves a named color or hex code (with or without '#')
// to canonical "#RRGGBB" form.
func NormalizeColor(color string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(color))

	if hex, ok := namedColors[c]; ok {
		return hex, nil
	}

	hex := strings.ToUpper(strings.TrimPrefix(c, "#"))
	if hexColor.MatchString(hex) {
		return "#" + hex, nil
	}

	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return "", fmt.Errorf("invalid color %q: use a named color (%s) or a hex code (#RRGGBB)",
		color, strings.Join(names, ", "))
}

// PickColor returns a palette color not yet in used, preferring unused
// entries; once the palette is exhausted any palette color may repeat.
func PickColor(used map[string]bool) string {
	var unused []string
	for _, c := range defaultPalette {
		if !used[c] {
			unused = append(unused, c)
		}
	}
	if len(unused) > 0 {
		return unused[rand.Intn(len(unused))]
	}
	return defaultPalette[rand.Intn(len(defaultPalette))]
}
