package cliparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is one static horizontal reference line for the chart and export.
type Line struct {
	Label string
	Value float64
	Color string
	Width int
}

// ParseLines parses a lines flag like "Support|28.2|blue|2,Resistance|30.5".
// Color and width are optional; omitted colors are drawn from the default
// palette preferring colors no other line uses, omitted widths default to 1.
func ParseLines(spec string) ([]Line, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	type rawLine struct {
		label string
		value float64
		color string // "" when unspecified
		width int    // 0 when unspecified
	}

	// First pass: parse everything and note explicitly chosen colors, so
	// random assignment can avoid them.
	var raws []rawLine
	used := map[string]bool{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		raw, err := parseSingleLine(part)
		if err != nil {
			return nil, fmt.Errorf("invalid line specification %q: %w", part, err)
		}
		if raw.color != "" {
			normalized, err := NormalizeColor(raw.color)
			if err != nil {
				return nil, fmt.Errorf("invalid line specification %q: %w", part, err)
			}
			raw.color = normalized
			used[normalized] = true
		}
		raws = append(raws, rawLine{raw.label, raw.value, raw.color, raw.width})
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("no valid lines in specification %q", spec)
	}

	// Second pass: fill in defaults.
	lines := make([]Line, 0, len(raws))
	for _, r := range raws {
		if r.color == "" {
			r.color = PickColor(used)
			used[r.color] = true
		}
		if r.width == 0 {
			r.width = 1
		}
		lines = append(lines, Line{Label: r.label, Value: r.value, Color: r.color, Width: r.width})
	}
	return lines, nil
}

func parseSingleLine(spec string) (struct {
	label string
	value float64
	color string
	width int
}, error) {
	var out struct {
		label string
		value float64
		color string
		width int
	}

	parts := strings.Split(spec, "|")
	if len(parts) < 2 {
		return out, fmt.Errorf("need at least label|value")
	}
	if len(parts) > 4 {
		return out, fmt.Errorf("too many fields (maximum label|value|color|width)")
	}

	out.label = strings.TrimSpace(parts[0])
	if out.label == "" {
		return out, fmt.Errorf("label cannot be empty")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return out, fmt.Errorf("value %q is not a number", parts[1])
	}
	out.value = value

	if len(parts) >= 3 {
		out.color = strings.TrimSpace(parts[2])
	}
	if len(parts) >= 4 && strings.TrimSpace(parts[3]) != "" {
		width, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil || width <= 0 {
			return out, fmt.Errorf("width %q must be a positive integer", parts[3])
		}
		out.width = width
	}
	return out, nil
}
