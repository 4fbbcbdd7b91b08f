package indicator

import (
	"fmt"
	"strconv"
	"strings"

	"stockchart/internal/cliparse"
)

// Supported indicator types.
const (
	TypeEMA = "ema"
	TypeSMA = "sma"
	TypeRSI = "rsi"
)

const maxPeriod = 1000

// Spec is one requested indicator, e.g. EMA with period 50 drawn in red.
type Spec struct {
	Type   string
	Period int
	Color  string
}

// Name returns the canonical identifier, e.g. "ema_50".
func (s Spec) Name() string {
	return fmt.Sprintf("%s_%d", s.Type, s.Period)
}

// ParseSpecs parses an indicators flag like "ema_50|red,sma_200|#00FF00".
// Colors are optional; omitted ones are drawn from the shared default
// palette preferring colors no other series uses. Duplicate name_period
// pairs are rejected.
func ParseSpecs(flag string) ([]Spec, error) {
	if strings.TrimSpace(flag) == "" {
		return nil, nil
	}

	var specs []Spec
	used := map[string]bool{}
	seen := map[string]bool{}
	for _, part := range strings.Split(flag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		spec, err := parseSingleSpec(part)
		if err != nil {
			return nil, fmt.Errorf("invalid indicator %q: %w", part, err)
		}
		if seen[spec.Name()] {
			return nil, fmt.Errorf("duplicate indicator %q", spec.Name())
		}
		seen[spec.Name()] = true
		if spec.Color != "" {
			used[spec.Color] = true
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no valid indicators in %q", flag)
	}

	for i := range specs {
		if specs[i].Color == "" {
			specs[i].Color = cliparse.PickColor(used)
			used[specs[i].Color] = true
		}
	}
	return specs, nil
}

func parseSingleSpec(s string) (Spec, error) {
	var spec Spec

	fields := strings.Split(s, "|")
	if len(fields) > 2 {
		return spec, fmt.Errorf("too many fields (maximum type_period|color)")
	}

	name := strings.ToLower(strings.TrimSpace(fields[0]))
	typ, periodStr, ok := strings.Cut(name, "_")
	if !ok {
		return spec, fmt.Errorf("expected type_period, e.g. ema_50")
	}
	switch typ {
	case TypeEMA, TypeSMA, TypeRSI:
		spec.Type = typ
	default:
		return spec, fmt.Errorf("unknown type %q (supported: ema, sma, rsi)", typ)
	}

	period, err := strconv.Atoi(periodStr)
	if err != nil {
		return spec, fmt.Errorf("period %q is not an integer", periodStr)
	}
	if period < 1 || period > maxPeriod {
		return spec, fmt.Errorf("period %d out of range 1..%d", period, maxPeriod)
	}
	spec.Period = period

	if len(fields) == 2 {
		color, err := cliparse.NormalizeColor(fields[1])
		if err != nil {
			return spec, err
		}
		spec.Color = color
	}
	return spec, nil
}
