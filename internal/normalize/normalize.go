package normalize

import "regexp"

// Placeholder replaces collapsed numeric and hex literals.
const Placeholder = "@"

// BarMarker replaces collapsed separator bars.
const BarMarker = "="

var (
	hexPattern    = regexp.MustCompile(`(?i)0x[0-9a-f]+`)
	numberPattern = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)
	barPattern    = regexp.MustCompile(`(?m)(^[-=_~+!]+ | [-=_~+!]+$)`)
)

// CollapseHex replaces every 0x-prefixed hexadecimal literal with the
// placeholder. The prefix match is case-insensitive.
func CollapseHex(s string) string {
	return hexPattern.ReplaceAllString(s, Placeholder)
}

// CollapseNumbers replaces every maximal run of decimal digits, optionally
// followed by a decimal point and more digits, with the placeholder. Hex
// digit runs without a 0x prefix keep their letters; only the decimal
// portions collapse.
func CollapseNumbers(s string) string {
	return numberPattern.ReplaceAllString(s, Placeholder)
}

// CollapseBars shortens decorative separator bars at the start or end of
// each line to the bar marker. Bars are runs of -=_~+! adjacent to a
// space; their length often tracks embedded variable text, which would
// otherwise depress scores for structurally identical lines.
func CollapseBars(s string) string {
	return barPattern.ReplaceAllString(s, BarMarker)
}

// FilterSet selects which filters apply. The zero value applies nothing.
type FilterSet struct {
	Hex     bool
	Numbers bool
	Bars    bool
}

// AllFilters returns the default set with every filter enabled.
func AllFilters() FilterSet {
	return FilterSet{Hex: true, Numbers: true, Bars: true}
}

// Apply runs the enabled filters over content in chain order: hex, then
// numbers, then bars. Hex must precede numbers so that prefixed literals
// collapse to one placeholder.
func (f FilterSet) Apply(content string) string {
	if f.Hex {
		content = CollapseHex(content)
	}
	if f.Numbers {
		content = CollapseNumbers(content)
	}
	if f.Bars {
		content = CollapseBars(content)
	}
	return content
}

// Any reports whether at least one filter is enabled.
func (f FilterSet) Any() bool {
	return f.Hex || f.Numbers || f.Bars
}

// Mask returns a stable bitmask identifying the enabled filters, used to
// key cached normalized content.
func (f FilterSet) Mask() uint8 {
	var mask uint8
	if f.Hex {
		mask |= 1
	}
	if f.Numbers {
		mask |= 2
	}
	if f.Bars {
		mask |= 4
	}
	return mask
}
