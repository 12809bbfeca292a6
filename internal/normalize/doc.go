// Package normalize rewrites volatile substrings out of document text so
// that similarity comparisons reflect structure rather than incidental
// noise such as timestamps, addresses, and counters.
//
// Three filters are available: hexadecimal literal collapsing, numeric
// literal collapsing, and ASCII separator-bar collapsing. Each filter is a
// pure, idempotent text transform; a FilterSet selects which ones run and
// always applies them in a fixed order (hex before numbers, so a literal
// like 0x1A2B becomes a single placeholder instead of being partially
// consumed by the numeric filter first).
package normalize
