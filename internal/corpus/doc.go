// Package corpus loads document files and derives their normalized form.
//
// Each document keeps both its raw content, for display, and its filtered
// content, for comparison. Filtered content is computed exactly once per
// run and may be served from the optional normalization cache.
package corpus
