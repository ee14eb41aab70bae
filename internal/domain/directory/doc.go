// Package directory holds the pure doctor directory logic: the filter and
// sort engine, the autocomplete index and control, the filter state reducer
// and the codec between filter state and URL query strings.
//
// Nothing in this package performs I/O or fails. Malformed input degrades to
// the default behaviour for that input.
package directory
