// Package conv provides checked integer conversions for persistence code.
//
// Counts and lengths read from snapshots are untrusted; they go through ToInt
// before being used to size anything. Conversions that are safe by
// construction, such as label indices bounded by MaxLabels, use plain casts.
package conv
