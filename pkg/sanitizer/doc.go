// Package sanitizer normalizes user input before it is stored or validated.
//
// Transforms are plain func(T) T values. Apply runs a value through a list
// of transforms and Compose turns a list into a reusable pipeline:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveControlChars)
//	name := clean("  Ann\x00 ")
//
// Value handles the loosely typed values that form inputs produce: strings
// are transformed, booleans are kept as they are, anything else is an error.
package sanitizer
