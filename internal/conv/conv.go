// Package conv provides safe integer conversion helpers for the automaton
// and search kernel.
//
// Node IDs are carried as int while the automaton arena grows and are
// narrowed to a 32-bit NodeID when a node is allocated. These helpers
// perform bounds checking before narrowing so a pathological input (an
// automaton with more nodes than a 32-bit ID can hold) fails loudly
// instead of wrapping silently.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Compare in uint so 32-bit platforms, where int can't represent
	// math.MaxUint32, don't overflow the comparison itself.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("fuzzyac/internal/conv: int value out of uint32 range")
	}
	return uint32(n)
}

// Uint64ToUint32 safely converts a uint64 to uint32.
// Panics if n > math.MaxUint32.
func Uint64ToUint32(n uint64) uint32 {
	if n > math.MaxUint32 {
		panic("fuzzyac/internal/conv: uint64 value out of uint32 range")
	}
	return uint32(n)
}
