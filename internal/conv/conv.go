// Package conv provides safe narrowing integer conversions for the automaton
// package tree.
//
// State ids, slot offsets and array lengths are carried as plain int
// internally for arithmetic convenience, but the packed on-disk and
// in-memory representations use int32/uint32. These helpers centralize the
// bounds checks so a construction bug overflowing those ranges panics at the
// point of conversion instead of silently wrapping.
package conv

import "math"

// IntToInt32 converts n to int32, panicking if n is out of range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("automata/internal/conv: int value out of int32 range")
	}
	return int32(n)
}

// IntToUint32 converts n to uint32, panicking if n is negative or too large.
//
//go:inline
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("automata/internal/conv: int value out of uint32 range")
	}
	return uint32(n)
}

// Int32ToInt converts n to int. Always safe on platforms with 64-bit int,
// kept as a named conversion so call sites document intent.
//
//go:inline
func Int32ToInt(n int32) int {
	return int(n)
}

// Uint32ToInt converts n to int, panicking on platforms where int is 32-bit
// and n would overflow.
//
//go:inline
func Uint32ToInt(n uint32) int {
	if uint64(n) > math.MaxInt {
		panic("automata/internal/conv: uint32 value out of int range")
	}
	return int(n)
}
