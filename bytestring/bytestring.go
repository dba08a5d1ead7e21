// Package bytestring implements the owning byte-string type the automaton
// operates over, including its total order.
//
// The order is unsigned byte-wise lexicographic with one inversion: when one
// string is a strict prefix of the other, the longer string compares less.
// Builders and callers both sort keys by this order, not the usual one.
package bytestring

import "unicode/utf8"

// String is an immutable owning byte buffer with the automaton's total
// order. The zero value is the empty string.
type String struct {
	b []byte
}

// New copies data into a new String.
func New(data []byte) String {
	cp := make([]byte, len(data))
	copy(cp, data)
	return String{b: cp}
}

// FromString builds a String from the UTF-8 bytes of s. Go strings are
// always valid byte sequences, so this never fails; callers that need to
// reject malformed Unicode should validate s themselves before calling.
func FromString(s string) String {
	return String{b: []byte(s)}
}

// Len returns the length in bytes.
func (s String) Len() int {
	return len(s.b)
}

// At returns the byte at index i. It panics if i is outside [0, Len()),
// since out-of-range access is a caller contract violation, not a
// recoverable condition.
func (s String) At(i int) byte {
	if i < 0 || i >= len(s.b) {
		panic("bytestring: index out of bounds")
	}
	return s.b[i]
}

// Bytes returns the underlying bytes. Callers must not mutate the
// returned slice.
func (s String) Bytes() []byte {
	return s.b
}

// Slice returns the substring view [lo, hi). It does not need to land on
// UTF-8 boundaries. Panics if the range is invalid.
func (s String) Slice(lo, hi int) String {
	if lo < 0 || hi > len(s.b) || lo > hi {
		panic("bytestring: slice index out of bounds")
	}
	return String{b: s.b[lo:hi]}
}

// String returns the bytes as a Go string, unchanged. If they are not valid
// UTF-8 the result holds the same invalid bytes; nothing is escaped or
// replaced (see IsValidUTF8).
func (s String) String() string {
	return string(s.b)
}

// IsValidUTF8 reports whether the bytes form valid UTF-8 text.
func (s String) IsValidUTF8() bool {
	return utf8.Valid(s.b)
}

// Compare returns -1, 0 or 1 comparing s and other by the automaton's total
// order: unsigned byte-wise lexicographic, except that when one string is a
// strict prefix of the other, the longer one compares less.
func (s String) Compare(other String) int {
	n := s.Len()
	if other.Len() < n {
		n = other.Len()
	}
	for i := 0; i < n; i++ {
		a, b := s.b[i], other.b[i]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case s.Len() == other.Len():
		return 0
	case s.Len() > other.Len():
		// other is a strict prefix of s; the longer string compares less.
		return -1
	default:
		return 1
	}
}

// Less reports whether s sorts strictly before other under Compare.
func (s String) Less(other String) bool {
	return s.Compare(other) < 0
}

// Equal reports whether s and other hold identical bytes.
func (s String) Equal(other String) bool {
	return s.Compare(other) == 0
}
