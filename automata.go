// Package automata builds and queries minimal acyclic deterministic
// finite-state automata (MA-DFAs) over byte strings, following Daciuk,
// Mihov, Watson & Watson's incremental construction and minimization
// algorithm.
//
// An automaton is built once, from keys presented in ascending order, and
// is immutable and safe for concurrent readers thereafter. It supports
// membership lookup, dictionary enumeration, and position-by-position
// traversal via a cursor, and can be serialized to and read back from a
// compact binary file.
//
// Basic usage:
//
//	b := automata.NewBuilder()
//	for _, word := range []string{"abc", "ab", "b"} {
//	    if err := b.Insert(word); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	aut, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := aut.Lookup([]byte("abc"))
//
// Keys containing the reserved bytes 0x00 or 0xFF are rejected at query
// time; see package dfa for details.
package automata

import (
	"github.com/borospeti/automata/builder"
	"github.com/borospeti/automata/bytestring"
	"github.com/borospeti/automata/dfa"
	"github.com/borospeti/automata/pack"
)

// Automaton is a compact, immutable minimal acyclic DFA. It is safe for
// concurrent use by multiple readers.
type Automaton = dfa.Automaton

// Cursor is a position within an Automaton's transition graph, advanced one
// byte at a time.
type Cursor = dfa.Cursor

// Read loads an Automaton previously written by (*Automaton).Write,
// validating its header.
func Read(path string) (*Automaton, error) {
	return dfa.Read(path)
}

// PackerConfig tunes the sparse packer used by Builder.BuildWithConfig.
type PackerConfig = pack.Config

// DefaultPackerConfig returns the packer tuning used by Build.
func DefaultPackerConfig() PackerConfig {
	return pack.DefaultConfig()
}

// Builder incrementally constructs a minimal acyclic DFA from keys
// presented in ascending order.
//
// Builder wraps the lower-level builder package with a convenience API
// accepting both string and byte-string keys.
//
// Example:
//
//	b := automata.NewBuilder()
//	for _, word := range []string{"böfc-mufc", "böfc", "mufc-böfc", "mufc"} {
//	    _ = b.Insert(word)
//	}
//	aut, _ := b.Build()
type Builder struct {
	inner *builder.Builder
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{inner: builder.New()}
}

// NewBuilderWithCapacity creates an empty Builder with its internal state
// arena pre-sized to capacity.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{inner: builder.NewWithCapacity(capacity)}
}

// Insert inserts a key given as a string. See InsertBytes for the
// ordering and error contract.
func (b *Builder) Insert(key string) error {
	return b.inner.InsertSorted(bytestring.FromString(key))
}

// InsertBytes inserts a key given as raw bytes, which need not be valid
// UTF-8.
//
// Keys must be presented in the automaton's total order: unsigned
// byte-wise lexicographic, except that where one key is a strict prefix of
// another, the longer key must come first. A key that violates this order
// returns an error satisfying errors.Is(err, builder.ErrOrderViolation); a
// key equal to the previous key is silently accepted as a no-op.
// Inserting after Build or Finalize returns an error satisfying
// errors.Is(err, builder.ErrFinalized).
func (b *Builder) InsertBytes(key []byte) error {
	return b.inner.InsertSorted(bytestring.New(key))
}

// Finalize freezes the construction spine without packing. It is
// idempotent and is called automatically by Build if not already called.
func (b *Builder) Finalize() {
	b.inner.Finalize()
}

// Build finalizes the builder and packs the result into a queryable
// Automaton, using the default packer tuning.
func (b *Builder) Build() (*Automaton, error) {
	return b.inner.BuildFSA()
}

// BuildWithConfig is Build with explicit packer tuning.
func (b *Builder) BuildWithConfig(cfg PackerConfig) (*Automaton, error) {
	return b.inner.BuildFSAWithConfig(cfg)
}
