// Package dfa implements the compact double-array automaton (C5), its
// traversal cursor (C7), and its binary file format (C6).
//
// An Automaton is produced by builder.Builder.BuildFSA or by Read, and is
// immutable and safe for concurrent readers thereafter.
package dfa

import "github.com/borospeti/automata/bytestring"

const (
	// emptySlot is the sentinel symbol marking an unused sym/nxt slot.
	emptySlot = 0x00
	// finalitySymbol marks a state as accepting when present at base+finalitySymbol.
	finalitySymbol = 0xFF
)

// Automaton is the immutable compact representation of a minimal acyclic
// DFA: two parallel arrays addressed by state-base + symbol, plus the start
// base.
type Automaton struct {
	sym   []byte
	nxt   []int32
	start int32
}

// New wraps already-packed sym/nxt/start arrays as an Automaton. It does not
// validate the arrays; callers that read them from an untrusted source
// should use Read instead, which validates the file header.
func New(sym []byte, nxt []int32, start int32) *Automaton {
	return &Automaton{sym: sym, nxt: nxt, start: start}
}

// Start returns a cursor positioned at the automaton's start state.
func (a *Automaton) Start() Cursor {
	return Cursor{aut: a, base: a.start, valid: true}
}

// Lookup reports whether seq is accepted by the automaton: equivalent to
// starting a cursor, consuming seq, and checking it is both valid and
// final.
func (a *Automaton) Lookup(seq []byte) (bool, error) {
	c := a.Start()
	valid, err := c.Consume(seq)
	if err != nil {
		return false, err
	}
	return valid && c.IsFinal(), nil
}

// Dictionary enumerates every accepted string, in ascending-byte
// depth-first order.
func (a *Automaton) Dictionary() []bytestring.String {
	var out []bytestring.String
	var word []byte
	a.walk(a.start, &word, &out)
	return out
}

func (a *Automaton) walk(base int32, word *[]byte, out *[]bytestring.String) {
	if a.isFinalAt(base) {
		*out = append(*out, bytestring.New(*word))
	}
	for s := 1; s < finalitySymbol; s++ {
		idx := int(base) + s
		if idx >= len(a.sym) || a.sym[idx] != byte(s) {
			continue
		}
		*word = append(*word, byte(s))
		a.walk(a.nxt[idx], word, out)
		*word = (*word)[:len(*word)-1]
	}
}

func (a *Automaton) isFinalAt(base int32) bool {
	idx := int(base) + finalitySymbol
	return idx >= 0 && idx < len(a.sym) && a.sym[idx] == finalitySymbol
}

func (a *Automaton) stepFrom(base int32, x byte) (int32, bool) {
	idx := int(base) + int(x)
	if idx < 0 || idx >= len(a.sym) || a.sym[idx] != x {
		return 0, false
	}
	return a.nxt[idx], true
}
