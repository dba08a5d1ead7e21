package builder

import (
	"encoding/binary"
	"hash/fnv"
)

// stateID is an arena index into Builder.states. It is also used, with the
// sentinel value sink, as an edge target denoting the shared finality sink
// q_final, which is never itself allocated an arena entry (see
// replaceOrRegister and DESIGN.md).
type stateID int

// sink is the edge target recorded for a finality (0xFF) transition. It is
// never a valid arena index, so it is unambiguous against real state ids.
const sink stateID = -1

// finalSymbol is the reserved byte marking a state as accepting.
const finalSymbol byte = 0xFF

// edge is one outgoing transition, ordered ascending by symbol within a
// node's trans slice (guaranteed by sorted insertion).
type edge struct {
	symbol byte
	target stateID
}

// node is one state under construction. Structural equality (and therefore
// minimization) is entirely determined by trans; a node carries no identity
// beyond its arena index.
type node struct {
	trans []edge
}

// findEdge returns the index of the transition on symbol, if any. trans is
// kept in ascending symbol order, so this stops scanning once it passes the
// target symbol.
func (b *Builder) findEdge(s stateID, symbol byte) (int, bool) {
	trans := b.states[s].trans
	for i, e := range trans {
		if e.symbol == symbol {
			return i, true
		}
		if e.symbol > symbol {
			break
		}
	}
	return 0, false
}

// lastNonFinalChildIdx returns the index, within state s's transitions, of
// the last transition that is not the finality marker, i.e. the most
// recently added real branch. This is the "last child" referred to by the
// minimization engine's replace_or_register step.
func (b *Builder) lastNonFinalChildIdx(s stateID) (idx int, target stateID, ok bool) {
	trans := b.states[s].trans
	n := len(trans)
	if n == 0 {
		return 0, 0, false
	}
	last := n - 1
	if trans[last].symbol == finalSymbol {
		last--
	}
	if last < 0 {
		return 0, 0, false
	}
	return last, trans[last].target, true
}

// signature computes an FNV-1a hash over id's transition list, combining
// each (symbol, target) pair. Two states with the same signature are
// signature-equal candidates; transEqual resolves hash collisions with an
// exact positional comparison.
func (b *Builder) signature(id stateID) uint64 {
	h := fnv.New64a()
	var buf [9]byte
	for _, e := range b.states[id].trans {
		buf[0] = e.symbol
		binary.LittleEndian.PutUint64(buf[1:], uint64(e.target))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// transEqual reports whether a and c have identical transition lists:
// same length and, positionally, identical (symbol, target) pairs. Because
// target states are always already registered by the time this is called
// (replaceOrRegister proceeds bottom-up), comparing target ids directly is
// equivalent to comparing right-language equality.
func (b *Builder) transEqual(a, c stateID) bool {
	ta, tc := b.states[a].trans, b.states[c].trans
	if len(ta) != len(tc) {
		return false
	}
	for i := range ta {
		if ta[i].symbol != tc[i].symbol || ta[i].target != tc[i].target {
			return false
		}
	}
	return true
}

// registerLookup returns a previously registered state equivalent to id, if
// one exists.
func (b *Builder) registerLookup(id stateID) (stateID, bool) {
	sig := b.signature(id)
	for _, cand := range b.register[sig] {
		if b.transEqual(cand, id) {
			return cand, true
		}
	}
	return 0, false
}

// registerInsert freezes id into the register under its current signature.
// Callers must not mutate id's transitions afterward.
func (b *Builder) registerInsert(id stateID) {
	sig := b.signature(id)
	b.register[sig] = append(b.register[sig], id)
}

// liveStates flattens the register into the set of canonical, reachable
// state ids remaining after Finalize. Iteration order is unspecified.
func (b *Builder) liveStates() []stateID {
	out := make([]stateID, 0, len(b.states))
	for _, bucket := range b.register {
		out = append(out, bucket...)
	}
	return out
}
