// Package builder implements the incremental minimization builder (C2 +
// C3): a mutable DFA under construction that stays right-language-canonical
// after every inserted key, following Daciuk, Mihov, Watson & Watson's
// construction.
//
// Keys must be inserted in the automaton's total order (see package
// bytestring): unsigned byte-wise lexicographic, except that between two
// strings where one is a strict prefix of the other, the longer one sorts
// first.
package builder

import (
	"github.com/borospeti/automata/bytestring"
	"github.com/borospeti/automata/dfa"
	"github.com/borospeti/automata/pack"
)

// Builder is a DFA under incremental construction. The zero value is not
// usable; construct with New or NewWithCapacity. A Builder is not safe for
// concurrent use.
type Builder struct {
	states    []node
	register  map[uint64][]stateID
	start     stateID
	hasPrev   bool
	prev      bytestring.String
	finalized bool
}

// New creates an empty Builder.
func New() *Builder {
	return NewWithCapacity(16)
}

// NewWithCapacity creates an empty Builder with its state arena pre-sized
// to capacity, for callers that know roughly how many keys they will
// insert.
func NewWithCapacity(capacity int) *Builder {
	b := &Builder{
		states:   make([]node, 0, capacity),
		register: make(map[uint64][]stateID),
	}
	b.start = b.newState()
	return b
}

func (b *Builder) newState() stateID {
	id := stateID(len(b.states))
	b.states = append(b.states, node{})
	return id
}

// InsertSorted inserts key into the automaton under construction.
//
// Keys must arrive in the automaton's total order. A key equal to the
// previously inserted key is silently dropped (duplicate). A key that
// sorts strictly before the previous key returns ErrOrderViolation and
// leaves the builder unchanged. Inserting after Finalize returns
// ErrFinalized.
func (b *Builder) InsertSorted(key bytestring.String) error {
	if b.finalized {
		return ErrFinalized
	}
	if b.hasPrev {
		switch cmp := b.prev.Compare(key); {
		case cmp > 0:
			return ErrOrderViolation
		case cmp == 0:
			return nil
		}
	}

	cur := b.start
	prefixLen := 0
	for prefixLen < key.Len() {
		idx, ok := b.findEdge(cur, key.At(prefixLen))
		if !ok {
			break
		}
		cur = b.states[cur].trans[idx].target
		prefixLen++
	}

	if len(b.states[cur].trans) > 0 {
		b.replaceOrRegister(cur)
	}
	b.addSuffix(cur, key, prefixLen)

	b.prev = key
	b.hasPrev = true
	return nil
}

// addSuffix appends a fresh chain of states for key[from:], descending from
// state, then marks the chain's terminal state final (appending a
// transition on the reserved finality symbol to the shared sink) unless it
// is already final.
func (b *Builder) addSuffix(state stateID, key bytestring.String, from int) {
	cur := state
	for i := from; i < key.Len(); i++ {
		next := b.newState()
		b.states[cur].trans = append(b.states[cur].trans, edge{symbol: key.At(i), target: next})
		cur = next
	}
	trans := b.states[cur].trans
	if len(trans) == 0 || trans[len(trans)-1].symbol != finalSymbol {
		b.states[cur].trans = append(b.states[cur].trans, edge{symbol: finalSymbol, target: sink})
	}
}

// replaceOrRegister walks the rightmost "last non-final child" spine
// starting at from, then unifies or registers each node on that spine,
// deepest first. This is Daciuk's replace_or_register, expressed as an
// explicit chain instead of recursion since the spine depth tracks key
// length and pathological key lengths would otherwise blow the call stack.
func (b *Builder) replaceOrRegister(from stateID) {
	type link struct {
		parent stateID
		idx    int
	}
	var chain []link

	cur := from
	for {
		idx, child, ok := b.lastNonFinalChildIdx(cur)
		if !ok {
			break
		}
		chain = append(chain, link{parent: cur, idx: idx})
		cur = child
	}

	for i := len(chain) - 1; i >= 0; i-- {
		parent, idx := chain[i].parent, chain[i].idx
		child := b.states[parent].trans[idx].target
		if other, ok := b.registerLookup(child); ok {
			b.states[parent].trans[idx].target = other
		} else {
			b.registerInsert(child)
		}
	}
}

// Finalize freezes the remaining construction spine. It is idempotent:
// calling it more than once has no further effect.
func (b *Builder) Finalize() {
	if b.finalized {
		return
	}
	if len(b.states[b.start].trans) > 0 {
		b.replaceOrRegister(b.start)
	}
	b.registerInsert(b.start)
	b.finalized = true
}

// BuildFSA finalizes the builder (if not already finalized) and packs the
// resulting minimal automaton into a compact, queryable dfa.Automaton.
func (b *Builder) BuildFSA() (*dfa.Automaton, error) {
	return b.BuildFSAWithConfig(pack.DefaultConfig())
}

// BuildFSAWithConfig is BuildFSA with explicit packer tuning.
func (b *Builder) BuildFSAWithConfig(cfg pack.Config) (*dfa.Automaton, error) {
	b.Finalize()

	live := b.liveStates()
	index := make(map[stateID]int, len(live))
	for i, id := range live {
		index[id] = i
	}

	states := make([]pack.State, len(live))
	for i, id := range live {
		trans := b.states[id].trans
		ts := make([]pack.Transition, len(trans))
		for j, e := range trans {
			if e.symbol == finalSymbol {
				ts[j] = pack.Transition{Symbol: e.symbol, Target: pack.SinkTarget}
			} else {
				ts[j] = pack.Transition{Symbol: e.symbol, Target: index[e.target]}
			}
		}
		states[i] = pack.State{Transitions: ts}
	}

	res, err := pack.Build(states, index[b.start], cfg)
	if err != nil {
		return nil, err
	}
	return dfa.New(res.Sym, res.Next, res.Start), nil
}
