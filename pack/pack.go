// Package pack implements the sparse packer (C4): it lays a set of states,
// each with an ascending-symbol transition list, into two shared arrays
// (sym/nxt) such that every state's transitions occupy slots nobody else
// owns.
package pack

import (
	"github.com/borospeti/automata/internal/bitset"
	"github.com/borospeti/automata/internal/conv"
)

// SinkTarget marks a Transition that leads to the automaton's shared
// finality sink rather than a real state in the States slice passed to
// Build. The packer writes the symbol but never needs a target offset for
// it: the runtime never follows a finality transition's nxt value.
const SinkTarget = -1

// finalitySymbol is the reserved symbol marking a state as accepting.
const finalitySymbol = 0xFF

// Transition is one outgoing edge as seen by the packer: a symbol and
// either an index into the States slice passed to Build, or SinkTarget.
type Transition struct {
	Symbol byte
	Target int
}

// State is the packer's view of one automaton state: its outgoing
// transitions, which must already be sorted in ascending Symbol order.
type State struct {
	Transitions []Transition
}

// Result is the packed double-array automaton.
type Result struct {
	Sym   []byte
	Next  []int32
	Start int32
}

// Build packs states into a double-array representation. start is the
// index into states of the automaton's start state. Iteration order over
// states (and therefore the resulting byte-for-byte layout) is
// implementation-defined; only the resulting sym/nxt/start arrays'
// observable behavior is guaranteed.
func Build(states []State, start int, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if len(states) == 0 {
		return Result{}, nil
	}

	slotUsed := bitset.New(cfg.InitialSlotCapacity)
	originUsed := bitset.New(cfg.InitialSlotCapacity)
	offsets := make([]int32, len(states))

	frontier := 0
	maxOffset := 0
	for i, s := range states {
		cand := frontier - cfg.SearchOffset
		if cand < 0 {
			cand = 0
		}
		for {
			ok := !originUsed.Test(cand)
			if ok {
				for _, tr := range s.Transitions {
					if slotUsed.Test(cand + int(tr.Symbol)) {
						ok = false
						break
					}
				}
			}
			if ok {
				break
			}
			cand++
		}

		originUsed.Set(cand)
		for _, tr := range s.Transitions {
			slotUsed.Set(cand + int(tr.Symbol))
		}

		offsets[i] = conv.IntToInt32(cand)
		if cand > maxOffset {
			maxOffset = cand
		}
		if cand+256 > frontier {
			frontier = cand + 256
		}
	}

	length := maxOffset + 256
	sym := make([]byte, length)
	nxt := make([]int32, length)
	for i := range nxt {
		nxt[i] = SinkTarget
	}

	for i, s := range states {
		base := offsets[i]
		for _, tr := range s.Transitions {
			slot := int(base) + int(tr.Symbol)
			sym[slot] = tr.Symbol
			if tr.Target != SinkTarget {
				nxt[slot] = offsets[tr.Target]
			}
		}
	}

	return Result{Sym: sym, Next: nxt, Start: offsets[start]}, nil
}
