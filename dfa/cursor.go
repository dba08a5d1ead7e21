package dfa

// Cursor is a mutable traversal position over an Automaton: a state base
// plus a validity flag. Once invalid, a cursor stays invalid no matter what
// further bytes it consumes. Cursor is a value type; Clone produces an
// independent copy so callers can branch a shared prefix.
type Cursor struct {
	aut   *Automaton
	base  int32
	valid bool
}

// IsValid reports whether the cursor is still on a live path through the
// automaton.
func (c Cursor) IsValid() bool {
	return c.valid
}

// IsFinal reports whether the cursor's current state is accepting. An
// invalid cursor is never final.
func (c Cursor) IsFinal() bool {
	return c.valid && c.aut.isFinalAt(c.base)
}

// Clone returns an independent copy of c. Mutating the clone (via StepByte
// or Consume) never affects c.
func (c Cursor) Clone() Cursor {
	return c
}

// StepByte consumes a single byte, advancing the cursor or invalidating it
// if no transition exists. It rejects the reserved bytes 0x00 and 0xFF with
// ErrReservedByte, since those are never legal input bytes, not a normal
// "no such transition" outcome. Returns the cursor's validity after the
// step.
func (c *Cursor) StepByte(x byte) (bool, error) {
	if x == emptySlot || x == finalitySymbol {
		return false, ErrReservedByte
	}
	if !c.valid {
		return false, nil
	}
	next, ok := c.aut.stepFrom(c.base, x)
	if !ok {
		c.valid = false
		return false, nil
	}
	c.base = next
	return true, nil
}

// Consume steps through seq in order, stopping at the first invalidation.
// It returns the cursor's validity after processing as much of seq as it
// could (or all of it, if never invalidated).
func (c *Cursor) Consume(seq []byte) (bool, error) {
	for _, x := range seq {
		valid, err := c.StepByte(x)
		if err != nil {
			return false, err
		}
		if !valid {
			return false, nil
		}
	}
	return c.valid, nil
}
