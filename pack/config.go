package pack

// Config tunes the sparse packer's placement search.
//
// The defaults match the values the construction this package is based on
// settled on empirically: smaller SearchOffset wastes slots chasing a
// denser packing that never materializes, larger values scan further per
// state for no measurable packing gain.
type Config struct {
	// SearchOffset bounds how far behind the current growth frontier the
	// placement search starts scanning for a free origin, trading packing
	// density for placement time. Default: 512.
	SearchOffset int

	// InitialSlotCapacity pre-sizes the internal placement bitsets, in
	// bits, to avoid reallocation while packing small automata. Default:
	// 4096.
	InitialSlotCapacity int
}

// DefaultConfig returns the recommended packer configuration.
func DefaultConfig() Config {
	return Config{
		SearchOffset:        512,
		InitialSlotCapacity: 4096,
	}
}

// Validate checks that every field is in its acceptable range.
func (c *Config) Validate() error {
	if c.SearchOffset < 0 {
		return &Error{Kind: InvalidConfig, Message: "pack: SearchOffset must be >= 0"}
	}
	if c.InitialSlotCapacity < 0 {
		return &Error{Kind: InvalidConfig, Message: "pack: InitialSlotCapacity must be >= 0"}
	}
	return nil
}

// WithSearchOffset returns a copy of c with SearchOffset set.
func (c Config) WithSearchOffset(n int) Config {
	c.SearchOffset = n
	return c
}

// WithInitialSlotCapacity returns a copy of c with InitialSlotCapacity set.
func (c Config) WithInitialSlotCapacity(n int) Config {
	c.InitialSlotCapacity = n
	return c
}
