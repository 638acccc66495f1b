package gif

// lzwDict is the encoder's dictionary: palette-index strings (raw bytes)
// mapped to their assigned code. Codes are assigned densely starting at
// EOI+1.
type lzwDict struct {
	codes map[string]uint16
	next  uint16
}

// newLZWDict builds the initial dictionary for a session with the given
// CLEAR/EOI codes: single-byte strings 0..CLEAR-1 map to themselves, plus
// reserved slots for CLEAR and EOI.
func newLZWDict(clear, eoi uint16) *lzwDict {
	d := &lzwDict{codes: make(map[string]uint16, int(eoi)*2)}
	d.reset(clear, eoi)
	return d
}

func (d *lzwDict) reset(clear, eoi uint16) {
	for k := range d.codes {
		delete(d.codes, k)
	}
	for c := uint16(0); c < clear; c++ {
		d.codes[string([]byte{byte(c)})] = c
	}
	d.next = eoi + 1
}

// Len reports the number of assigned codes, including the two reserved
// ones. It runs one ahead of the decoder's code-table length at the
// same point in the stream, since the decoder only appends a table
// entry once it has a previous code to extend.
func (d *lzwDict) Len() int {
	return int(d.next)
}

func (d *lzwDict) Lookup(s []byte) (uint16, bool) {
	c, ok := d.codes[string(s)]
	return c, ok
}

// Insert assigns the next free code to s and returns it.
func (d *lzwDict) Insert(s []byte) uint16 {
	code := d.next
	d.codes[string(s)] = code
	d.next++
	return code
}
