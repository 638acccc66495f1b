package gif

// lzwCodeTable is the decoder's code table: an ordered sequence indexed
// by code, each entry the palette-index string that code expands to.
type lzwCodeTable struct {
	entries [][]byte
}

func newLZWCodeTable(clear, eoi uint16) *lzwCodeTable {
	t := &lzwCodeTable{}
	t.reset(clear, eoi)
	return t
}

func (t *lzwCodeTable) reset(clear, eoi uint16) {
	t.entries = make([][]byte, eoi+1, lzwMaxDict)
	for c := uint16(0); c < clear; c++ {
		t.entries[c] = []byte{byte(c)}
	}
	// entries[clear] and entries[eoi] are never dereferenced: those codes
	// are intercepted before table.at is called.
}

func (t *lzwCodeTable) Len() int {
	return len(t.entries)
}

func (t *lzwCodeTable) at(c uint16) []byte {
	return t.entries[c]
}

func (t *lzwCodeTable) append(entry []byte) {
	t.entries = append(t.entries, entry)
}
