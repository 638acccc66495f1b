package gif

// lzwDecode reconstructs the palette-index sequence from a defragmented
// LZW byte stream. The returned slice's length is whatever the stream
// naturally decodes to; callers compare it against width*height
// themselves, so that mismatch can be tested independently of decoding
// itself.
func lzwDecode(data []byte, minCodeSize byte) ([]byte, error) {
	clear := uint16(1) << minCodeSize
	eoi := clear + 1

	br := newBitReader(data)
	codeSize := minCodeSize + 1

	table := newLZWCodeTable(clear, eoi)

	c, err := br.Read(codeSize)
	if err != nil {
		return nil, err
	}
	if c != clear {
		return nil, errf(MalformedStream, br.pos, "first code must be CLEAR (%d), got %d", clear, c)
	}

	var out []byte
	var prev uint16
	havePrev := false

	readEntry := func() error {
		c, err := br.Read(codeSize)
		if err != nil {
			return err
		}
		if c == eoi {
			return errEOI
		}
		if c == clear {
			table.reset(clear, eoi)
			codeSize = minCodeSize + 1
			havePrev = false
			return errClearSeen
		}

		var entry []byte
		switch {
		case int(c) < table.Len():
			entry = table.at(c)
		case int(c) == table.Len() && havePrev:
			prevEntry := table.at(prev)
			entry = append(append([]byte{}, prevEntry...), prevEntry[0])
		default:
			return errf(MalformedStream, br.pos, "undefined code %d (table length %d)", c, table.Len())
		}

		out = append(out, entry...)

		if havePrev {
			prevEntry := table.at(prev)
			table.append(append(append([]byte{}, prevEntry...), entry[0]))
			if table.Len() >= (1<<codeSize) && codeSize < 12 {
				codeSize++
			}
		}

		prev = c
		havePrev = true
		return nil
	}

	for {
		err := readEntry()
		switch err {
		case nil:
			continue
		case errEOI:
			return out, nil
		case errClearSeen:
			// Immediately after a CLEAR, the next code is a fresh literal:
			// read it and emit its table entry without treating it as a
			// continuation of anything before the CLEAR.
			if rerr := readEntry(); rerr != nil {
				if rerr == errClearSeen || rerr == errEOI {
					return nil, errf(MalformedStream, br.pos, "CLEAR or EOI immediately follows CLEAR")
				}
				return nil, rerr
			}
			continue
		default:
			return nil, err
		}
	}
}

// sentinel control-flow errors used only inside lzwDecode's loop, never
// returned to callers.
var (
	errEOI       = &controlErr{"eoi"}
	errClearSeen = &controlErr{"clear"}
)

type controlErr struct{ s string }

func (e *controlErr) Error() string { return e.s }
