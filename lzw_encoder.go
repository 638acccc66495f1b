package gif

// lzwMaxDict is the hard cap on assignable codes (12 bits): code 4096
// itself is never assigned, it triggers a CLEAR instead.
const lzwMaxDict = 4096

// lzwEncode compresses indices (palette index bytes, each < 1<<minCodeSize)
// into a packed LZW byte stream, before sub-block framing. maxDict lets
// callers configure the dictionary ceiling via EncodeOptions.MaxDictSize;
// it must be <= lzwMaxDict.
func lzwEncode(minCodeSize byte, indices []byte, maxDict int) []byte {
	clear := uint16(1) << minCodeSize
	eoi := clear + 1
	out := newByteBuffer(len(indices)/2 + 16)
	bw := newBitWriter(out)

	codeSize := minCodeSize + 1
	maxCode := (1 << codeSize)

	dict := newLZWDict(clear, eoi)
	bw.Push(clear, codeSize)

	if len(indices) == 0 {
		bw.Push(eoi, codeSize)
		bw.Flush()
		return out.Bytes()
	}

	w := []byte{indices[0]}
	for i := 1; i < len(indices); i++ {
		k := indices[i]
		wk := append(append([]byte{}, w...), k)

		if _, ok := dict.Lookup(wk); ok {
			w = wk
			continue
		}

		code, _ := dict.Lookup(w)
		bw.Push(code, codeSize)

		if dict.Len() == maxDict {
			bw.Push(clear, codeSize)
			dict.reset(clear, eoi)
			codeSize = minCodeSize + 1
			maxCode = 1 << codeSize
		} else {
			dict.Insert(wk)
			if dict.Len() > maxCode && codeSize < 12 {
				codeSize++
				maxCode = 1 << codeSize
			}
		}
		w = []byte{k}
	}

	lastCode, _ := dict.Lookup(w)
	bw.Push(lastCode, codeSize)
	bw.Push(eoi, codeSize)
	bw.Flush()

	return out.Bytes()
}
