package gif

import "testing"

func TestBitWriterReaderRoundTrip(t *testing.T) {
	type push struct {
		value uint16
		width uint8
	}
	cases := [][]push{
		{{0, 1}, {1, 1}, {0, 1}},
		{{5, 3}, {255, 8}, {1, 1}},
		{{4095, 12}, {0, 12}, {2047, 12}},
		{{1, 3}, {4, 3}, {5, 3}, {4095, 12}},
	}

	for i, seq := range cases {
		buf := newByteBuffer(16)
		bw := newBitWriter(buf)
		for _, p := range seq {
			bw.Push(p.value, p.width)
		}
		bw.Flush()

		br := newBitReader(buf.Bytes())
		for j, p := range seq {
			got, err := br.Read(p.width)
			if err != nil {
				t.Fatalf("case %d/%d: Read failed: %v", i, j, err)
			}
			want := p.value & uint16(bitMasks[p.width])
			if got != want {
				t.Errorf("case %d/%d: got %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestBitWriterFlushPadsWithZero(t *testing.T) {
	buf := newByteBuffer(4)
	bw := newBitWriter(buf)
	bw.Push(1, 3)
	bw.Flush()

	data := buf.Bytes()
	if len(data) != 1 {
		t.Fatalf("expected 1 byte after flush, got %d", len(data))
	}
	if data[0] != 0x01 {
		t.Errorf("expected padded byte 0x01, got 0x%02x", data[0])
	}
}

func TestBitReaderTruncated(t *testing.T) {
	br := newBitReader([]byte{0x01})
	if _, err := br.Read(3); err != nil {
		t.Fatalf("unexpected error reading within bounds: %v", err)
	}
	if _, err := br.Read(12); err == nil {
		t.Fatal("expected Truncated error reading past end of buffer")
	}
}

func TestBitWriterSpansMultipleBytes(t *testing.T) {
	buf := newByteBuffer(4)
	bw := newBitWriter(buf)
	// 5 bits then 12 bits: spans a byte boundary mid-push.
	bw.Push(0x1F, 5)
	bw.Push(0xABC, 12)
	bw.Flush()

	br := newBitReader(buf.Bytes())
	v1, err := br.Read(5)
	if err != nil || v1 != 0x1F {
		t.Fatalf("got v1=%d err=%v, want 0x1F", v1, err)
	}
	v2, err := br.Read(12)
	if err != nil || v2 != 0xABC {
		t.Fatalf("got v2=%d err=%v, want 0xABC", v2, err)
	}
}
