package gif

import (
	"bytes"
	"testing"
)

func TestSubBlockRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{1},
		bytes.Repeat([]byte{0xAB}, 254),
		bytes.Repeat([]byte{0xCD}, 600), // spans multiple sub-blocks
	}

	for i, data := range cases {
		buf := newByteBuffer(16)
		writeSubBlocks(buf, data, defaultSubBlockLen)

		got, pos, err := readSubBlocks(buf.Bytes(), 0)
		if err != nil {
			t.Fatalf("case %d: readSubBlocks failed: %v", i, err)
		}
		if pos != buf.Len() {
			t.Errorf("case %d: consumed %d bytes, buffer has %d", i, pos, buf.Len())
		}
		if !bytes.Equal(got, data) {
			t.Errorf("case %d: round trip mismatch", i)
		}
	}
}

func TestSubBlockLengthsInBounds(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 1000)
	buf := newByteBuffer(16)
	writeSubBlocks(buf, data, defaultSubBlockLen)

	raw := buf.Bytes()
	pos := 0
	for {
		length := int(raw[pos])
		pos++
		if length == 0 {
			break
		}
		if length < 1 || length > 255 {
			t.Fatalf("sub-block length %d out of bounds", length)
		}
		pos += length
	}
	if pos != len(raw) {
		t.Errorf("did not consume exactly the buffer: pos=%d len=%d", pos, len(raw))
	}
}

func TestReadSubBlocksOverrun(t *testing.T) {
	_, _, err := readSubBlocks([]byte{5, 1, 2}, 0) // claims 5 bytes, only 2 present
	if err == nil {
		t.Fatal("expected error on sub-block overrun")
	}
}

func TestReadSubBlocksTruncatedLength(t *testing.T) {
	_, _, err := readSubBlocks([]byte{}, 0)
	if err == nil {
		t.Fatal("expected error reading length byte from empty input")
	}
}
