package gif

// Section byte values.
const (
	extensionIntroducer  = 0x21
	graphicControlLabel  = 0xF9
	imageSeparator       = 0x2C
	trailerByte          = 0x3B
	graphicControlSize   = 4
	imageDescriptorBytes = 9 // everything after the 0x2C separator
)

func writeHeader(out *byteBuffer, v Version) {
	out.WriteString(v.String())
}

func readHeader(data []byte, pos int) (Version, int, error) {
	if pos+6 > len(data) {
		return 0, pos, errf(Truncated, pos, "header incomplete")
	}
	s := string(data[pos : pos+6])
	switch s {
	case "GIF87a":
		return GIF87a, pos + 6, nil
	case "GIF89a":
		return GIF89a, pos + 6, nil
	default:
		return 0, pos, errf(UnsupportedVersion, pos, "header %q is neither GIF87a nor GIF89a", s)
	}
}

func writeLSD(out *byteBuffer, img *GifImage) {
	out.WriteUint16LE(img.Width)
	out.WriteUint16LE(img.Height)

	var packed byte
	if img.HasGlobalColorTable {
		packed |= 1 << 7
	}
	packed |= (img.ColorResolution & 0x7) << 4
	if img.SortFlag {
		packed |= 1 << 3
	}
	packed |= img.GCTSizeN & 0x7
	out.WriteByte(packed)

	out.WriteByte(img.BackgroundColorIndex)
	out.WriteByte(img.PixelAspectRatio)
}

type logicalScreenDescriptor struct {
	width, height        uint16
	hasGCT               bool
	colorResolution      byte
	sort                 bool
	gctSizeN             byte
	backgroundColorIndex byte
	pixelAspectRatio     byte
}

func readLSD(data []byte, pos int) (logicalScreenDescriptor, int, error) {
	var lsd logicalScreenDescriptor
	if pos+7 > len(data) {
		return lsd, pos, errf(Truncated, pos, "logical screen descriptor incomplete")
	}
	lsd.width = readUint16LE(data, pos)
	lsd.height = readUint16LE(data, pos+2)
	packed := data[pos+4]
	lsd.hasGCT = packed&(1<<7) != 0
	lsd.colorResolution = (packed >> 4) & 0x7
	lsd.sort = packed&(1<<3) != 0
	lsd.gctSizeN = packed & 0x7
	lsd.backgroundColorIndex = data[pos+5]
	lsd.pixelAspectRatio = data[pos+6]
	return lsd, pos + 7, nil
}

// writeColorTable writes n entries (padding with black if the palette is
// shorter, truncating if longer) where n = 2^(gctSizeN+1).
func writeColorTable(out *byteBuffer, palette []Color, gctSizeN byte) {
	n := 1 << (gctSizeN + 1)
	for i := 0; i < n; i++ {
		if i < len(palette) {
			c := palette[i]
			out.WriteByte(c.R)
			out.WriteByte(c.G)
			out.WriteByte(c.B)
		} else {
			out.WriteByte(0)
			out.WriteByte(0)
			out.WriteByte(0)
		}
	}
}

func readColorTable(data []byte, pos int, gctSizeN byte) ([]Color, int, error) {
	n := 1 << (gctSizeN + 1)
	if pos+3*n > len(data) {
		return nil, pos, errf(Truncated, pos, "color table of %d entries incomplete", n)
	}
	table := make([]Color, n)
	for i := 0; i < n; i++ {
		table[i] = Color{R: data[pos], G: data[pos+1], B: data[pos+2]}
		pos += 3
	}
	return table, pos, nil
}

// writeGCE writes a Graphic Control Extension computed from gc, using
// the GIF89a-authoritative packed-byte layout: disposal in bits 4..2,
// user input in bit 1, transparency in bit 0.
func writeGCE(out *byteBuffer, gc GraphicControl) {
	out.WriteByte(extensionIntroducer)
	out.WriteByte(graphicControlLabel)
	out.WriteByte(graphicControlSize)

	var packed byte
	packed |= (gc.DisposalMethod & 0x7) << 2
	if gc.UserInputFlag {
		packed |= 1 << 1
	}
	if gc.TransparentColorFlag {
		packed |= 1
	}
	out.WriteByte(packed)

	out.WriteUint16LE(gc.DelayTime)
	out.WriteByte(gc.TransparentColorIndex)
	out.WriteByte(0)
}

// peekGCE reports whether a Graphic Control Extension begins at pos.
func peekGCE(data []byte, pos int) bool {
	return pos < len(data) && data[pos] == extensionIntroducer
}

func readGCE(data []byte, pos int) (GraphicControl, int, error) {
	var gc GraphicControl
	if pos+8 > len(data) {
		return gc, pos, errf(Truncated, pos, "graphic control extension incomplete")
	}
	if data[pos] != extensionIntroducer || data[pos+1] != graphicControlLabel || data[pos+2] != graphicControlSize {
		return gc, pos, errf(MalformedStream, pos, "malformed graphic control extension")
	}
	packed := data[pos+3]
	gc.DisposalMethod = (packed >> 2) & 0x7
	gc.UserInputFlag = packed&(1<<1) != 0
	gc.TransparentColorFlag = packed&1 != 0
	gc.DelayTime = readUint16LE(data, pos+4)
	gc.TransparentColorIndex = data[pos+6]
	// data[pos+7] is the block terminator, 0x00.
	return gc, pos + 8, nil
}

func writeImageDescriptor(out *byteBuffer, img *GifImage) {
	out.WriteByte(imageSeparator)
	out.WriteUint16LE(img.Left)
	out.WriteUint16LE(img.Top)
	out.WriteUint16LE(img.Width)
	out.WriteUint16LE(img.Height)
	out.WriteByte(img.LocalColorTablePacked)
}

type imageDescriptor struct {
	left, top, width, height uint16
	packed                   byte
}

func readImageDescriptor(data []byte, pos int) (imageDescriptor, int, error) {
	var d imageDescriptor
	if pos >= len(data) || data[pos] != imageSeparator {
		return d, pos, errf(MalformedStream, pos, "expected image separator 0x2C")
	}
	pos++
	if pos+imageDescriptorBytes > len(data) {
		return d, pos, errf(Truncated, pos, "image descriptor incomplete")
	}
	d.left = readUint16LE(data, pos)
	d.top = readUint16LE(data, pos+2)
	d.width = readUint16LE(data, pos+4)
	d.height = readUint16LE(data, pos+6)
	d.packed = data[pos+8]
	return d, pos + imageDescriptorBytes, nil
}

func writeTrailer(out *byteBuffer) {
	out.WriteByte(trailerByte)
}

// readTrailer tolerates a missing trailer; the caller decides whether to
// surface a warning about it.
func readTrailer(data []byte, pos int) (present bool) {
	return pos < len(data) && data[pos] == trailerByte
}

func readUint16LE(data []byte, pos int) uint16 {
	return uint16(data[pos]) | uint16(data[pos+1])<<8
}
