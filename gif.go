package gif

// Encode assembles img into a GIF87a/GIF89a byte stream: header,
// logical screen descriptor, optional global color table, optional
// graphic control extension, image descriptor, LZW-compressed and
// sub-block-framed pixel data, and trailer. opts may be nil to use the
// defaults (4096-entry dictionary, 254-byte sub-blocks).
func Encode(img *GifImage, opts *EncodeOptions) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	out := newByteBuffer(32 + len(img.Palette)*3 + len(img.Indices)/2)

	writeHeader(out, img.Version)
	writeLSD(out, img)

	if img.HasGlobalColorTable {
		writeColorTable(out, img.Palette, img.GCTSizeN)
	}

	if img.HasGraphicControl {
		writeGCE(out, img.GraphicControl)
	}

	writeImageDescriptor(out, img)

	compressed := lzwEncode(img.MinCodeSize, img.Indices, opts.maxDict())
	out.WriteByte(img.MinCodeSize)
	writeSubBlocks(out, compressed, opts.maxSubBlockLen())

	writeTrailer(out)

	return out.Bytes(), nil
}

// Decode parses a GIF87a/GIF89a byte stream into a GifImage. The caller
// owns the returned image's Palette and Indices. A missing trailer is
// tolerated; every other structural problem is reported as an error
// whose Kind identifies the failure.
func Decode(data []byte) (*GifImage, error) {
	version, pos, err := readHeader(data, 0)
	if err != nil {
		return nil, err
	}

	lsd, pos, err := readLSD(data, pos)
	if err != nil {
		return nil, err
	}

	img := &GifImage{
		Version:              version,
		HasGlobalColorTable:  lsd.hasGCT,
		ColorResolution:      lsd.colorResolution,
		SortFlag:             lsd.sort,
		GCTSizeN:             lsd.gctSizeN,
		BackgroundColorIndex: lsd.backgroundColorIndex,
		PixelAspectRatio:     lsd.pixelAspectRatio,
	}

	if lsd.hasGCT {
		img.Palette, pos, err = readColorTable(data, pos, lsd.gctSizeN)
		if err != nil {
			return nil, err
		}
	}

	if peekGCE(data, pos) {
		img.GraphicControl, pos, err = readGCE(data, pos)
		if err != nil {
			return nil, err
		}
		img.HasGraphicControl = true
	}

	desc, pos, err := readImageDescriptor(data, pos)
	if err != nil {
		return nil, err
	}
	img.Left = desc.left
	img.Top = desc.top
	img.Width = desc.width
	img.Height = desc.height
	img.LocalColorTablePacked = desc.packed

	if pos >= len(data) {
		return nil, errf(Truncated, pos, "missing LZW minimum code size byte")
	}
	img.MinCodeSize = data[pos]
	pos++
	if img.MinCodeSize < 2 || img.MinCodeSize > 8 {
		return nil, errf(MalformedStream, pos-1, "min_code_size %d out of range [2,8]", img.MinCodeSize)
	}

	lzwBytes, pos, err := readSubBlocks(data, pos)
	if err != nil {
		return nil, err
	}

	indices, err := lzwDecode(lzwBytes, img.MinCodeSize)
	if err != nil {
		return nil, err
	}

	want := int(img.Width) * int(img.Height)
	if len(indices) != want {
		return nil, errf(MalformedStream, pos, "decoded %d pixels, expected %d (%dx%d)", len(indices), want, img.Width, img.Height)
	}
	img.Indices = indices

	_ = readTrailer(data, pos) // a missing trailer is tolerated

	return img, nil
}
