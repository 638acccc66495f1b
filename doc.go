// Package gif is a pure Go encoder and decoder for a single still image
// in the GIF graphics interchange format (GIF87a / GIF89a).
//
// The package accepts or produces an indexed bitmap — a palette plus a
// per-pixel palette index — together with the header metadata needed to
// round-trip it to a conformant GIF byte stream. It implements its own
// variable-bit-width LZW codec rather than wrapping the standard
// library's compress/lzw, so the dictionary growth/reset discipline on
// the encode and decode sides is guaranteed to agree.
//
// The package supports:
//   - A single image per file (no multi-frame animation)
//   - An optional global color table
//   - An optional graphic control extension (disposal, delay, transparency)
//
// It does not support local color tables, interlacing, plain-text or
// application extensions, or palette quantization from true-color
// pixels — callers supply already-indexed pixels.
//
// Basic usage for encoding:
//
//	data, err := gif.Encode(img, nil)
//
// Basic usage for decoding:
//
//	img, err := gif.Decode(data)
package gif
