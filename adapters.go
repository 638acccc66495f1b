package gif

import (
	"image"
	"image/color"
)

// FromPaletted builds a GifImage from a stdlib image.Paletted. The
// returned image has no global color table size assumptions beyond "a
// power of two palette"; callers still set
// HasGlobalColorTable, GCTSizeN, and MinCodeSize themselves, since those
// are encoding decisions this adapter has no authority to make.
func FromPaletted(pm *image.Paletted) *GifImage {
	b := pm.Bounds()
	w, h := b.Dx(), b.Dy()

	palette := make([]Color, len(pm.Palette))
	for i, c := range pm.Palette {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		palette[i] = Color{R: nrgba.R, G: nrgba.G, B: nrgba.B}
	}

	indices := make([]byte, w*h)
	for y := 0; y < h; y++ {
		copy(indices[y*w:(y+1)*w], pm.Pix[(b.Min.Y+y)*pm.Stride+b.Min.X:(b.Min.Y+y)*pm.Stride+b.Min.X+w])
	}

	return &GifImage{
		Version: GIF89a,
		Width:   uint16(w),
		Height:  uint16(h),
		Palette: palette,
		Indices: indices,
	}
}

// ToPaletted converts a decoded GifImage into a stdlib image.Paletted,
// for callers that want to keep working with image.Image after Decode.
func ToPaletted(img *GifImage) *image.Paletted {
	palette := make(color.Palette, len(img.Palette))
	for i, c := range img.Palette {
		palette[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}

	pm := image.NewPaletted(image.Rect(0, 0, int(img.Width), int(img.Height)), palette)
	copy(pm.Pix, img.Indices)
	return pm
}
