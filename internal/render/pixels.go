package render

import "image/color"

// FillCountRGBA converts per-cell values into RGBA pixels in buf using a
// palette indexed by value. Values past the end of the palette use its last
// entry. When the palette is empty the buffer is cleared to transparent
// black.
func FillCountRGBA(buf []byte, counts []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range counts {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range counts {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
