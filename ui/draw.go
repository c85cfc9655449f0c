package ui

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	"github.com/antsy/Lifecounter/hal"
)

var (
	colorBG    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorFG    = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorSelBG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorSelFG = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	colorMark  = color.RGBA{R: 0xff, G: 0xd1, B: 0x4a, A: 0xff}
)

var (
	fontNumeral = &freesans.Bold24pt7b
	fontTitle   = &freesans.Bold12pt7b
	fontText    = &freesans.Regular9pt7b
)

// fbDisplay adapts hal.Framebuffer to drivers.Displayer so tinyfont can
// rasterize onto it, and carries the handful of primitives the screens use.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func (d *fbDisplay) clear(c color.RGBA) {
	w, h := d.Size()
	_ = d.FillRectangle(0, 0, w, h, c)
}

func (d *fbDisplay) hline(x0, x1, y int, c color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	_ = d.FillRectangle(int16(x0), int16(y), int16(x1-x0+1), 1, c)
}

func (d *fbDisplay) vline(x, y0, y1 int, c color.RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	_ = d.FillRectangle(int16(x), int16(y0), 1, int16(y1-y0+1), c)
}

// frameRect draws a one-pixel border with rounded corners.
func (d *fbDisplay) frameRect(x, y, w, h, r int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	max := w
	if h < max {
		max = h
	}
	if r > max/2 {
		r = max / 2
	}
	if r < 0 {
		r = 0
	}

	x1 := x + w - 1
	y1 := y + h - 1
	d.hline(x+r, x1-r, y, c)
	d.hline(x+r, x1-r, y1, c)
	d.vline(x, y+r, y1-r, c)
	d.vline(x1, y+r, y1-r, c)
	if r == 0 {
		return
	}

	// Midpoint circle, one octant mirrored into the four corners.
	f := 1 - r
	dx := 1
	dy := -2 * r
	px := 0
	py := r
	set := func(ox, oy int) { d.SetPixel(int16(ox), int16(oy), c) }
	for px < py {
		if f >= 0 {
			py--
			dy += 2
			f += dy
		}
		px++
		dx += 2
		f += dx

		set(x+r-px, y+r-py)
		set(x+r-py, y+r-px)
		set(x1-r+px, y+r-py)
		set(x1-r+py, y+r-px)
		set(x+r-px, y1-r+py)
		set(x+r-py, y1-r+px)
		set(x1-r+px, y1-r+py)
		set(x1-r+py, y1-r+px)
	}
}

// triangleUp fills a triangle pointing up with its apex at (cx, apexY).
func (d *fbDisplay) triangleUp(cx, apexY, w, h int, c color.RGBA) {
	if w <= 0 || h <= 1 {
		return
	}
	for row := 0; row < h; row++ {
		half := w * row / (2 * (h - 1))
		d.hline(cx-half, cx+half, apexY+row, c)
	}
}

// triangleDown fills a triangle pointing down with its base at (cx, topY).
func (d *fbDisplay) triangleDown(cx, topY, w, h int, c color.RGBA) {
	if w <= 0 || h <= 1 {
		return
	}
	for row := 0; row < h; row++ {
		half := w * (h - 1 - row) / (2 * (h - 1))
		d.hline(cx-half, cx+half, topY+row, c)
	}
}

func (d *fbDisplay) text(font tinyfont.Fonter, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, int16(x), int16(y), s, c)
}

// textCentered draws s with its horizontal center at cx; y is the baseline.
func (d *fbDisplay) textCentered(font tinyfont.Fonter, cx, y int, s string, c color.RGBA) {
	d.text(font, cx-textWidth(font, s)/2, y, s, c)
}

func textWidth(font tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(font, s)
	return int(outbox)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
