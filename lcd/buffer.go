// Package lcd implements the menu engine's drawing surface on top of a
// band-packed monochrome framebuffer (hal.PixelFormatMono1). It provides the
// band/line/invert primitives, text and number printing with pixel
// measurement, and the animated slide transition between two screens.
package lcd

import (
	"image/color"
	"strconv"
	"time"

	"tinygo.org/x/tinyfont"

	"glint/hal"
	"glint/lcd/font5x7"
	"glint/menu"
)

// Font metrics of the buffer's monospace font.
const (
	// CharWidth is the horizontal glyph advance.
	CharWidth = 6
	// FontWidth is the inked glyph width.
	FontWidth = 5
)

const (
	slideStep  = 8
	slideDelay = 8 * time.Millisecond
)

var colorOn = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Buffer draws into a monochrome framebuffer. It implements menu.Device and
// drivers.Displayer (the latter so tinyfont can blit glyphs onto it).
//
// Not safe for concurrent use.
type Buffer struct {
	fb    hal.Framebuffer
	font  tinyfont.Fonter
	cv    canvas
	slide []byte
}

// New returns a buffer drawing into fb with the stock 5x7 font.
func New(fb hal.Framebuffer) *Buffer {
	return &Buffer{fb: fb, font: font5x7.Font, cv: canvas{fb}}
}

// Size returns the pixel width and the number of bands.
func (b *Buffer) Size() (cols, bands int) {
	return b.fb.Width(), b.fb.Bands()
}

func (b *Buffer) CharWidth() int { return CharWidth }
func (b *Buffer) FontWidth() int { return FontWidth }

// Clear blanks the whole buffer.
func (b *Buffer) Clear() { b.fb.Clear() }

// ClearBand blanks one eight-row band.
func (b *Buffer) ClearBand(band int) {
	w := b.fb.Width()
	if band < 0 || band >= b.fb.Bands() {
		return
	}
	buf := b.fb.Buffer()
	for x := 0; x < w; x++ {
		buf[band*w+x] = 0
	}
}

// SetHLine draws a horizontal line at pixel row y from x0 to x1 inclusive.
func (b *Buffer) SetHLine(x0, x1, y int) { b.hline(x0, x1, y, true) }

// ClearHLine clears a horizontal line at pixel row y from x0 to x1 inclusive.
func (b *Buffer) ClearHLine(x0, x1, y int) { b.hline(x0, x1, y, false) }

func (b *Buffer) hline(x0, x1, y int, set bool) {
	w := b.fb.Width()
	if y < 0 || y >= b.fb.Height() {
		return
	}
	x0, x1 = clampSpan(x0, x1, w)
	buf := b.fb.Buffer()
	row := (y / 8) * w
	mask := byte(1) << uint(y%8)
	for x := x0; x <= x1; x++ {
		if set {
			buf[row+x] |= mask
		} else {
			buf[row+x] &^= mask
		}
	}
}

// InvertBand inverts one band between columns x0 and x1 inclusive.
func (b *Buffer) InvertBand(x0, x1, band int) {
	w := b.fb.Width()
	if band < 0 || band >= b.fb.Bands() {
		return
	}
	x0, x1 = clampSpan(x0, x1, w)
	buf := b.fb.Buffer()
	for x := x0; x <= x1; x++ {
		buf[band*w+x] ^= 0xFF
	}
}

// Invert inverts the rectangle spanned by (x0,y0) and (x1,y1) inclusive.
func (b *Buffer) Invert(x0, y0, x1, y1 int) {
	w, h := b.fb.Width(), b.fb.Height()
	x0, x1 = clampSpan(x0, x1, w)
	y0, y1 = clampSpan(y0, y1, h)
	buf := b.fb.Buffer()
	for y := y0; y <= y1; y++ {
		row := (y / 8) * w
		mask := byte(1) << uint(y%8)
		for x := x0; x <= x1; x++ {
			buf[row+x] ^= mask
		}
	}
}

// PrintString draws s with its left edge at pixel column x inside a band.
func (b *Buffer) PrintString(s string, x, band int) {
	if band < 0 || band >= b.fb.Bands() {
		return
	}
	tinyfont.WriteLine(&b.cv, b.font, int16(x), int16(band*8+7), s, colorOn)
}

// PrintInt draws n in decimal.
func (b *Buffer) PrintInt(n int, x, band int) {
	b.PrintString(strconv.Itoa(n), x, band)
}

// PrintFloat draws f with a fixed number of decimals.
func (b *Buffer) PrintFloat(f float64, decimals, x, band int) {
	b.PrintString(strconv.FormatFloat(f, 'f', decimals, 64), x, band)
}

// StringWidth returns the pixel width of s.
func (b *Buffer) StringWidth(s string) int {
	_, w := tinyfont.LineWidth(b.font, s)
	return int(w)
}

// IntWidth returns the pixel width of n printed in decimal.
func (b *Buffer) IntWidth(n int) int {
	return b.StringWidth(strconv.Itoa(n))
}

// FloatWidth returns the pixel width of f printed at the given precision.
func (b *Buffer) FloatWidth(f float64, decimals int) int {
	return b.StringWidth(strconv.FormatFloat(f, 'f', decimals, 64))
}

// Present pushes the buffer to the display.
func (b *Buffer) Present() error { return b.fb.Present() }

// Snapshot appends a copy of the buffer contents to dst.
func (b *Buffer) Snapshot(dst []byte) []byte {
	return append(dst, b.fb.Buffer()...)
}

// PresentSlide pushes the buffer as a horizontal slide transition from the
// prev snapshot to the current contents, presenting one frame per step.
func (b *Buffer) PresentSlide(prev []byte, motion menu.Motion) error {
	if motion == menu.MotionNone || len(prev) != len(b.fb.Buffer()) {
		return b.Present()
	}

	w := b.fb.Width()
	bands := b.fb.Bands()
	buf := b.fb.Buffer()

	if cap(b.slide) < len(buf) {
		b.slide = make([]byte, len(buf))
	}
	next := b.slide[:len(buf)]
	copy(next, buf)

	for off := slideStep; off < w; off += slideStep {
		for band := 0; band < bands; band++ {
			row := band * w
			switch motion {
			case menu.MotionLeft:
				// Old content moves out to the left, the new screen
				// follows in from the right edge.
				copy(buf[row:row+w-off], prev[row+off:row+w])
				copy(buf[row+w-off:row+w], next[row:row+off])
			case menu.MotionRight:
				copy(buf[row+off:row+w], prev[row:row+w-off])
				copy(buf[row:row+off], next[row+w-off:row+w])
			}
		}
		if err := b.fb.Present(); err != nil {
			return err
		}
		time.Sleep(slideDelay)
	}

	copy(buf, next)
	return b.fb.Present()
}

// canvas adapts the framebuffer to drivers.Displayer so tinyfont can blit
// glyphs through it. Kept separate from Buffer because Displayer's Size
// signature differs from menu.Device's.
type canvas struct {
	fb hal.Framebuffer
}

func (c *canvas) Size() (int16, int16) {
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	w, h := c.fb.Width(), c.fb.Height()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}
	buf := c.fb.Buffer()
	mask := byte(1) << uint(iy%8)
	if col.R == 0 && col.G == 0 && col.B == 0 {
		buf[(iy/8)*w+ix] &^= mask
	} else {
		buf[(iy/8)*w+ix] |= mask
	}
}

func (c *canvas) Display() error { return c.fb.Present() }

func clampSpan(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	return lo, hi
}
