package lcd

import (
	"bytes"
	"testing"

	"glint/hal"
	"glint/menu"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int

	// capture records a copy of the buffer at every Present.
	capture bool
	frames  [][]byte
}

func newFakeFB() *fakeFB {
	return &fakeFB{w: 128, h: 64, buf: make([]byte, 128*8)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Bands() int              { return f.h / 8 }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatMono1 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}
func (f *fakeFB) Present() error {
	f.presents++
	if f.capture {
		f.frames = append(f.frames, append([]byte(nil), f.buf...))
	}
	return nil
}

// slideFixture fills the buffer so every column carries its index: old
// content is the column number, new content its complement. Any shift
// direction mixup shows up as the wrong byte at a known column.
func slideFixture(fb *fakeFB) (prev []byte) {
	prev = make([]byte, len(fb.buf))
	for i := range prev {
		prev[i] = byte(i % fb.w)
	}
	for i := range fb.buf {
		fb.buf[i] = 0xFF - byte(i%fb.w)
	}
	return prev
}

func TestSetHLine(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)

	b.SetHLine(2, 5, 9) // band 1, bit 1

	for x := 0; x < fb.w; x++ {
		want := byte(0)
		if x >= 2 && x <= 5 {
			want = 0x02
		}
		if got := fb.buf[128+x]; got != want {
			t.Fatalf("band 1 column %d = %#02x, want %#02x", x, got, want)
		}
	}

	b.ClearHLine(0, 127, 9)
	for x := 0; x < fb.w; x++ {
		if fb.buf[128+x] != 0 {
			t.Fatalf("column %d not cleared", x)
		}
	}
}

func TestHLineClipped(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)

	b.SetHLine(-10, 500, 0)
	if fb.buf[0] != 0x01 || fb.buf[127] != 0x01 {
		t.Fatal("clipped line did not reach the display edges")
	}
	b.SetHLine(0, 127, 64) // off-screen row is ignored
}

func TestInvertBand(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)
	fb.buf[2*128+3] = 0x0F

	b.InvertBand(0, 127, 2)

	if got := fb.buf[2*128+3]; got != 0xF0 {
		t.Fatalf("inverted column = %#02x, want 0xF0", got)
	}
	if got := fb.buf[2*128+0]; got != 0xFF {
		t.Fatalf("blank column = %#02x, want 0xFF", got)
	}
	if fb.buf[128] != 0 || fb.buf[3*128] != 0 {
		t.Fatal("neighbor bands touched")
	}
}

func TestInvertRectAcrossBands(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)

	b.Invert(0, 4, 0, 11)

	if got := fb.buf[0]; got != 0xF0 {
		t.Fatalf("band 0 column 0 = %#02x, want 0xF0", got)
	}
	if got := fb.buf[128]; got != 0x0F {
		t.Fatalf("band 1 column 0 = %#02x, want 0x0F", got)
	}
	if fb.buf[1] != 0 {
		t.Fatal("column 1 touched")
	}
}

func TestClearBand(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)
	for i := range fb.buf {
		fb.buf[i] = 0xAA
	}

	b.ClearBand(3)

	for x := 0; x < fb.w; x++ {
		if fb.buf[3*128+x] != 0 {
			t.Fatalf("band 3 column %d not cleared", x)
		}
	}
	if fb.buf[2*128] != 0xAA || fb.buf[4*128] != 0xAA {
		t.Fatal("neighbor bands cleared")
	}
}

// A glyph printed at a band's column 0 lands bit-exactly as its column bytes:
// glyph row r of band n is framebuffer bit r.
func TestPrintStringGlyphPlacement(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)

	b.PrintString("A", 0, 1)

	want := []byte{0x7E, 0x11, 0x11, 0x11, 0x7E, 0x00}
	for i, w := range want {
		if got := fb.buf[128+i]; got != w {
			t.Fatalf("column %d = %#02x, want %#02x", i, got, w)
		}
	}
}

func TestMeasure(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)

	if got := b.StringWidth("abc"); got != 18 {
		t.Fatalf("StringWidth(abc) = %d, want 18", got)
	}
	if got := b.IntWidth(-12); got != 18 {
		t.Fatalf("IntWidth(-12) = %d, want 18", got)
	}
	if got := b.FloatWidth(1.5, 2); got != 24 {
		t.Fatalf("FloatWidth(1.5, 2) = %d, want 24", got)
	}
	if got := b.StringWidth("→"); got != 6 {
		t.Fatalf("StringWidth(→) = %d, want 6", got)
	}
}

func TestSnapshotAndPresent(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)
	fb.buf[17] = 0x5A

	snap := b.Snapshot(nil)
	if !bytes.Equal(snap, fb.buf) {
		t.Fatal("snapshot differs from buffer")
	}
	fb.buf[17] = 0
	if snap[17] != 0x5A {
		t.Fatal("snapshot aliases the live buffer")
	}

	if err := b.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
}

func TestPresentSlideEndsOnNewContent(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)

	prev := make([]byte, len(fb.buf))
	for i := range prev {
		prev[i] = 0x11
	}
	for i := range fb.buf {
		fb.buf[i] = 0x22
	}
	next := append([]byte(nil), fb.buf...)

	if err := b.PresentSlide(prev, menu.MotionLeft); err != nil {
		t.Fatalf("PresentSlide() = %v", err)
	}
	if !bytes.Equal(fb.buf, next) {
		t.Fatal("final frame is not the new content")
	}
	// 15 intermediate frames at 8 px steps plus the final one.
	if fb.presents != 16 {
		t.Fatalf("presents = %d, want 16", fb.presents)
	}
}

func TestPresentSlideLeftShiftsOldContentLeft(t *testing.T) {
	fb := newFakeFB()
	fb.capture = true
	b := New(fb)
	prev := slideFixture(fb)

	if err := b.PresentSlide(prev, menu.MotionLeft); err != nil {
		t.Fatalf("PresentSlide() = %v", err)
	}
	if len(fb.frames) != 16 {
		t.Fatalf("frames = %d, want 16", len(fb.frames))
	}

	// After the first 8 px step the old content has moved left and the
	// new content enters on the right edge.
	f := fb.frames[0]
	if got := f[0]; got != 8 {
		t.Fatalf("column 0 = %#02x, want old column 8", got)
	}
	if got := f[119]; got != 127 {
		t.Fatalf("column 119 = %#02x, want old column 127", got)
	}
	if got := f[120]; got != 0xFF {
		t.Fatalf("column 120 = %#02x, want new column 0", got)
	}
	if got := f[2*128+127]; got != 0xFF-7 {
		t.Fatalf("band 2 column 127 = %#02x, want new column 7", got)
	}

	// Last intermediate frame: 8 px of old content remain on the left.
	f = fb.frames[14]
	if got := f[0]; got != 120 {
		t.Fatalf("column 0 = %#02x, want old column 120", got)
	}
	if got := f[8]; got != 0xFF {
		t.Fatalf("column 8 = %#02x, want new column 0", got)
	}
}

func TestPresentSlideRightShiftsOldContentRight(t *testing.T) {
	fb := newFakeFB()
	fb.capture = true
	b := New(fb)
	prev := slideFixture(fb)

	if err := b.PresentSlide(prev, menu.MotionRight); err != nil {
		t.Fatalf("PresentSlide() = %v", err)
	}
	if len(fb.frames) != 16 {
		t.Fatalf("frames = %d, want 16", len(fb.frames))
	}

	// After the first 8 px step the old content has moved right and the
	// new content enters on the left edge.
	f := fb.frames[0]
	if got := f[8]; got != 0 {
		t.Fatalf("column 8 = %#02x, want old column 0", got)
	}
	if got := f[127]; got != 119 {
		t.Fatalf("column 127 = %#02x, want old column 119", got)
	}
	if got := f[0]; got != 0xFF-120 {
		t.Fatalf("column 0 = %#02x, want new column 120", got)
	}
	if got := f[2*128+7]; got != 0xFF-127 {
		t.Fatalf("band 2 column 7 = %#02x, want new column 127", got)
	}

	// Last intermediate frame: 8 px of old content remain on the right.
	f = fb.frames[14]
	if got := f[127]; got != 7 {
		t.Fatalf("column 127 = %#02x, want old column 7", got)
	}
	if got := f[119]; got != 0xFF-127 {
		t.Fatalf("column 119 = %#02x, want new column 127", got)
	}
}

func TestPresentSlideNoMotion(t *testing.T) {
	fb := newFakeFB()
	b := New(fb)

	if err := b.PresentSlide(nil, menu.MotionNone); err != nil {
		t.Fatalf("PresentSlide() = %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
}

func TestBufferIsDevice(t *testing.T) {
	var _ menu.Device = New(newFakeFB())
}
