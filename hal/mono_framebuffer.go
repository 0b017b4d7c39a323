package hal

// monoFramebuffer is the 1bpp band-packed buffer used by the host backends.
// Only the app step goroutine touches buf; anything rendering on another
// goroutine receives its own copy through the present hook.
type monoFramebuffer struct {
	width  int
	height int
	buf    []byte

	present func() error
}

func newMonoFramebuffer(width, height int) *monoFramebuffer {
	return &monoFramebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*(height/8)),
	}
}

func (f *monoFramebuffer) Width() int          { return f.width }
func (f *monoFramebuffer) Height() int         { return f.height }
func (f *monoFramebuffer) Bands() int          { return f.height / 8 }
func (f *monoFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *monoFramebuffer) Buffer() []byte      { return f.buf }

func (f *monoFramebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *monoFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present()
}

// bit reports the pixel at (x, y) in a band-packed frame.
func monoBit(buf []byte, width, x, y int) bool {
	off := (y/8)*width + x
	if off < 0 || off >= len(buf) {
		return false
	}
	return buf[off]&(1<<uint(y%8)) != 0
}
