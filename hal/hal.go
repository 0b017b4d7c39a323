package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMono1 is 1bpp, band-packed: buf[band*width+x] holds the
	// eight rows of one band column, bit 0 at the top. This is the native
	// layout of SSD1306/DOGM128-class controllers.
	PixelFormatMono1 PixelFormat = iota + 1
)

// Framebuffer is a band-organized monochrome pixel buffer plus a "present"
// hook.
type Framebuffer interface {
	Width() int
	Height() int
	Bands() int
	Format() PixelFormat
	Buffer() []byte
	Clear()
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the menu system and the
// outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
