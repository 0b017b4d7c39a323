//go:build !tinygo

package hal

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Display geometry of the emulated panel.
const (
	hostCols = 128
	hostRows = 64
)

type hostHAL struct {
	logger *hostLogger
	fb     *monoFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation emulating a 128x64 monochrome panel.
func New() HAL {
	return &hostHAL{
		logger: newHostLogger(os.Stderr),
		fb:     newMonoFramebuffer(hostCols, hostRows),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *monoFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// hostLogger adapts the leveled host logger to the Logger interface the
// firmware side expects.
type hostLogger struct {
	mu sync.Mutex
	l  *log.Logger
}

func newHostLogger(w io.Writer) *hostLogger {
	return &hostLogger{
		l: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
		}),
	}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
