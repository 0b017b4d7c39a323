//go:build !tinygo

package hal

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"glint/internal/buildinfo"
)

// Pixel colors of the emulated panel.
var (
	windowOn  = [3]uint8{0xd0, 0xe8, 0xff}
	windowOff = [3]uint8{0x10, 0x18, 0x30}
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	// Scale is the integer zoom factor of the panel. Zero means 4.
	Scale int
}

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard input. The app runs on its own goroutine so that a
// single step may present several frames (slide transitions) and each
// one reaches the screen; the present hook publishes a copy of the
// framebuffer for the draw loop. Blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}

	h := New().(*hostHAL)
	g := newHostGame(h)
	h.fb.present = g.publish
	step := newApp(h)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		t := time.NewTicker(time.Second / 60)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				if err := step(); err != nil {
					g.fail(err)
					return
				}
			}
		}
	}()

	ebiten.SetWindowTitle("glint (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image

	mu    sync.Mutex
	front []byte
	err   error
}

func newHostGame(h *hostHAL) *hostGame {
	return &hostGame{h: h, front: make([]byte, len(h.fb.buf))}
}

// publish copies the framebuffer into the front buffer. It runs on the
// app goroutine each time the app presents; Draw reads the copy on
// ebiten's goroutine.
func (g *hostGame) publish() error {
	g.mu.Lock()
	copy(g.front, g.h.fb.buf)
	g.mu.Unlock()
	return nil
}

func (g *hostGame) fail(err error) {
	g.mu.Lock()
	g.err = err
	g.mu.Unlock()
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.mu.Lock()
	err := g.err
	g.mu.Unlock()
	return err
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	dst := g.img.Pix
	g.mu.Lock()
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := windowOff
			if monoBit(g.front, fb.width, x, y) {
				c = windowOn
			}
			j := (y*fb.width + x) * 4
			dst[j+0] = c[0]
			dst[j+1] = c[1]
			dst[j+2] = c[2]
			dst[j+3] = 0xFF
		}
	}
	g.mu.Unlock()

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
