//go:build tinygo

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *monoFramebuffer
	kbd    *buttonKeyboard
}

// New returns a Pico HAL implementation.
//
// Display: SSD1306 128x64 on I2C0 (GP4 SDA / GP5 SCL, address 0x3C).
// Buttons: GP10 up, GP11 down, GP12 enter, GP13 back, active low.
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400_000,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:   128,
		Height:  64,
		Address: 0x3C,
	})
	dev.ClearDisplay()

	fb := newMonoFramebuffer(128, 64)
	fb.present = func() error {
		if err := dev.SetBuffer(fb.buf); err != nil {
			return err
		}
		return dev.Display()
	}

	kbd := newButtonKeyboard([]buttonPin{
		{pin: machine.GP10, code: KeyUp},
		{pin: machine.GP11, code: KeyDown},
		{pin: machine.GP12, code: KeyEnter},
		{pin: machine.GP13, code: KeyEscape},
	})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     fb,
		kbd:    kbd,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }

type tinyGoDisplay struct {
	fb *monoFramebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd *buttonKeyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.uart.Write([]byte(s))
	l.uart.Write([]byte("\r\n"))
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.Write([]byte("\r\n"))
}

type buttonPin struct {
	pin  machine.Pin
	code KeyCode
}

// buttonKeyboard polls active-low buttons and turns edges into key events.
type buttonKeyboard struct {
	pins []buttonPin
	down []bool
	ch   chan KeyEvent
}

func newButtonKeyboard(pins []buttonPin) *buttonKeyboard {
	k := &buttonKeyboard{
		pins: pins,
		down: make([]bool, len(pins)),
		ch:   make(chan KeyEvent, 16),
	}
	for _, b := range pins {
		b.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go k.poll()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *buttonKeyboard) poll() {
	for {
		for i, b := range k.pins {
			pressed := !b.pin.Get()
			if pressed == k.down[i] {
				continue
			}
			k.down[i] = pressed
			select {
			case k.ch <- KeyEvent{Code: b.code, Press: pressed}:
			default:
			}
		}
		// 10 ms poll doubles as debounce.
		time.Sleep(10 * time.Millisecond)
	}
}
