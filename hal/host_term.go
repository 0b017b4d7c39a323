//go:build !tinygo

package hal

import (
	"context"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// TermConfig controls the terminal front-end.
type TermConfig struct {
	// Hz is the app step rate. Zero means 30.
	Hz int
}

var (
	termScreenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Foreground(lipgloss.Color("229")).
			Padding(0, 1)
	termHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2)
)

// RunTerm displays the framebuffer in the terminal as half-block cells and
// feeds arrow/enter/escape keys back as key events. The app step loop and
// the terminal program run concurrently; whichever stops first stops the
// other.
func RunTerm(ctx context.Context, newApp func(HAL) func() error, cfg TermConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	h := &termHAL{
		// The TUI owns the terminal, so host logging is discarded here.
		logger: newHostLogger(io.Discard),
		fb:     newMonoFramebuffer(hostCols, hostRows),
		kbd:    &termKeyboard{ch: make(chan KeyEvent, 64)},
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(termModel{h: h}, tea.WithAltScreen(), tea.WithContext(ctx))

	// Each present hands the program its own frame copy, so slide
	// transitions render frame by frame and the app goroutine never
	// shares the buffer with the terminal goroutine.
	h.fb.present = func() error {
		frame := make([]byte, len(h.fb.buf))
		copy(frame, h.fb.buf)
		p.Send(frameMsg{frame: frame})
		return nil
	}
	step := newApp(h)

	var g errgroup.Group
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				if err := step(); err != nil {
					p.Quit()
					return err
				}
				p.Send(frameMsg{})
			}
		}
	})
	return g.Wait()
}

type termHAL struct {
	logger *hostLogger
	fb     *monoFramebuffer
	kbd    *termKeyboard
}

func (h *termHAL) Logger() Logger   { return h.logger }
func (h *termHAL) Display() Display { return termDisplay{fb: h.fb} }
func (h *termHAL) Input() Input     { return termInput{kbd: h.kbd} }

type termDisplay struct {
	fb *monoFramebuffer
}

func (d termDisplay) Framebuffer() Framebuffer { return d.fb }

type termInput struct {
	kbd *termKeyboard
}

func (in termInput) Keyboard() Keyboard { return in.kbd }

type termKeyboard struct {
	ch chan KeyEvent
}

func (k *termKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *termKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// frameMsg delivers a presented frame to the view.
type frameMsg struct {
	frame []byte
}

type termModel struct {
	h     *termHAL
	frame []byte
}

func (m termModel) Init() tea.Cmd { return nil }

func (m termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up":
			m.h.kbd.emit(KeyEvent{Code: KeyUp, Press: true})
		case "down":
			m.h.kbd.emit(KeyEvent{Code: KeyDown, Press: true})
		case "left":
			m.h.kbd.emit(KeyEvent{Code: KeyLeft, Press: true})
		case "right":
			m.h.kbd.emit(KeyEvent{Code: KeyRight, Press: true})
		case "enter":
			m.h.kbd.emit(KeyEvent{Code: KeyEnter, Press: true})
		case "esc":
			m.h.kbd.emit(KeyEvent{Code: KeyEscape, Press: true})
		case "backspace":
			m.h.kbd.emit(KeyEvent{Code: KeyBackspace, Press: true})
		}
	case frameMsg:
		m.frame = msg.frame
	}
	return m, nil
}

// View folds each pair of pixel rows into one row of half-block runes.
// Before the first frame arrives the panel is blank.
func (m termModel) View() string {
	fb := m.h.fb

	var sb strings.Builder
	sb.Grow((fb.width + 1) * fb.height / 2)
	for y := 0; y < fb.height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < fb.width; x++ {
			top := monoBit(m.frame, fb.width, x, y)
			bottom := monoBit(m.frame, fb.width, x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
	}

	return termScreenStyle.Render(sb.String()) + "\n" +
		termHelpStyle.Render("↑/↓ move · enter select · esc back · q quit")
}
