// Package app is the demo application driving the menu engine: a small radio
// configuration UI exercising paginated menus, option selection, live values,
// multi-row entries and an application-drawn signal graph in reserved bands.
package app

import (
	"fmt"

	"glint/hal"
	"glint/lcd"
	"glint/menu"
)

// Config adjusts the demo application.
type Config struct {
	// Animate enables slide transitions between menus.
	Animate bool
}

// graphMask reserves bands 3..6 of the stats screen for the signal graph.
const graphMask = 0x78

type system struct {
	log  hal.Logger
	dev  *lcd.Buffer
	rend *menu.Renderer
	keys <-chan hal.KeyEvent

	cur   *menu.Menu
	stats *menu.Menu
	tick  uint64
	dirty bool

	// Live values referenced by menu items.
	freq     float64
	channel  int
	power    int
	contrast int
	name     string
	peak     int

	samples [32]int
}

// New builds the demo and returns its step function, called once per tick by
// the host runner.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

// Run starts the demo and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	s := newSystem(h, cfg)
	for {
		if err := s.step(); err != nil {
			s.log.WriteLineString("app: " + err.Error())
			return
		}
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{
		log:      h.Logger(),
		dev:      lcd.New(h.Display().Framebuffer()),
		keys:     h.Input().Keyboard().Events(),
		freq:     868.3,
		channel:  11,
		power:    7,
		contrast: 40,
		name:     "node-a",
		dirty:    true,
	}

	s.rend = menu.NewRenderer(s.dev)
	s.rend.Animate = cfg.Animate
	s.rend.LabelWidth = s.dev.StringWidth("8")

	s.cur = s.buildTree()
	s.log.WriteLineString("app: menu demo ready")
	return s
}

// buildTree constructs the demo menu hierarchy and returns its root.
func (s *system) buildTree() *menu.Menu {
	power := &menu.Menu{
		Header:     "TX Power",
		TotalLabel: "4",
		Selected:   2,
	}
	power.Items = []menu.Item{
		{Label: "1", Text: "0 dBm", Do: s.setPower(0)},
		{Label: "2", Text: "4 dBm", Do: s.setPower(4)},
		{Label: "3", Text: "7 dBm", Do: s.setPower(7)},
		{Label: "4", Text: "14 dBm", Do: s.rejectPower(14)},
	}
	power.Current = power.Selected

	radio := &menu.Menu{
		TotalLabel: "3",
		Selected:   menu.SelectionFrozen,
		Items: []menu.Item{
			{Label: "1", Text: "Frequency", Align: menu.AlignSplit,
				Value: menu.FloatValue(&s.freq, 1)},
			{Label: "2", Text: "Channel", Align: menu.AlignSplit,
				Value: menu.IntValue(&s.channel)},
			{Label: "3", Text: "TX Power", Align: menu.AlignSplit,
				Value: menu.IntValue(&s.power), Sub: power},
		},
	}

	settings := &menu.Menu{
		TotalLabel: "4",
		Selected:   menu.SelectionNone,
		Items: []menu.Item{
			{Label: "1", Text: "Contrast", Align: menu.AlignSplit,
				Value: menu.IntValue(&s.contrast), Do: s.bumpContrast},
			{Label: "2", Text: "Node name", Align: menu.AlignSplit,
				Value: menu.StringValue(&s.name)},
			{Text: "centered row", Align: menu.AlignCenter},
			{Text: "value first", Align: menu.AlignRight,
				Flags: menu.FlagSwap, Value: menu.IntValue(&s.channel)},
		},
	}

	s.stats = &menu.Menu{
		Header:   "Link Stats",
		Reserved: graphMask,
		Selected: menu.SelectionFrozen,
		Items: []menu.Item{
			{Label: "1", Text: "Peak", Align: menu.AlignSplit,
				Value: menu.IntValue(&s.peak)},
			{Label: "2", Text: "Clear peak", Do: s.clearPeak},
		},
	}

	about := &menu.Menu{
		Header: "About",
		Items: []menu.Item{
			{Text: "glint menu demo"},
			{Flags: menu.FlagDummy, Text: "hierarchical menus"},
			{Flags: menu.FlagDummy, Text: "for 128x64 mono"},
			{Flags: menu.FlagDummy, Text: "displays"},
		},
	}

	root := &menu.Menu{
		TotalLabel: "4",
		Selected:   menu.SelectionFrozen,
		Items: []menu.Item{
			{Label: "1", Text: "Radio", Sub: radio},
			{Label: "2", Text: "Settings", Sub: settings},
			{Label: "3", Text: "Link Stats", Sub: s.stats},
			{Label: "4", Text: "About", Sub: about},
		},
	}
	return root
}

func (s *system) setPower(dbm int) menu.Callback {
	return func() bool {
		s.power = dbm
		s.log.WriteLineString(fmt.Sprintf("app: tx power %d dBm", dbm))
		return false
	}
}

// rejectPower demonstrates a vetoing callback: the level is refused and the
// user stays in the option menu.
func (s *system) rejectPower(dbm int) menu.Callback {
	return func() bool {
		s.log.WriteLineString(fmt.Sprintf("app: tx power %d dBm not permitted", dbm))
		return true
	}
}

func (s *system) bumpContrast() bool {
	s.contrast += 5
	if s.contrast > 60 {
		s.contrast = 20
	}
	return false
}

func (s *system) clearPeak() bool {
	s.peak = 0
	return false
}

// step runs one tick: drain pending keys, advance the simulated link, redraw
// when anything changed.
func (s *system) step() error {
	s.tick++

	for drained := false; !drained; {
		select {
		case ev := <-s.keys:
			if ev.Press {
				s.handleKey(ev.Code)
			}
		default:
			drained = true
		}
	}

	if s.tick%8 == 0 {
		s.sample()
		if s.cur == s.stats || s.cur == s.stats.Parent() {
			s.dirty = true
		}
	}

	if !s.dirty {
		return nil
	}
	s.dirty = false

	if s.cur == s.stats {
		s.drawGraph()
	}
	return s.rend.Show(s.cur)
}

func (s *system) handleKey(code hal.KeyCode) {
	switch code {
	case hal.KeyUp:
		s.cur.Up()
	case hal.KeyDown:
		s.cur.Down()
	case hal.KeyEnter, hal.KeyRight:
		s.cur = s.cur.Enter()
	case hal.KeyEscape, hal.KeyLeft, hal.KeyBackspace:
		s.cur = s.cur.Back()
	default:
		return
	}
	s.dirty = true
}

// sample advances the simulated link level, a deterministic triangle wave
// with a slow frequency drift thrown in so every live value visibly moves.
func (s *system) sample() {
	copy(s.samples[:], s.samples[1:])
	phase := int(s.tick/8) % 60
	level := phase
	if phase > 30 {
		level = 60 - phase
	}
	s.samples[len(s.samples)-1] = level
	if level > s.peak {
		s.peak = level
	}
	s.freq = 868.0 + float64(phase)/100
}

// drawGraph renders the sample history as a bar graph into the reserved
// bands of the stats screen. The engine never touches those bands, so the
// graph survives menu redraws.
func (s *system) drawGraph() {
	s.rend.ClearReserved(s.stats)

	cols, _ := s.dev.Size()
	barW := cols / len(s.samples)
	top := 3 * menu.BandRows
	height := 4 * menu.BandRows

	for i, v := range s.samples {
		h := v * (height - 2) / 30
		if h <= 0 {
			continue
		}
		x0 := i * barW
		for y := top + height - 1 - h; y < top+height-1; y++ {
			s.dev.SetHLine(x0, x0+barW-2, y)
		}
	}
}
