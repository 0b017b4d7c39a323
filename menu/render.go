package menu

// Motion is the slide direction of an animated transition between two menus.
type Motion uint8

const (
	MotionNone Motion = iota
	// MotionLeft slides in the new menu from the right (entered a child).
	MotionLeft
	// MotionRight slides in the new menu from the left (went back to a parent).
	MotionRight
)

// Device is the drawing surface the renderer targets. It is implemented
// outside the engine (see package lcd for the reference implementation).
//
// Pixel coordinates are absolute; band arguments address one eight-row
// horizontal band, band 0 being the header. All measuring methods return
// pixel widths using the same font the printing methods draw with.
type Device interface {
	// Size returns the pixel width and the number of bands.
	Size() (cols, bands int)
	// CharWidth is the horizontal advance of one glyph.
	CharWidth() int
	// FontWidth is the inked width of one glyph (advance minus spacing).
	FontWidth() int

	ClearBand(band int)
	SetHLine(x0, x1, y int)
	ClearHLine(x0, x1, y int)
	InvertBand(x0, x1, band int)
	Invert(x0, y0, x1, y1 int)

	PrintString(s string, x, band int)
	PrintInt(n int, x, band int)
	PrintFloat(f float64, decimals, x, band int)

	StringWidth(s string) int
	IntWidth(n int) int
	FloatWidth(f float64, decimals int) int

	// Present pushes the composed buffer to the physical display.
	Present() error
	// Snapshot appends a copy of the current buffer contents to dst.
	Snapshot(dst []byte) []byte
	// PresentSlide pushes the buffer as an animated slide transition from
	// the prev snapshot.
	PresentSlide(prev []byte, motion Motion) error
}

// marginPx is the outer margin items and the header indicator keep to the
// display edges.
const marginPx = 3

// marker is the cursor glyph drawn behind the label of the selected option.
const marker = "→"

// defaultTitle is the header of a top-level menu without an override.
const defaultTitle = "Main Menu"

// Renderer composes menu screens onto a Device.
//
// It is not safe for concurrent use: Show must not be interleaved with
// another render on the same Renderer or Device.
type Renderer struct {
	dev Device

	// LabelWidth forces a fixed pixel width for the label column across the
	// whole menu, so one- and two-digit labels stay aligned. Zero sizes each
	// label individually.
	LabelWidth int

	// Animate enables slide transitions when the shown menu changes to a
	// child or parent of the previously shown one.
	Animate bool

	prev    *Menu
	scratch []byte
}

// NewRenderer returns a renderer drawing to dev.
func NewRenderer(dev Device) *Renderer {
	return &Renderer{dev: dev}
}

// Show composes the menu's current screen and presents it. With Animate set
// it slides between menus: left when m is a child of the previously shown
// menu, right when it is its parent. The snapshot scratch buffer lives only
// for the duration of this call.
func (r *Renderer) Show(m *Menu) error {
	motion := MotionNone
	if r.Animate && r.prev != nil {
		switch {
		case m.parent == r.prev:
			motion = MotionLeft
		case r.prev.parent == m:
			motion = MotionRight
		}
	}
	if motion != MotionNone {
		r.scratch = r.dev.Snapshot(r.scratch[:0])
	}

	r.compose(m)
	r.prev = m

	if motion != MotionNone {
		return r.dev.PresentSlide(r.scratch, motion)
	}
	return r.dev.Present()
}

// compose writes one full screen of m into the device buffer: header, the
// items of the current screen, selection highlighting, and blanked trailing
// slots so stale rows never survive a redraw.
func (r *Renderer) compose(m *Menu) {
	cols, _ := r.dev.Size()

	if m.Reserved&1 == 0 {
		r.dev.ClearBand(0)
		r.header(m)
	}

	item := m.Screen * m.ItemsPerScreen()
	slot := m.NextSlot(0)
	for item < len(m.Items) && slot != 0 {
		r.dev.ClearBand(slot)
		r.printItem(m, item, slot)

		if item == m.Current {
			// The highlight box is nine rows tall: it steals the bottom row
			// of the band above, even a reserved one.
			r.dev.SetHLine(0, cols-1, slot*BandRows-1)
			r.dev.InvertBand(0, cols-1, slot)
		} else if m.Reserved&(1<<uint(slot-1)) != 0 {
			// The band above is reserved; keep the stolen row clear so no
			// stray line intrudes into the reserved region.
			r.dev.ClearHLine(0, cols-1, slot*BandRows-1)
		}

		if m.Items[item].Flags&FlagExtend != 0 {
			master := item - 1
			for master >= 0 && m.Items[master].Flags&FlagExtend != 0 {
				master--
			}
			if master == m.Current {
				r.dev.Invert(0, slot*BandRows, cols-1, (slot+1)*BandRows-1)
			}
		}

		slot = m.NextSlot(slot)
		item++
	}

	for slot != 0 {
		r.dev.ClearBand(slot)
		if m.Reserved&(1<<uint(slot-1)) != 0 {
			r.dev.ClearHLine(0, cols-1, slot*BandRows-1)
		}
		slot = m.NextSlot(slot)
	}
}

// printItem draws one item line into a band. A line has three fields:
//
//	+----------+-------------------------+------------+
//	| label    | description             | value      |
//	+----------+-------------------------+------------+
//
// Exactly one character-width margin separates each pair of adjacent
// non-empty fields. Align positions the block; FlagSwap exchanges the
// description and value; AlignSplit right-flushes the trailing field
// independently of the left-flushed rest.
func (r *Renderer) printItem(m *Menu, idx, slot int) {
	cols, _ := r.dev.Size()
	cw := r.dev.CharWidth()
	it := &m.Items[idx]

	labelW := r.LabelWidth
	if labelW == 0 {
		labelW = r.dev.StringWidth(it.Label)
	}
	descW := r.dev.StringWidth(it.Text)

	// Menus that track a selection reserve a marker column behind the
	// label on every line, selected or not.
	selW := 0
	if m.Selected != SelectionNone {
		selW = cw
	}

	// A tag without a referent counts as an absent value.
	kind := it.Value.Kind
	switch {
	case kind == ValueString && it.Value.Str == nil,
		kind == ValueInt && it.Value.Int == nil,
		kind == ValueFloat && it.Value.Float == nil:
		kind = ValueNone
	}

	valDecimals := 0
	valW := 0
	switch kind {
	case ValueString:
		valW = r.dev.StringWidth(*it.Value.Str)
	case ValueInt:
		valW = r.dev.IntWidth(*it.Value.Int)
	case ValueFloat:
		valDecimals = it.Value.Decimals
		if valDecimals == 0 {
			valDecimals = autoDecimals(*it.Value.Float)
		}
		valW = r.dev.FloatWidth(*it.Value.Float, valDecimals)
	}

	margins := -1
	if labelW > 0 {
		margins++
	}
	if descW > 0 {
		margins++
	}
	if valW > 0 {
		margins++
	}
	total := labelW + descW + valW + margins*cw

	var labelX int
	switch it.Align {
	case AlignRight:
		labelX = cols - marginPx - total
	case AlignCenter:
		labelX = (cols - marginPx - total) / 2
	default:
		// Left and split both left-align the label.
		labelX = marginPx
	}
	selX := labelX + labelW

	var descX, valX int
	if it.Flags&FlagSwap != 0 {
		valX = labelX + labelW
		if labelW > 0 || selW > 0 {
			valX += cw
		}
		if it.Align == AlignSplit {
			descX = cols - marginPx - descW
		} else {
			descX = valX + valW
			if valW > 0 {
				descX += cw
			}
		}
	} else {
		descX = labelX + labelW
		if labelW > 0 || selW > 0 {
			descX += cw
		}
		if it.Align == AlignSplit {
			valX = cols - marginPx - valW
		} else {
			valX = descX + descW
			if descW > 0 {
				valX += cw
			}
		}
	}

	r.dev.PrintString(it.Label, labelX, slot)
	r.dev.PrintString(it.Text, descX, slot)
	if idx == m.Selected {
		r.dev.PrintString(marker, selX, slot)
	}

	switch kind {
	case ValueString:
		r.dev.PrintString(*it.Value.Str, valX, slot)
	case ValueInt:
		r.dev.PrintInt(*it.Value.Int, valX, slot)
	case ValueFloat:
		r.dev.PrintFloat(*it.Value.Float, valDecimals, valX, slot)
	}
}

// header draws the title band: the navigation indicator in the right corner,
// the title (centered while it fits, otherwise flushed left of the
// indicator), and the rule separating the header from the items.
func (r *Renderer) header(m *Menu) {
	cols, _ := r.dev.Size()
	cw := r.dev.CharWidth()

	occupied := r.navIndicator(m)

	title := m.Header
	if title == "" {
		if m.parent != nil {
			top := m.Top()
			if top.Current >= 0 && top.Current < len(top.Items) {
				title = top.Items[top.Current].Text
			}
		} else {
			title = defaultTitle
		}
	}

	// Both widths are in characters, not pixels.
	maxWidth := (cols-occupied)/cw - 1
	skewThreshold := (cols-2*occupied)/cw - 2

	width := r.dev.StringWidth(title) / cw
	if width > maxWidth {
		width = maxWidth
		title = truncateRunes(title, width)
	}

	if width <= skewThreshold {
		r.dev.PrintString(title, (cols-r.dev.StringWidth(title))/2, 0)
	} else {
		r.dev.PrintString(title, cols-occupied-cw-width*cw, 0)
	}

	r.dev.SetHLine(0, cols-1, BandRows-1)
}

// navIndicator draws the "current/total" numbers in the top right corner and
// returns the pixel width they claim. The claimed width uses the total's
// length for the current number too, keeping the title field stable while
// the user moves within one menu. Menus without a TotalLabel have no
// indicator and claim nothing.
func (r *Renderer) navIndicator(m *Menu) int {
	if m.TotalLabel == "" {
		return 0
	}
	cw, fw := r.dev.CharWidth(), r.dev.FontWidth()
	cols, _ := r.dev.Size()

	current := ""
	if m.Current >= 0 && m.Current < len(m.Items) {
		current = m.Items[m.Current].Label
	}

	margin := marginPx - (cw - fw)
	totalW := r.dev.StringWidth(m.TotalLabel)
	currentW := r.dev.StringWidth(current)

	totalX := cols - margin - totalW
	slashX := totalX - cw
	currentX := slashX - currentW

	r.dev.PrintString(m.TotalLabel, totalX, 0)
	r.dev.PrintString("/", slashX, 0)
	r.dev.PrintString(current, currentX, 0)

	return margin + 2*totalW + cw + 1
}

// ClearReserved blanks every reserved item band of m. A reserved band
// followed by another reserved band (or sitting at the bottom) is cleared in
// full; otherwise only its top seven rows are cleared, because the highlight
// box of an item right below steals the bottom row.
func (r *Renderer) ClearReserved(m *Menu) {
	cols, _ := r.dev.Size()
	for bit := 1; bit <= itemCapacity; bit++ {
		if m.Reserved&(1<<uint(bit)) == 0 {
			continue
		}
		if bit == itemCapacity || m.Reserved&(1<<uint(bit+1)) != 0 {
			r.dev.ClearBand(bit)
		} else {
			for row := 0; row < BandRows-1; row++ {
				r.dev.ClearHLine(0, cols-1, bit*BandRows+row)
			}
		}
	}
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
