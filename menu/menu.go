// Package menu implements a hierarchical, paginated menu engine for small
// band-organized monochrome displays.
//
// A display is divided into eight horizontal bands of eight pixel rows each.
// Band 0 holds the header; bands 1..7 hold menu items. Long menus span
// multiple logical screens of up to seven items, and an application can
// reserve bands for its own drawing through a per-menu bitmask.
//
// The engine is a pure, synchronous state machine: it mutates only the
// navigation fields of a Menu (current item, current screen, selection,
// parent link) and draws through the Device interface. Menu trees are
// constructed and owned entirely by the application; the engine never
// allocates or frees them. Callers must serialize all navigation and render
// calls against a given menu tree.
package menu

// ItemFlags carries the per-item option bits.
//
// The upper bits control engine behavior; bits 0..7 are free category bits
// for application use (several menus may share an item slice and tell their
// items apart by category).
type ItemFlags uint16

const (
	// FlagDisabled marks an item that can never become the current item.
	// The application must not make a disabled item current at startup.
	FlagDisabled ItemFlags = 1 << 15

	// FlagExtend extends the selection highlight of the nearest preceding
	// non-extend item onto this row. Used together with FlagDisabled to
	// build multi-row entries.
	FlagExtend ItemFlags = 1 << 14

	// FlagSwap swaps the positions of the description and value fields.
	FlagSwap ItemFlags = 1 << 13

	// FlagDummy is the usual flag set for continuation rows.
	FlagDummy = FlagDisabled | FlagExtend
)

// Application category bits.
const (
	Cat0 ItemFlags = 1 << iota
	Cat1
	Cat2
	Cat3
	Cat4
	Cat5
	Cat6
	Cat7
)

// Align selects how an item line is laid out horizontally.
type Align uint8

const (
	// AlignLeft places the whole line flush against the left margin.
	AlignLeft Align = iota
	// AlignRight places the whole line flush against the right margin.
	AlignRight
	// AlignCenter centers the whole line.
	AlignCenter
	// AlignSplit left-aligns the label and description and independently
	// right-aligns the value (fields swap per FlagSwap).
	AlignSplit
)

// ValueKind tags the live value shown on an item line.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueFloat
	ValueString
)

// Value references live application data displayed at the end of an item
// line. It holds a pointer so the menu shows the current value on every
// redraw without the application pushing updates. The referenced variable
// must outlive the item.
type Value struct {
	Kind  ValueKind
	Int   *int
	Float *float64
	Str   *string

	// Decimals is the fixed decimal count (1..5) for float values.
	// Zero selects automatic precision.
	Decimals int
}

// IntValue returns a Value showing *p as a signed integer.
func IntValue(p *int) Value { return Value{Kind: ValueInt, Int: p} }

// FloatValue returns a Value showing *p with a fixed number of decimals (1..5).
func FloatValue(p *float64, decimals int) Value {
	return Value{Kind: ValueFloat, Float: p, Decimals: decimals}
}

// AutoFloatValue returns a Value showing *p with the smallest decimal count
// that preserves its 5-decimal rounding.
func AutoFloatValue(p *float64) Value { return Value{Kind: ValueFloat, Float: p} }

// StringValue returns a Value showing *p as text.
func StringValue(p *string) Value { return Value{Kind: ValueString, Str: p} }

// Callback runs when an item is entered. Arguments are captured by the
// closure. Returning true vetoes the descent into the item's sub-menu and
// leaves the current menu unchanged.
type Callback func() bool

// Graphic is an optional bitmap hook attached to an item or menu. The engine
// does not draw it; applications render it into reserved bands themselves.
type Graphic struct {
	Image          []byte
	X0, Y0, X1, Y1 int
}

// Item is one menu line. Its texts and value are externally owned and must
// outlive the item.
type Item struct {
	Flags ItemFlags
	Align Align

	// Label is the short index text printed in front of the description,
	// e.g. "3". It doubles as the current-position number in the header's
	// navigation indicator.
	Label string

	// Text is the item description. It also becomes the header title of
	// sub-menus entered through this item.
	Text string

	Value   Value
	Sub     *Menu
	Graphic *Graphic
	Do      Callback
}

// Disabled reports whether the item can become the current item.
func (it *Item) Disabled() bool { return it.Flags&FlagDisabled != 0 }

// Selection sentinels for Menu.Selected.
const (
	// SelectionNone disables selection tracking: the cursor position has no
	// memory and Back resets it to the top.
	SelectionNone = -1
	// SelectionFrozen keeps the cursor position across leave and return
	// without tracking a selected option.
	SelectionFrozen = -2
)

// Menu is an ordered, fixed-length sequence of items plus the navigation
// state the engine maintains for it.
//
// Parent is not a structural tree edge: it is rewritten on every Enter, so
// one Menu value may be shared below several parents at different times.
type Menu struct {
	// Items is externally owned and never resized by the engine.
	Items []Item

	// Header overrides the title shown in band 0. Empty selects the
	// default: the description of the item entered at the top-level menu,
	// or "Main Menu" at the top level itself.
	Header string

	// TotalLabel is the item-count text of the navigation indicator
	// ("current/total" in the header's right corner). Empty hides the
	// indicator.
	TotalLabel string

	// Reserved excludes bands from menu rendering, one bit per band
	// (bit 0 = header band). The application draws there itself. At least
	// one item band must stay unreserved.
	Reserved uint8

	Graphic *Graphic

	// Current is the item the cursor is on.
	Current int

	// Selected tracks the chosen option in option-style menus, or one of
	// the Selection* sentinels.
	Selected int

	// Screen is the logical page currently shown.
	Screen int

	parent *Menu
}

// Parent returns the menu this one was most recently entered from, or nil.
func (m *Menu) Parent() *Menu { return m.parent }
