package menu

// Display geometry the engine is built around: eight bands of eight rows.
const (
	// BandCount is the number of horizontal display bands.
	BandCount = 8
	// BandRows is the pixel height of one band.
	BandRows = 8

	// itemCapacity is the number of item bands on a display with no
	// reserved areas (band 0 always belongs to the header).
	itemCapacity = BandCount - 1
)

// ItemsPerScreen returns how many items fit on one screen of this menu:
// the item band capacity minus one per reserved band in bits 1..7.
// Reserving the header band (bit 0) does not reduce the capacity.
//
// Reserving every item band is a configuration error; the result is clamped
// to one rather than computing undefined screen numbers.
func (m *Menu) ItemsPerScreen() int {
	n := itemCapacity
	for bit := 1; bit <= itemCapacity; bit++ {
		if m.Reserved&(1<<uint(bit)) != 0 {
			n--
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ScreenOf returns the screen number the given item index lands on.
func (m *Menu) ScreenOf(item int) int {
	return item / m.ItemsPerScreen()
}

// NextSlot returns the next display slot after slot that is not reserved,
// or 0 when no slot remains. Calling it with 0 starts the search at the
// first item band. Valid slots are 1..7; the header band is never a slot.
func (m *Menu) NextSlot(slot int) int {
	for {
		slot++
		if slot > itemCapacity {
			return 0
		}
		if m.Reserved&(1<<uint(slot)) == 0 {
			return slot
		}
	}
}
