package menu

// Up moves the cursor one enabled item up, or scrolls one screen up when the
// previous screen holds no enabled item. It reports whether anything changed.
//
// The screen bookkeeping allows Screen to move without Current: that is how
// a screen containing only disabled items is revealed. Until a later move
// restores it, Screen may then disagree with ScreenOf(Current); Enter guards
// against acting in that state.
func (m *Menu) Up() bool {
	attempted := m.Current - 1
	found := false
	for attempted >= 0 && !found {
		if m.Items[attempted].Disabled() {
			attempted--
		} else {
			found = true
		}
	}

	attemptedScreen := m.ScreenOf(attempted)
	currentItemScreen := m.ScreenOf(m.Current)

	switch {
	case found && attemptedScreen == m.Screen && currentItemScreen == m.Screen:
		m.Current = attempted
		return true
	case found && attemptedScreen == m.Screen-1 && currentItemScreen >= m.Screen:
		m.Current = attempted
		m.Screen--
		return true
	case m.Screen > 0:
		m.Screen--
		return true
	}
	return false
}

// Down is the mirror image of Up: one enabled item down, or one screen down
// when the next screen holds no enabled item.
func (m *Menu) Down() bool {
	attempted := m.Current + 1
	found := false
	for attempted < len(m.Items) && !found {
		if m.Items[attempted].Disabled() {
			attempted++
		} else {
			found = true
		}
	}

	attemptedScreen := m.ScreenOf(attempted)
	currentItemScreen := m.ScreenOf(m.Current)
	lastScreen := 0
	if len(m.Items) > 0 {
		lastScreen = m.ScreenOf(len(m.Items) - 1)
	}

	switch {
	case found && attemptedScreen == m.Screen && currentItemScreen == m.Screen:
		m.Current = attempted
		return true
	case found && attemptedScreen == m.Screen+1 && currentItemScreen <= m.Screen:
		m.Current = attempted
		m.Screen++
		return true
	case m.Screen < lastScreen:
		m.Screen++
		return true
	}
	return false
}

// PositionTop moves the cursor to the first enabled item on screen 0 by
// applying Up until it reports no change. It terminates because every
// successful step strictly decreases either Current or Screen.
func (m *Menu) PositionTop() {
	for m.Up() {
	}
}

// Enter activates the current item and returns the menu the user is in
// afterwards.
//
// If the shown screen is not the current item's screen (the user scrolled
// onto a screen with no enabled items), Enter does nothing. Otherwise it
// records the selection when selection tracking is active, runs the item's
// callback (a true return vetoes everything below), and finally descends
// into the item's sub-menu, rebinding that menu's parent link to m.
func (m *Menu) Enter() *Menu {
	if len(m.Items) == 0 || m.Current < 0 || m.Current >= len(m.Items) {
		return m
	}
	if m.ScreenOf(m.Current) != m.Screen {
		return m
	}
	it := &m.Items[m.Current]

	if m.Selected > SelectionNone {
		m.Selected = m.Current
	}
	if it.Do != nil && it.Do() {
		return m
	}
	if it.Sub != nil {
		it.Sub.parent = m
		return it.Sub
	}
	return m
}

// Back leaves the current menu for its parent, resetting this menu's cursor
// first: to the top when Selected is SelectionNone, to the selected option
// when one is tracked, or not at all when Selected is SelectionFrozen.
// Without a parent it returns m unchanged.
func (m *Menu) Back() *Menu {
	if m.parent == nil {
		return m
	}
	switch {
	case m.Selected == SelectionNone:
		m.PositionTop()
	case m.Selected == SelectionFrozen:
		// Keep position across leave and return.
	default:
		m.Current = m.Selected
		m.Screen = m.ScreenOf(m.Selected)
	}
	return m.parent
}

// Top follows parent links to the uppermost menu. The caller must not have
// built a cycle through repeated cross-entry of shared menus.
func (m *Menu) Top() *Menu {
	t := m
	for t.parent != nil {
		t = t.parent
	}
	return t
}
