package menu

import (
	"strconv"
	"testing"
)

func flatMenu(n int) *Menu {
	items := make([]Item, n)
	for i := range items {
		items[i].Label = strconv.Itoa(i + 1)
		items[i].Text = "item " + strconv.Itoa(i+1)
	}
	return &Menu{Items: items, Selected: SelectionNone}
}

func TestDownThenUpRestoresPosition(t *testing.T) {
	m := flatMenu(10) // two screens

	for i := 0; i < 12; i++ {
		current, screen := m.Current, m.Screen
		if !m.Down() {
			break
		}
		if !m.Up() {
			t.Fatalf("Up() after successful Down() from item %d = false", current)
		}
		if m.Current != current || m.Screen != screen {
			t.Fatalf("Down+Up from (item %d, screen %d) landed on (item %d, screen %d)",
				current, screen, m.Current, m.Screen)
		}
		m.Down()
	}
	if m.Current != len(m.Items)-1 {
		t.Fatalf("walk ended on item %d, want %d", m.Current, len(m.Items)-1)
	}
}

func TestDownSkipsDisabled(t *testing.T) {
	m := flatMenu(5)
	m.Items[1].Flags = FlagDisabled
	m.Items[2].Flags = FlagDisabled

	if !m.Down() {
		t.Fatal("Down() = false, want true")
	}
	if m.Current != 3 {
		t.Fatalf("Current = %d, want 3", m.Current)
	}
}

func TestUpSkipsDisabled(t *testing.T) {
	m := flatMenu(5)
	m.Items[1].Flags = FlagDisabled
	m.Items[2].Flags = FlagDisabled
	m.Current = 3

	if !m.Up() {
		t.Fatal("Up() = false, want true")
	}
	if m.Current != 0 {
		t.Fatalf("Current = %d, want 0", m.Current)
	}
}

func TestDownAtBottomFails(t *testing.T) {
	m := flatMenu(3)
	m.Current = 2
	if m.Down() {
		t.Fatal("Down() past the last item = true, want false")
	}
	if m.Current != 2 || m.Screen != 0 {
		t.Fatalf("state moved to (item %d, screen %d)", m.Current, m.Screen)
	}
}

// A screen holding only disabled items is still reachable: the screen scrolls
// while the cursor stays behind, and Enter refuses to act until the cursor's
// screen is shown again.
func TestScrollOntoDisabledScreen(t *testing.T) {
	m := flatMenu(14)
	for i := 7; i < 14; i++ {
		m.Items[i].Flags = FlagDisabled
	}
	m.Current = 6

	called := false
	m.Items[6].Do = func() bool { called = true; return false }

	if !m.Down() {
		t.Fatal("Down() onto the disabled screen = false, want true")
	}
	if m.Screen != 1 || m.Current != 6 {
		t.Fatalf("after Down: (item %d, screen %d), want (6, 1)", m.Current, m.Screen)
	}

	if got := m.Enter(); got != m {
		t.Fatal("Enter() on a scrolled-away cursor left the menu")
	}
	if called {
		t.Fatal("Enter() ran the callback of an item on another screen")
	}

	if !m.Up() {
		t.Fatal("Up() back to the cursor's screen = false, want true")
	}
	if m.Screen != 0 || m.Current != 6 {
		t.Fatalf("after Up: (item %d, screen %d), want (6, 0)", m.Current, m.Screen)
	}
}

func TestPositionTop(t *testing.T) {
	m := flatMenu(10)
	m.Items[0].Flags = FlagDisabled
	m.Current = 8
	m.Screen = 1

	m.PositionTop()
	if m.Current != 1 || m.Screen != 0 {
		t.Fatalf("PositionTop() = (item %d, screen %d), want (1, 0)", m.Current, m.Screen)
	}
}

func TestEnterDescendsAndRebindsParent(t *testing.T) {
	sub := flatMenu(2)
	m := flatMenu(3)
	m.Items[0].Sub = sub

	got := m.Enter()
	if got != sub {
		t.Fatal("Enter() did not descend into the sub-menu")
	}
	if sub.Parent() != m {
		t.Fatal("Enter() did not rebind the sub-menu's parent")
	}
}

func TestEnterRecordsSelectionBeforeCallback(t *testing.T) {
	m := flatMenu(4)
	m.Selected = 0
	m.Current = 2

	seen := -9
	m.Items[2].Do = func() bool {
		seen = m.Selected
		return true
	}

	if got := m.Enter(); got != m {
		t.Fatal("vetoed Enter() left the menu")
	}
	if seen != 2 {
		t.Fatalf("callback observed Selected = %d, want 2", seen)
	}
	// The veto blocks the descent, not the already-recorded selection.
	if m.Selected != 2 {
		t.Fatalf("Selected = %d after veto, want 2", m.Selected)
	}
}

func TestEnterVetoBlocksDescent(t *testing.T) {
	sub := flatMenu(2)
	m := flatMenu(1)
	m.Items[0].Sub = sub
	m.Items[0].Do = func() bool { return true }

	if got := m.Enter(); got != m {
		t.Fatal("Enter() descended despite the veto")
	}
}

func TestEnterFrozenSelectionUntouched(t *testing.T) {
	m := flatMenu(3)
	m.Selected = SelectionFrozen
	m.Current = 1

	m.Enter()
	if m.Selected != SelectionFrozen {
		t.Fatalf("Selected = %d, want SelectionFrozen", m.Selected)
	}
}

func TestBackWithoutParent(t *testing.T) {
	m := flatMenu(2)
	if got := m.Back(); got != m {
		t.Fatal("Back() at the top level left the menu")
	}
}

func TestBackResetsToTop(t *testing.T) {
	sub := flatMenu(10)
	m := flatMenu(1)
	m.Items[0].Sub = sub

	cur := m.Enter()
	cur.Down()
	cur.Down()

	if got := cur.Back(); got != m {
		t.Fatal("Back() did not return the parent")
	}
	if sub.Current != 0 || sub.Screen != 0 {
		t.Fatalf("cursor = (item %d, screen %d) after Back, want (0, 0)", sub.Current, sub.Screen)
	}
}

func TestBackKeepsFrozenPosition(t *testing.T) {
	sub := flatMenu(10)
	sub.Selected = SelectionFrozen
	m := flatMenu(1)
	m.Items[0].Sub = sub

	cur := m.Enter()
	cur.Down()
	cur.Down()

	cur.Back()
	if sub.Current != 2 {
		t.Fatalf("frozen cursor moved to item %d, want 2", sub.Current)
	}
}

func TestBackReturnsToSelectedOption(t *testing.T) {
	sub := flatMenu(10)
	sub.Selected = 0
	m := flatMenu(1)
	m.Items[0].Sub = sub

	cur := m.Enter()
	for i := 0; i < 8; i++ {
		cur.Down()
	}
	cur.Enter() // select item 8 on screen 1
	cur.PositionTop()

	cur.Back()
	if sub.Current != 8 || sub.Screen != 1 {
		t.Fatalf("cursor = (item %d, screen %d) after Back, want (8, 1)", sub.Current, sub.Screen)
	}
}

func TestTopFollowsParentChain(t *testing.T) {
	b := flatMenu(1)
	a := flatMenu(1)
	a.Items[0].Sub = b
	root := flatMenu(1)
	root.Items[0].Sub = a

	cur := root.Enter().Enter()
	if cur != b {
		t.Fatal("double Enter() did not reach the innermost menu")
	}
	if got := cur.Top(); got != root {
		t.Fatal("Top() did not return the root menu")
	}
}
