package menu

import "testing"

func TestItemsPerScreen(t *testing.T) {
	cases := []struct {
		mask uint8
		want int
	}{
		{0x00, 7},
		{0x01, 7}, // reserving the header band costs no capacity
		{0x06, 5},
		{0x78, 3},
		{0xfe, 1},
		{0xff, 1}, // all item bands reserved, clamped
	}
	for _, c := range cases {
		m := &Menu{Reserved: c.mask}
		if got := m.ItemsPerScreen(); got != c.want {
			t.Errorf("ItemsPerScreen() with mask %#02x = %d, want %d", c.mask, got, c.want)
		}
	}
}

func TestScreenOf(t *testing.T) {
	m := &Menu{}
	if got := m.ScreenOf(6); got != 0 {
		t.Fatalf("ScreenOf(6) = %d, want 0", got)
	}
	if got := m.ScreenOf(7); got != 1 {
		t.Fatalf("ScreenOf(7) = %d, want 1", got)
	}

	m.Reserved = 0x06 // five items per screen
	if got := m.ScreenOf(4); got != 0 {
		t.Fatalf("ScreenOf(4) with two reserved bands = %d, want 0", got)
	}
	if got := m.ScreenOf(5); got != 1 {
		t.Fatalf("ScreenOf(5) with two reserved bands = %d, want 1", got)
	}
}

func TestNextSlotSkipsReservedBands(t *testing.T) {
	m := &Menu{Reserved: 0x06}

	var got []int
	for slot := m.NextSlot(0); ; slot = m.NextSlot(slot) {
		got = append(got, slot)
		if slot == 0 {
			break
		}
	}

	want := []int{3, 4, 5, 6, 7, 0}
	if len(got) != len(want) {
		t.Fatalf("slot walk = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot walk = %v, want %v", got, want)
		}
	}
}

func TestNextSlotUnreserved(t *testing.T) {
	m := &Menu{}
	if got := m.NextSlot(0); got != 1 {
		t.Fatalf("NextSlot(0) = %d, want 1", got)
	}
	if got := m.NextSlot(7); got != 0 {
		t.Fatalf("NextSlot(7) = %d, want 0", got)
	}
}
