package vga

import "testing"

// S1: text mode init.
func TestScenarioS1TextModeInit(t *testing.T) {
	e := NewEngine(MemorySurfaceFactory{}, DefaultBIOS{})

	existing := make([]Cell, 80*25)
	for i := range existing {
		existing[i] = Cell{Char: byte('A' + i%26), Attr: 0x07}
	}
	e.Init(existing)

	res := e.Regs.Resolution()
	if res.Width != 80 || res.Height != 25 {
		t.Fatalf("resolution = %dx%d, want 80x25", res.Width, res.Height)
	}
	if !e.TextMode {
		t.Fatal("expected TextMode true after init")
	}

	for i, cell := range existing {
		if e.Mem.Bank[0][i] != cell.Char {
			t.Fatalf("plane 0[%d] = %#x, want %#x", i, e.Mem.Bank[0][i], cell.Char)
		}
		if e.Mem.Bank[1][i] != cell.Attr {
			t.Fatalf("plane 1[%d] = %#x, want %#x", i, e.Mem.Bank[1][i], cell.Attr)
		}
	}
	for i := 0; i < 80*25; i++ {
		if e.Mem.Bank[2][i] != 0 || e.Mem.Bank[3][i] != 0 {
			t.Fatalf("plane 2/3 should be zero at offset %d", i)
		}
	}
}

func TestInitWithoutExistingSnapshot(t *testing.T) {
	e := NewEngine(MemorySurfaceFactory{}, DefaultBIOS{})
	e.Init(nil)

	if !e.TextMode {
		t.Fatal("expected default mode to be text mode")
	}
	if e.Text == nil {
		t.Fatal("expected a text surface to be acquired")
	}
}

func TestRefreshPublishesTextBlit(t *testing.T) {
	e := NewEngine(MemorySurfaceFactory{}, DefaultBIOS{})
	e.Init(nil)

	e.Mem.Bank[0][0] = 'X'
	e.Mem.Bank[1][0] = 0x1F
	e.Refresh()

	surf := e.Text.(*MemoryTextSurface)
	if surf.Cells()[0].Char != 'X' || surf.Cells()[0].Attr != 0x1F {
		t.Fatalf("cell(0,0) = %+v, want {X 0x1F}", surf.Cells()[0])
	}
}
