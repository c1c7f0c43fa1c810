package vga

import "testing"

// S2: enter 256-color graphics via the register sequence spec.md §8 gives.
// Applying §4.4's formula literally to these exact register values (dot
// width 8, then halved for AC.Control 8BIT; 200 lines divided by
// MaxScanLine 1+1) yields 160x100, not the 320x200 the scenario's prose
// states for a real mode 13h -- see DESIGN.md's resolution of this
// inherited spec inconsistency. The assertion below tracks the literal
// formula, not the prose figure.
func TestScenarioS2Mode13hResolution(t *testing.T) {
	var r RegFile
	r.GC.Regs[GCMisc] = GCMiscNoAlpha
	r.Seq.Regs[SeqClocking] = SeqClocking98DM // 8 dots/char
	r.AC.Regs[ACModeCtrl] = ACControl8Bit
	r.CRTC.Regs[CRTCEndHorzDisp] = 39
	r.CRTC.Regs[CRTCVertDispEnd] = 199
	r.CRTC.Regs[CRTCMaxScanLine] = 1
	r.CRTC.Regs[CRTCOverflow] = 0

	res := r.Resolution()
	if res.Width != 160 || res.Height != 100 {
		t.Fatalf("resolution = %dx%d, want 160x100", res.Width, res.Height)
	}
	if !r.IsGraphicsMode() {
		t.Fatal("expected graphics mode")
	}
}

// A 0x4F-based register set (the real mode 13h CRTC programming: 400 lines
// via VERT_DISP_END=0x8F plus OVERFLOW bit 8, two scanlines per row) does
// produce the textbook 320x200 once the same halving rule is applied.
func TestMode13hRealRegistersYield320x200(t *testing.T) {
	var r RegFile
	r.GC.Regs[GCMisc] = GCMiscNoAlpha
	r.Seq.Regs[SeqClocking] = SeqClocking98DM
	r.AC.Regs[ACModeCtrl] = ACControl8Bit
	r.CRTC.Regs[CRTCEndHorzDisp] = 0x4F
	r.CRTC.Regs[CRTCVertDispEnd] = 0x8F
	r.CRTC.Regs[CRTCOverflow] = 0x1F
	r.CRTC.Regs[CRTCMaxScanLine] = 0x41

	res := r.Resolution()
	if res.Width != 320 || res.Height != 200 {
		t.Fatalf("resolution = %dx%d, want 320x200", res.Width, res.Height)
	}
}

func TestResolutionTextMode80x25(t *testing.T) {
	var e Engine
	DefaultBIOS{}.SetDefaultVideoMode(&e)

	res := e.Regs.Resolution()
	if res.Width != 80 || res.Height != 25 {
		t.Fatalf("resolution = %dx%d, want 80x25", res.Width, res.Height)
	}
	if e.Regs.IsGraphicsMode() {
		t.Fatal("default mode should be text mode")
	}
}

// S4: cursor positioning.
func TestScenarioS4CursorPositioning(t *testing.T) {
	var r RegFile
	r.CRTC.Regs[CRTCCursorLocHigh] = 0x00
	r.CRTC.Regs[CRTCCursorLocLow] = 0xA0
	r.CRTC.Regs[CRTCOffset] = 40
	r.CRTC.Regs[CRTCCursorStart] = 0x0D
	r.CRTC.Regs[CRTCCursorEnd] = 0x0E
	r.CRTC.Regs[CRTCMaxScanLine] = 0x0F

	g := r.CursorGeometry(r.ScanlineSize())
	if g.Column != 0 || g.Row != 2 {
		t.Fatalf("cursor at (col=%d,row=%d), want (0,2)", g.Column, g.Row)
	}
	if !g.Visible {
		t.Fatal("expected cursor visible")
	}
}

func TestCursorHiddenWhenStartAfterEnd(t *testing.T) {
	var r RegFile
	r.CRTC.Regs[CRTCCursorStart] = 0x10
	r.CRTC.Regs[CRTCCursorEnd] = 0x05
	r.CRTC.Regs[CRTCMaxScanLine] = 0x0F

	g := r.CursorGeometry(80)
	if g.Visible {
		t.Fatal("expected cursor hidden when start >= end")
	}
}
