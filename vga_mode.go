// vga_mode.go - derives display geometry from register state (spec.md §4.4)
//
// Grounded on VgaGetDisplayResolution/VgaUpdateTextCursor in vga.c.

package vga

// Resolution is the derived display geometry in pixels (graphics mode) or
// character cells (text mode).
type Resolution struct {
	Width, Height int
}

// IsGraphicsMode reports whether GC.Misc selects graphics (vs. alpha/text)
// mode (spec.md §4.4 "Text vs graphics").
func (r *RegFile) IsGraphicsMode() bool { return r.GC.NoAlpha() }

// Resolution derives the active display width/height from CRTC/GC/SEQ/AC
// state (spec.md §4.4). The horizontal field is 8 bits wide in hardware,
// capping derived width at 256 text columns / graphics positions before any
// dot-width multiplication — see spec.md §9's open question on the missing
// 9th horizontal bit; this bound is not worked around here.
func (r *RegFile) Resolution() Resolution {
	y := int(r.CRTC.Regs[CRTCVertDispEnd])
	if r.CRTC.Regs[CRTCOverflow]&CRTCOverflowVDE8 != 0 {
		y |= 1 << 8
	}
	if r.CRTC.Regs[CRTCOverflow]&CRTCOverflowVDE9 != 0 {
		y |= 1 << 9
	}
	y++

	x := int(r.CRTC.Regs[CRTCEndHorzDisp]) + 1

	if r.IsGraphicsMode() {
		if r.Seq.NineDotMode() {
			x *= 9
		} else {
			x *= 8
		}
		if r.AC.EightBit() {
			x /= 2
		}
	}

	y /= int(r.CRTC.MaxScanLine())

	return Resolution{Width: x, Height: y}
}

// CursorGeometry is the derived hardware text cursor shape and position
// (spec.md §4.5 "Cursor geometry").
type CursorGeometry struct {
	Visible       bool
	SizePercent   int
	Column, Row   int
}

// CursorGeometry derives the cursor's visibility, size, and cell position
// from CRTC state and the current scanline stride.
func (r *RegFile) CursorGeometry(scanlineSize uint32) CursorGeometry {
	start := r.CRTC.Regs[CRTCCursorStart] & 0x3F
	end := r.CRTC.Regs[CRTCCursorEnd] & 0x1F
	textSize := r.CRTC.MaxScanLine()

	var g CursorGeometry
	if start < end {
		g.Visible = true
		g.SizePercent = 100 * int(end-start) / int(textSize)
	}

	skew := uint32(r.CRTC.Regs[CRTCCursorEnd]>>5) & 3
	loc := uint32(r.CRTC.Regs[CRTCCursorLocHigh])<<8 | uint32(r.CRTC.Regs[CRTCCursorLocLow])
	loc += skew

	if scanlineSize == 0 {
		return g
	}
	g.Column = int(loc % scanlineSize)
	g.Row = int(loc / scanlineSize)
	return g
}

// ScanlineSize returns the byte stride between displayed rows (spec.md §4.5).
func (r *RegFile) ScanlineSize() uint32 { return r.CRTC.ScanlineSize() }

// StartAddress returns the 16-bit display start address (spec.md §4.5).
func (r *RegFile) StartAddress() uint32 { return r.CRTC.StartAddress() }
