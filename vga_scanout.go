// vga_scanout.go - per-refresh reconstruction of pixels/cells from planar
// memory into the host surface (spec.md §4.5), grounded on
// VgaUpdateFramebuffer/VgaRefreshDisplay in vga.c.

package vga

// Refresh implements the guest-facing refresh() entry point (spec.md §4.5).
func (e *Engine) Refresh() {
	if e.Regs.ModeChanged {
		e.SwitchMode()
		e.Regs.ModeChanged = false
	}

	if e.Regs.CursorMoved {
		e.updateCursor()
		e.Regs.CursorMoved = false
	}

	if e.Regs.IsGraphicsMode() {
		e.scanOutGraphics()
	} else {
		e.scanOutText()
	}

	e.Regs.InVRetrace = true

	if e.NeedsUpdate {
		e.publishDirty()
		e.NeedsUpdate = false
	}
}

func (e *Engine) updateCursor() {
	if e.Text == nil {
		return
	}
	g := e.Regs.CursorGeometry(e.Regs.ScanlineSize())
	e.Text.SetCursor(g.Column, g.Row, g.Visible, g.SizePercent)
}

// scanOutGraphics reconstructs the active pixel window per the shift mode
// selected by GC.Mode (spec.md §4.5 "Graphics mode reconstruction").
func (e *Engine) scanOutGraphics() {
	if e.Graphics == nil {
		return
	}
	res := e.Regs.Resolution()
	addrSize := e.Regs.AddressSize()
	start := e.Regs.StartAddress()
	scanlineSize := e.Regs.ScanlineSize()

	e.Graphics.Lock()
	defer e.Graphics.Unlock()

	for i := 0; i < res.Height; i++ {
		rowStart := start
		for j := 0; j < res.Width; j++ {
			px := e.reconstructPixel(rowStart, j, addrSize)
			if e.Graphics.GetPixel(j, i) != px {
				e.Graphics.SetPixel(j, i, px)
				e.markDirty(Rect{X0: j, Y0: i, X1: j + 1, Y1: i + 1})
			}
		}
		start += scanlineSize
	}
}

func (e *Engine) reconstructPixel(start uint32, j int, addrSize uint32) uint8 {
	gc := &e.Regs.GC
	switch {
	case gc.Shift256():
		return e.reconstructChain4(start, j, addrSize)
	case gc.ShiftInterleaved():
		if !e.interleavedLogged {
			e.logger().Warn("vga: interleaved shift mode is unimplemented, emitting zero pixels")
			e.interleavedLogged = true
		}
		return 0
	default:
		if e.Regs.AC.EightBit() {
			return e.reconstructPlanar8(start, j, addrSize)
		}
		return e.reconstructPlanar4(start, j, addrSize)
	}
}

func (e *Engine) reconstructChain4(start uint32, j int, addrSize uint32) uint8 {
	plane := uint8(j % 4)
	if e.Regs.AC.EightBit() {
		off := (start + uint32(j/4)) * addrSize
		return e.Mem.Bank[plane][off%BankSize]
	}
	off := (start + uint32(j/8)) * addrSize
	b := e.Mem.Bank[plane][off%BankSize]
	if (j/4)%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

func (e *Engine) reconstructPlanar8(start uint32, j int, addrSize uint32) uint8 {
	var out uint8
	off := (start + uint32(j/4)) * addrSize
	shift := uint(3 - (j % 4))
	for k := uint8(0); k < 4; k++ {
		b := e.Mem.Bank[k][off%BankSize]
		pair := (b >> (shift * 2)) & 0x03
		if pair&0x02 != 0 {
			out |= 1 << k
		}
		if pair&0x01 != 0 {
			out |= 1 << (k + 4)
		}
	}
	return out
}

func (e *Engine) reconstructPlanar4(start uint32, j int, addrSize uint32) uint8 {
	var out uint8
	off := (start + uint32(j/8)) * addrSize
	bit := uint(7 - (j % 8))
	for k := uint8(0); k < 4; k++ {
		b := e.Mem.Bank[k][off%BankSize]
		if b&(1<<bit) != 0 {
			out |= 1 << k
		}
	}
	return out
}

// scanOutText reconstructs the character/attribute cell window (spec.md
// §4.5 "Text mode reconstruction").
func (e *Engine) scanOutText() {
	if e.Text == nil {
		return
	}
	res := e.Regs.Resolution()
	addrSize := e.Regs.AddressSize()
	start := e.Regs.StartAddress()

	if e.cachedCells == nil || len(e.cachedCells) != res.Width*res.Height {
		e.cachedCells = make([]Cell, res.Width*res.Height)
		e.textCols, e.textRows = res.Width, res.Height
	}

	scanlineSize := e.Regs.ScanlineSize()
	changed := false
	for i := 0; i < res.Height; i++ {
		rowStart := start + uint32(i)*scanlineSize
		for j := 0; j < res.Width; j++ {
			addr := uint16((rowStart + uint32(j)) * addrSize)
			ch := e.Mem.Bank[0][addr]
			attr := e.Mem.Bank[1][addr]

			idx := i*res.Width + j
			if e.cachedCells[idx].Char != ch || e.cachedCells[idx].Attr != attr {
				e.cachedCells[idx] = Cell{Char: ch, Attr: attr}
				changed = true
			}
		}
	}

	if changed {
		e.Text.Blit(Rect{X0: 0, Y0: 0, X1: res.Width, Y1: res.Height}, e.cachedCells)
		e.markDirty(Rect{X0: 0, Y0: 0, X1: res.Width, Y1: res.Height})
	}
}

func (e *Engine) markDirty(r Rect) {
	if !e.NeedsUpdate {
		e.UpdateRect = r
		e.NeedsUpdate = true
		return
	}
	if r.X0 < e.UpdateRect.X0 {
		e.UpdateRect.X0 = r.X0
	}
	if r.Y0 < e.UpdateRect.Y0 {
		e.UpdateRect.Y0 = r.Y0
	}
	if r.X1 > e.UpdateRect.X1 {
		e.UpdateRect.X1 = r.X1
	}
	if r.Y1 > e.UpdateRect.Y1 {
		e.UpdateRect.Y1 = r.Y1
	}
}

// publishDirty hands the accumulated dirty rectangle to the active host
// surface: a full blit in text mode (already done inline in scanOutText),
// an invalidate-region call in graphics mode.
func (e *Engine) publishDirty() {
	if !e.Regs.IsGraphicsMode() || e.Graphics == nil {
		return
	}
	e.Graphics.Invalidate(e.UpdateRect)
}
