// vga_portdispatch.go - fans guest port I/O to RegFile and its side effects
//
// Implements the port table in spec.md §4.1, grounded on VgaReadPort/
// VgaWritePort in vga.c.

package vga

// ReadPort implements the guest-facing read_port(port) -> u8 entry point.
// Ports outside the table return 0 (spec.md §6).
func (e *Engine) ReadPort(port uint16) uint8 {
	r := &e.Regs
	switch port {
	case PortAttrIndex:
		return r.AC.Index
	case PortAttrRead:
		return r.AC.Regs[r.AC.Index]

	case PortSeqIndex:
		return r.Seq.Index
	case PortSeqData:
		return r.Seq.Regs[r.Seq.Index]

	case PortGCIndex:
		return r.GC.Index
	case PortGCData:
		return r.GC.Regs[r.GC.Index]

	case PortCRTCIndex:
		return r.CRTC.Index
	case PortCRTCData:
		return r.CRTC.Regs[r.CRTC.Index]

	case PortDACRead:
		// Returns the read/write direction, not the index (spec.md §4.1).
		if r.DAC.ReadMode {
			return 0
		}
		return 3
	case PortDACWrite:
		// The port only ever surfaces a byte; vga.c's VgaDacIndex is itself
		// a BYTE despite DACIndexSize exceeding 256.
		return uint8(r.DAC.Index)
	case PortDACData:
		if r.DAC.ReadMode {
			v := r.DAC.Palette[r.DAC.entry()][r.DAC.component()]
			r.DAC.advance()
			return v
		}
		return 0

	case PortMiscRead:
		return uint8(r.Misc)

	case PortStatusMono, PortStatusColor:
		r.AC.Latch = false
		var result uint8
		if r.InVRetrace || r.InHRetrace {
			result |= StatusDD
		}
		if r.InVRetrace {
			result |= StatusVRetrace
		}
		r.InHRetrace = false
		r.InVRetrace = false
		return result
	}

	return 0
}

// WritePort implements the guest-facing write_port(port, data) entry point.
func (e *Engine) WritePort(port uint16, data uint8) {
	r := &e.Regs
	switch port {
	case PortAttrIndex:
		if !r.AC.Latch {
			if data < MaxACReg {
				r.AC.setIndex(data)
			}
			// Out-of-range index write while unlatched is silently dropped
			// (spec.md §7; vga.c VGA_AC_INDEX has no data-write fallback here).
		} else {
			e.writeAC(data)
		}
		r.AC.Latch = !r.AC.Latch

	case PortSeqIndex:
		r.Seq.setIndex(data)
	case PortSeqData:
		r.Seq.Regs[r.Seq.Index] = data

	case PortGCIndex:
		r.GC.setIndex(data)
	case PortGCData:
		r.GC.Regs[r.GC.Index] = data
		if r.GC.Index == GCMisc {
			r.ModeChanged = true
		}

	case PortCRTCIndex:
		r.CRTC.setIndex(data)
	case PortCRTCData:
		e.writeCRTC(data)

	case PortDACRead:
		r.DAC.ReadMode = true
		r.DAC.Index = uint16(data) % DACIndexSize
	case PortDACWrite:
		r.DAC.ReadMode = false
		r.DAC.Index = uint16(data) % DACIndexSize
	case PortDACData:
		if !r.DAC.ReadMode {
			e.writeDACComponent(data & 0x3F)
		}

	case PortMiscWrite:
		r.Misc = MiscOutput(data)

	case PortStatusMono, PortStatusColor:
		// Status ports are read-only.
	}
}

// writeAC stores AC data at the latched index (spec.md §4.1 AC_INDEX row).
func (e *Engine) writeAC(data uint8) {
	r := &e.Regs
	if r.AC.Index < MaxACReg {
		r.AC.Regs[r.AC.Index] = data
	}
}

// writeCRTC stores CRTC data and raises ModeChanged/CursorMoved on the
// indices that affect geometry or cursor shape (spec.md §4.1 CRTC row).
// The index bound is asserted against CrtcIndex, correcting the VgaGcIndex
// typo noted as an open question in spec.md §9.
func (e *Engine) writeCRTC(data uint8) {
	r := &e.Regs
	if r.CRTC.Index >= MaxCRTCReg {
		return
	}
	r.CRTC.Regs[r.CRTC.Index] = data

	switch r.CRTC.Index {
	case CRTCEndHorzDisp, CRTCVertDispEnd, CRTCOverflow:
		r.ModeChanged = true
	case CRTCCursorLocLow, CRTCCursorLocHigh, CRTCCursorStart, CRTCCursorEnd:
		r.CursorMoved = true
	}
}

// writeDACComponent stores one R/G/B component at the current DAC write
// index and advances the index by one, matching VgaWriteDac in vga.c and
// spec.md §4.1's DAC_DATA row (Testable Property 5) literally: no grouping
// by triplet, the index moves one slot per byte written.
func (e *Engine) writeDACComponent(v uint8) {
	r := &e.Regs
	r.DAC.Palette[r.DAC.entry()][r.DAC.component()] = v
	r.DAC.advance()
}

// HorizontalRetrace implements the guest-facing horizontal_retrace() entry
// point: it sets the horizontal-retrace flag consumed by the next status
// register read (spec.md §6).
func (e *Engine) HorizontalRetrace() {
	e.Regs.InHRetrace = true
}
