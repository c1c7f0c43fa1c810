// vga_memory.go - the four 64KiB planes and the per-plane write gate
// (spec.md §4.3), grounded on VgaReadMemory/VgaWriteMemory in vga.c.

package vga

// PlaneMemory is the 4-bank x BankSize planar video RAM.
type PlaneMemory struct {
	Bank [NumBanks][BankSize]byte
}

// ReadByte returns the byte a guest read at address A resolves to, via
// read translation (spec.md §4.2-4.3). Callers are expected to have already
// checked Misc.RAMEnabled.
func (m *PlaneMemory) ReadByte(r *RegFile, addr uint32) byte {
	plane, offset := r.TranslateRead(addr)
	return m.Bank[plane][offset%BankSize]
}

// WriteByte stores a guest byte write at address A, broadcasting it to
// every plane whose write gate is open (spec.md §4.3). Callers are expected
// to have already checked Misc.RAMEnabled and a nonzero plane mask.
func (m *PlaneMemory) WriteByte(r *RegFile, addr uint32, value byte) {
	offset := r.TranslateWrite(addr)
	mask := r.Seq.PlaneMask()
	c4 := r.Seq.Chain4()
	oe := r.GC.OddEven()

	for p := uint8(0); p < NumBanks; p++ {
		if mask&(1<<p) == 0 {
			continue
		}
		if c4 && addr&3 != uint32(p) {
			continue
		}
		if oe && addr&1 != uint32(p&1) {
			continue
		}
		m.Bank[p][offset%BankSize] = value
	}
}

// ReadMemory implements the guest-facing read_memory(addr, buf, size) entry
// point: a no-op (buf left untouched) when RAM is disabled (spec.md §6, §7,
// S6).
func (e *Engine) ReadMemory(addr uint32, buf []byte) {
	if !e.Regs.Misc.RAMEnabled() {
		return
	}
	for i := range buf {
		buf[i] = e.Mem.ReadByte(&e.Regs, addr+uint32(i))
	}
}

// WriteMemory implements the guest-facing write_memory(addr, buf, size)
// entry point. No-op when RAM is disabled or every plane-mask bit is clear
// (spec.md §4.3, §6, §7, S6).
func (e *Engine) WriteMemory(addr uint32, buf []byte) {
	if !e.Regs.Misc.RAMEnabled() {
		return
	}
	if e.Regs.Seq.PlaneMask()&0x0F == 0 {
		return
	}
	for i, b := range buf {
		e.Mem.WriteByte(&e.Regs, addr+uint32(i), b)
	}
}
