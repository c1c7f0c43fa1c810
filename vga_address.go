// vga_address.go - pure guest-address translation (spec.md §4.2)
//
// Grounded on VgaGetAddressSize/VgaTranslateReadAddress/VgaTranslateWriteAddress
// in vga.c. Kept free of RegFile mutation so it can be property-tested in
// isolation, per spec.md §9 ("address translation as a pure function").

package vga

// AddressSize returns the guest access granularity selected by the CRTC:
// 4 (doubleword) if Underline.DWORD is set, else 1 (byte) if
// ModeControl.BYTE is set, else 2 (word).
func (r *RegFile) AddressSize() uint32 {
	if r.CRTC.Underline()&CRTCUnderlineDWord != 0 {
		return 4
	}
	if r.CRTC.ModeControl()&CRTCModeControlByte != 0 {
		return 1
	}
	return 2
}

// Aperture returns the base/limit of the guest memory window selected by
// GC.ApertureSelector (spec.md §4.4, vga.c MemoryBase/MemoryLimit).
func (r *RegFile) Aperture() (base, limit uint32) {
	sel := r.GC.ApertureSelector()
	return apertureBase[sel], apertureLimit[sel]
}

// TranslateRead computes the plane and plane-local offset a guest read at
// address A resolves to (spec.md §4.2 "Read translation").
func (r *RegFile) TranslateRead(a uint32) (plane uint8, offset uint32) {
	base, _ := r.Aperture()
	off := a - base
	size := r.AddressSize()

	switch {
	case r.Seq.Chain4():
		plane = uint8(off & 3)
		off >>= 2
	case r.GC.OddEven():
		plane = uint8(off & 1)
		off >>= 1
	default:
		plane = r.GC.ReadMapSelect()
	}
	return plane, off * size
}

// TranslateWrite computes the plane-local offset a guest write at address A
// resolves to; plane selection is handled separately by the write gate in
// PlaneMemory (spec.md §4.2 "Write translation", §4.3).
func (r *RegFile) TranslateWrite(a uint32) uint32 {
	base, _ := r.Aperture()
	off := a - base
	size := r.AddressSize()

	switch {
	case r.Seq.Chain4():
		off >>= 2
	case r.GC.OddEven():
		off >>= 1
	}
	return off * size
}
