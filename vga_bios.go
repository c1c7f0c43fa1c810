// vga_bios.go - default BIOS collaborator programming mode 3h (80x25 text)
// at boot, grounded on BiosSetVideoMode/VgaInitialize in vga.c. spec.md §1
// treats the BIOS video-mode initializer as an external collaborator; this
// default implementation ships so the module is self-contained (spec.md §6.1).

package vga

// DefaultBIOS programs the standard 80x25, 16-color text mode (INT 10h
// mode 3) register set, the mode every real BIOS leaves the adapter in at
// power-on.
type DefaultBIOS struct{}

// SetDefaultVideoMode implements BIOS.
func (DefaultBIOS) SetDefaultVideoMode(e *Engine) {
	r := &e.Regs

	r.Seq.Regs[SeqReset] = 0x03
	r.Seq.Regs[SeqClocking] = 0x00
	r.Seq.Regs[SeqMapMask] = 0x03
	r.Seq.Regs[SeqCharMap] = 0x00
	r.Seq.Regs[SeqMemory] = 0x02

	r.GC.Regs[GCSetReset] = 0x00
	r.GC.Regs[GCEnableSR] = 0x00
	r.GC.Regs[GCColorCmp] = 0x00
	r.GC.Regs[GCDataRotate] = 0x00
	r.GC.Regs[GCReadMapSel] = 0x00
	r.GC.Regs[GCMode] = 0x10
	r.GC.Regs[GCMisc] = 0x0E
	r.GC.Regs[GCColorDont] = 0x00
	r.GC.Regs[GCBitMask] = 0xFF

	r.CRTC.Regs[CRTCHorzTotal] = 0x5F
	r.CRTC.Regs[CRTCEndHorzDisp] = 0x4F
	r.CRTC.Regs[CRTCStartHorzBlank] = 0x50
	r.CRTC.Regs[CRTCEndHorzBlank] = 0x82
	r.CRTC.Regs[CRTCStartHorzRetr] = 0x55
	r.CRTC.Regs[CRTCEndHorzRetr] = 0x81
	r.CRTC.Regs[CRTCVertTotal] = 0xBF
	r.CRTC.Regs[CRTCOverflow] = 0x02
	r.CRTC.Regs[CRTCPresetRowScan] = 0x00
	r.CRTC.Regs[CRTCMaxScanLine] = 0x0F
	r.CRTC.Regs[CRTCCursorStart] = 0x0D
	r.CRTC.Regs[CRTCCursorEnd] = 0x0E
	r.CRTC.Regs[CRTCStartAddrHigh] = 0x00
	r.CRTC.Regs[CRTCStartAddrLow] = 0x00
	r.CRTC.Regs[CRTCCursorLocHigh] = 0x00
	r.CRTC.Regs[CRTCCursorLocLow] = 0x00
	r.CRTC.Regs[CRTCVertRetrStart] = 0x9C
	r.CRTC.Regs[CRTCVertRetrEnd] = 0x8E
	r.CRTC.Regs[CRTCVertDispEnd] = 0x8F
	r.CRTC.Regs[CRTCOffset] = 0x28
	r.CRTC.Regs[CRTCUnderline] = 0x0F
	r.CRTC.Regs[CRTCStartVertBlank] = 0x96
	r.CRTC.Regs[CRTCEndVertBlank] = 0xB9
	r.CRTC.Regs[CRTCModeControl] = 0xE3
	r.CRTC.Regs[CRTCLineCompare] = 0xFF

	for i := 0; i < 16; i++ {
		r.AC.Regs[ACPalette0+i] = uint8(i)
	}
	r.AC.Regs[ACModeCtrl] = 0x0C
	r.AC.Regs[ACOverscan] = 0x00
	r.AC.Regs[ACPlaneEn] = 0x0F
	r.AC.Regs[ACHPan] = 0x08
	r.AC.Regs[ACColorSel] = 0x00

	r.Misc = 0x67

	r.ModeChanged = true
}
