// vga_constants.go - register indices, ports, and bit fields for the VGA core

package vga

// Guest I/O ports (VGA color-mode port set).
const (
	PortAttrIndex  = 0x3C0 // AC index/data (latched, see PortDispatch)
	PortAttrRead   = 0x3C1 // AC data readback
	PortMiscWrite  = 0x3C2 // Misc Output register (write)
	PortSeqIndex   = 0x3C4
	PortSeqData    = 0x3C5
	PortDACMask    = 0x3C6
	PortDACRead    = 0x3C7 // write: set read index / read: DAC state
	PortDACWrite   = 0x3C8
	PortDACData    = 0x3C9
	PortMiscRead   = 0x3CC
	PortGCIndex    = 0x3CE
	PortGCData     = 0x3CF
	PortCRTCIndex  = 0x3D4
	PortCRTCData   = 0x3D5
	PortStatusMono = 0x3BA
	PortStatusColor = 0x3DA
)

// Register bank sizes (spec.md §3).
const (
	MaxSeqReg  = 5
	MaxGCReg   = 9
	MaxCRTCReg = 25
	MaxACReg   = 21
	PaletteSize = 256

	NumBanks = 4
	BankSize = 65536

	// DACIndexSize is the flat R/G/B component address space the DAC write/
	// read index cycles through: one slot per component, not per entry
	// (spec.md §4.1 DAC_DATA row; vga.c VGA_PALETTE_SIZE/VgaDacIndex).
	DACIndexSize = PaletteSize * 3
)

// Sequencer register indices.
const (
	SeqReset    = 0x00
	SeqClocking = 0x01
	SeqMapMask  = 0x02
	SeqCharMap  = 0x03
	SeqMemory   = 0x04
)

// Sequencer bits.
const (
	SeqClocking98DM = 1 << 0 // 0 = 9 dots/char, 1 = 8 dots/char
	SeqMemoryC4     = 1 << 3 // chain-4
)

// Graphics Controller register indices.
const (
	GCSetReset    = 0x00
	GCEnableSR    = 0x01
	GCColorCmp    = 0x02
	GCDataRotate  = 0x03
	GCReadMapSel  = 0x04
	GCMode        = 0x05
	GCMisc        = 0x06
	GCColorDont   = 0x07
	GCBitMask     = 0x08
)

// Graphics Controller bits.
const (
	GCModeOE       = 1 << 4 // odd/even host addressing
	GCModeShift256 = 1 << 6 // chain-4 pixel shift (256-color)
	GCModeShiftReg = 1 << 5 // interleaved shift, unimplemented (spec.md §9)

	GCMiscNoAlpha = 1 << 0 // graphics (vs. text/alpha) mode
)

// CRTC register indices.
const (
	CRTCHorzTotal       = 0x00
	CRTCEndHorzDisp     = 0x01
	CRTCStartHorzBlank  = 0x02
	CRTCEndHorzBlank    = 0x03
	CRTCStartHorzRetr   = 0x04
	CRTCEndHorzRetr     = 0x05
	CRTCVertTotal       = 0x06
	CRTCOverflow        = 0x07
	CRTCPresetRowScan   = 0x08
	CRTCMaxScanLine     = 0x09
	CRTCCursorStart     = 0x0A
	CRTCCursorEnd       = 0x0B
	CRTCStartAddrHigh   = 0x0C
	CRTCStartAddrLow    = 0x0D
	CRTCCursorLocHigh   = 0x0E
	CRTCCursorLocLow    = 0x0F
	CRTCVertRetrStart   = 0x10
	CRTCVertRetrEnd     = 0x11
	CRTCVertDispEnd     = 0x12
	CRTCOffset          = 0x13
	CRTCUnderline       = 0x14
	CRTCStartVertBlank  = 0x15
	CRTCEndVertBlank    = 0x16
	CRTCModeControl     = 0x17
	CRTCLineCompare     = 0x18
)

// CRTC bits.
const (
	CRTCUnderlineDWord   = 1 << 6 // doubleword addressing
	CRTCModeControlByte  = 1 << 6 // byte addressing
	CRTCOverflowVDE8     = 1 << 1
	CRTCOverflowVDE9     = 1 << 6
)

// Attribute Controller.
const (
	ACPalette0   = 0x00
	ACModeCtrl   = 0x10
	ACOverscan   = 0x11
	ACPlaneEn    = 0x12
	ACHPan       = 0x13
	ACColorSel   = 0x14
)

// ACModeCtrl bits.
const (
	ACControl8Bit = 1 << 6 // 8 bits/pixel (256-color) vs 4 bits/pixel
)

// Misc Output register bits.
const (
	MiscRAMEnabled = 1 << 1
)

// Status register bits.
const (
	StatusDD       = 1 << 0 // display disabled (retrace in progress)
	StatusVRetrace = 1 << 3
)

// Aperture table, indexed by (GC.Misc>>2)&3 (spec.md §4.4, vga.c MemoryBase/Limit).
var (
	apertureBase  = [4]uint32{0xA0000, 0xA0000, 0xB0000, 0xB8000}
	apertureLimit = [4]uint32{0xAFFFF, 0xAFFFF, 0xB7FFF, 0xBFFFF}
)
