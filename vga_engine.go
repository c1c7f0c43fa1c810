// vga_engine.go - the owned state object bundling every VGA component
// (spec.md §9 "global mutable state -> owned state object"), grounded on
// VGAEngine in video_vga.go.

package vga

import "log/slog"

// Engine is the VGA core: register file, planar memory, the active host
// surface, and the collaborators (SurfaceFactory, BIOS, logger) the
// surrounding emulator supplies. Guest CPU dispatch, the host display, and
// the BIOS video-mode initializer are external collaborators (spec.md §1).
type Engine struct {
	Regs RegFile
	Mem  PlaneMemory

	Factory SurfaceFactory
	Bios    BIOS
	Logger  *slog.Logger

	TextMode bool
	Text     TextSurface
	Graphics GraphicsSurface

	NeedsUpdate bool
	UpdateRect  Rect

	cachedCells        []Cell
	textCols, textRows int

	interleavedLogged bool
}

// NewEngine constructs an Engine around the given host collaborators. The
// register file and planar memory start zeroed; call Init to bring the
// engine to a display-ready state (spec.md §6 "Initialization").
func NewEngine(factory SurfaceFactory, bios BIOS) *Engine {
	return &Engine{
		Regs:    *NewRegFile(),
		Factory: factory,
		Bios:    bios,
	}
}

// Init zeroes planar memory, asks the BIOS collaborator to program default
// mode registers, runs the mode switch once, then snapshots whatever the
// host text surface already shows back into planes 0/1 (spec.md §6).
func (e *Engine) Init(existing []Cell) {
	e.Mem = PlaneMemory{}

	if e.Bios != nil {
		e.Bios.SetDefaultVideoMode(e)
	}

	e.SwitchMode()
	e.Regs.ModeChanged = false

	if !e.TextMode || len(existing) == 0 {
		return
	}
	cols := e.textCols
	for i, cell := range existing {
		if i >= len(e.cachedCells) || cols == 0 {
			break
		}
		addr := uint16(i)
		e.Mem.Bank[0][addr] = cell.Char
		e.Mem.Bank[1][addr] = cell.Attr
		e.cachedCells[i] = cell
	}
}
