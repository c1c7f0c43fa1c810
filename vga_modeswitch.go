// vga_modeswitch.go - mode transition teardown/acquire (spec.md §4.6)
//
// Grounded on VgaEnterGraphicsMode/VgaLeaveGraphicsMode/VgaEnterTextMode/
// VgaLeaveTextMode/VgaUpdateMode in vga.c.

package vga

import "log/slog"

// SwitchMode releases the engine's current surface and acquires a new one
// sized to the derived resolution, per spec.md §4.6. It is invoked by
// ScanOut when RegFile.ModeChanged is set.
func (e *Engine) SwitchMode() {
	res := e.Regs.Resolution()
	graphics := e.Regs.IsGraphicsMode()

	e.leaveCurrentSurface()

	if graphics {
		surf, err := e.Factory.NewGraphicsSurface(res.Width, res.Height)
		if err != nil {
			// Abort the transition. The prior surface was already released
			// above and is not restored: TextMode keeps its old value, the
			// engine holds no surface, and scan-out does nothing until the
			// next successful mode change.
			e.logger().Warn("vga: graphics surface creation failed, aborting mode switch", "error", err, "width", res.Width, "height", res.Height)
			return
		}
		e.TextMode = false
		e.Graphics = surf
		e.cachedCells = nil
	} else {
		surf, err := e.Factory.NewTextSurface(res.Width, res.Height)
		if err != nil {
			// spec.md §7: fatal in text mode.
			e.logger().Error("vga: text surface allocation failed", "error", err, "cols", res.Width, "rows", res.Height)
			panic(&VideoError{Op: "SwitchMode", Err: err})
		}
		e.TextMode = true
		e.Text = surf
		e.cachedCells = make([]Cell, res.Width*res.Height)
		e.textCols, e.textRows = res.Width, res.Height
	}

	e.NeedsUpdate = true
	e.UpdateRect = Rect{X0: 0, Y0: 0, X1: res.Width, Y1: res.Height}
}

// leaveCurrentSurface releases whichever surface is currently owned.
// Unconditional: no release-without-acquire is modeled, per spec.md §9's
// resolution of the leave-graphics open question.
func (e *Engine) leaveCurrentSurface() {
	if e.Graphics != nil {
		e.Graphics.Close()
		e.Graphics = nil
	}
	if e.Text != nil {
		e.Text.Close()
		e.Text = nil
	}
}

// VideoError wraps a fatal host-surface failure signalled to the
// supervising emulator (spec.md §7).
type VideoError struct {
	Op  string
	Err error
}

func (e *VideoError) Error() string { return "vga: " + e.Op + ": " + e.Err.Error() }
func (e *VideoError) Unwrap() error { return e.Err }

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
