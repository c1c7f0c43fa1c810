// vga_host.go - the host-facing contract (spec.md §6), turned into concrete
// Go interfaces the way the teacher exposes VideoOutput/VideoSource in
// video_interface.go.

package vga

import "sync"

// Rect is a dirty/invalidate rectangle in cell or pixel coordinates,
// inclusive of (X0,Y0), exclusive of (X1,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Cell is one text-mode character cell (spec.md §3 "text character-cell
// buffer").
type Cell struct {
	Char byte
	Attr byte
}

// TextSurface is the host's text-mode character-cell buffer (spec.md §6
// "text character-cell buffer"). Grounded on ConsoleFramebuffer/CHAR_INFO
// handling in vga.c.
type TextSurface interface {
	Resize(cols, rows int) error
	Blit(rect Rect, cells []Cell)
	SetCursor(col, row int, visible bool, sizePercent int)
	Close()
}

// GraphicsSurface is the host's 8-bit indexed pixel framebuffer plus the
// repainter-coordination primitives spec.md §5 requires (grounded on
// GraphicsConsoleBuffer/ConsoleMutex in vga.c).
type GraphicsSurface interface {
	sync.Locker
	SetPixel(x, y int, index uint8)
	GetPixel(x, y int) uint8
	Invalidate(rect Rect)
	Close()
}

// SurfaceFactory creates the surfaces ModeSwitcher acquires on each mode
// transition (spec.md §4.6, grounded on VgaEnterGraphicsMode/
// VgaEnterTextMode in vga.c).
type SurfaceFactory interface {
	NewGraphicsSurface(width, height int) (GraphicsSurface, error)
	NewTextSurface(cols, rows int) (TextSurface, error)
}

// BIOS programs the default register state at boot (spec.md §6
// "Initialization", grounded on BiosSetVideoMode in vga.c). Out of scope
// per spec.md §1, but the core still depends on it through this interface.
type BIOS interface {
	SetDefaultVideoMode(e *Engine)
}
