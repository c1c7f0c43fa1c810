// vga_host_memory.go - pure-Go in-memory SurfaceFactory (spec.md §6.2,
// default backend, no build tag). This is what the test suite runs
// against; grounded on the plain-struct backing-array pattern in the
// teacher's video_chip.go framebuffer fields.

package vga

import "sync"

// MemoryGraphicsSurface is an in-memory 8-bit indexed framebuffer.
type MemoryGraphicsSurface struct {
	mu            sync.Mutex
	width, height int
	pixels        []uint8
	Dirty         []Rect // accumulated invalidate() calls, for test assertions
}

func newMemoryGraphicsSurface(width, height int) *MemoryGraphicsSurface {
	return &MemoryGraphicsSurface{width: width, height: height, pixels: make([]uint8, width*height)}
}

func (s *MemoryGraphicsSurface) Lock()   { s.mu.Lock() }
func (s *MemoryGraphicsSurface) Unlock() { s.mu.Unlock() }

func (s *MemoryGraphicsSurface) SetPixel(x, y int, index uint8) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = index
}

func (s *MemoryGraphicsSurface) GetPixel(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.pixels[y*s.width+x]
}

func (s *MemoryGraphicsSurface) Invalidate(rect Rect) { s.Dirty = append(s.Dirty, rect) }
func (s *MemoryGraphicsSurface) Close()               {}

// Dimensions reports the surface size, for tests and reference host
// backends that need to read back the full framebuffer.
func (s *MemoryGraphicsSurface) Dimensions() (width, height int) { return s.width, s.height }

// MemoryTextSurface is an in-memory character-cell buffer.
type MemoryTextSurface struct {
	cols, rows int
	cells      []Cell
	cursorCol  int
	cursorRow  int
	cursorVis  bool
	cursorPct  int
}

func newMemoryTextSurface(cols, rows int) *MemoryTextSurface {
	return &MemoryTextSurface{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
}

func (s *MemoryTextSurface) Resize(cols, rows int) error {
	s.cols, s.rows = cols, rows
	s.cells = make([]Cell, cols*rows)
	return nil
}

func (s *MemoryTextSurface) Blit(rect Rect, cells []Cell) {
	n := (rect.X1 - rect.X0) * (rect.Y1 - rect.Y0)
	if n > len(cells) {
		n = len(cells)
	}
	if n > len(s.cells) {
		n = len(s.cells)
	}
	copy(s.cells[:n], cells[:n])
}

func (s *MemoryTextSurface) SetCursor(col, row int, visible bool, sizePercent int) {
	s.cursorCol, s.cursorRow, s.cursorVis, s.cursorPct = col, row, visible, sizePercent
}

func (s *MemoryTextSurface) Close() {}

// Cells exposes the current cell buffer, for tests.
func (s *MemoryTextSurface) Cells() []Cell { return s.cells }

// MemorySurfaceFactory is the default, dependency-free SurfaceFactory.
type MemorySurfaceFactory struct{}

func (MemorySurfaceFactory) NewGraphicsSurface(width, height int) (GraphicsSurface, error) {
	return newMemoryGraphicsSurface(width, height), nil
}

func (MemorySurfaceFactory) NewTextSurface(cols, rows int) (TextSurface, error) {
	return newMemoryTextSurface(cols, rows), nil
}
