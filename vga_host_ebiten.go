//go:build vgaebiten

// vga_host_ebiten.go - windowed SurfaceFactory backend (spec.md §6.2),
// grounded on video_backend_ebiten.go's EbitenOutput/ebiten.Game pattern.

package vga

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"
)

const ebitenWindowScale = 2

var clipboardOnce sync.Once
var clipboardReady bool

// EbitenGraphicsSurface is a GraphicsSurface backed by an ebiten window. The
// indexed framebuffer is scaled into the window with NearestNeighbor so the
// blocky VGA aesthetic is preserved rather than blurred (spec.md §6.2).
type EbitenGraphicsSurface struct {
	mu            sync.Mutex
	width, height int
	pixels        []uint8
	palette       *DAC
	rgba          *image.RGBA
	window        *ebiten.Image
	closed        bool
}

func newEbitenGraphicsSurface(width, height int, palette *DAC) (*EbitenGraphicsSurface, error) {
	s := &EbitenGraphicsSurface{
		width: width, height: height,
		pixels:  make([]uint8, width*height),
		palette: palette,
		rgba:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	ebiten.SetWindowSize(width*ebitenWindowScale, height*ebitenWindowScale)
	ebiten.SetWindowTitle("vgacore")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	go func() {
		_ = ebiten.RunGame(s)
	}()
	return s, nil
}

func (s *EbitenGraphicsSurface) Lock()   { s.mu.Lock() }
func (s *EbitenGraphicsSurface) Unlock() { s.mu.Unlock() }

func (s *EbitenGraphicsSurface) SetPixel(x, y int, index uint8) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = index
}

func (s *EbitenGraphicsSurface) GetPixel(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.pixels[y*s.width+x]
}

func (s *EbitenGraphicsSurface) Invalidate(rect Rect) {
	for y := rect.Y0; y < rect.Y1 && y < s.height; y++ {
		for x := rect.X0; x < rect.X1 && x < s.width; x++ {
			if x < 0 || y < 0 {
				continue
			}
			c := s.palette.Palette[s.pixels[y*s.width+x]]
			s.rgba.Set(x, y, color.RGBA{R: expand6Bit(c[0]), G: expand6Bit(c[1]), B: expand6Bit(c[2]), A: 0xFF})
		}
	}
}

func (s *EbitenGraphicsSurface) Close() { s.closed = true }

// Update implements ebiten.Game.
func (s *EbitenGraphicsSurface) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyF11) && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

// Draw implements ebiten.Game, scaling the indexed framebuffer's RGBA
// rendition into the window via NearestNeighbor (pixel-exact, no blur).
func (s *EbitenGraphicsSurface) Draw(screen *ebiten.Image) {
	dst := image.NewRGBA(image.Rect(0, 0, s.width*ebitenWindowScale, s.height*ebitenWindowScale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), s.rgba, s.rgba.Bounds(), draw.Src, nil)
	screen.WritePixels(dst.Pix)
}

// Layout implements ebiten.Game.
func (s *EbitenGraphicsSurface) Layout(_, _ int) (int, int) {
	return s.width * ebitenWindowScale, s.height * ebitenWindowScale
}

func expand6Bit(v uint8) uint8 {
	v &= 0x3F
	return (v << 2) | (v >> 4)
}

// EbitenTextSurface holds the character cell buffer and offers clipboard
// paste; it paints nothing. Rendering the glyphs themselves is delegated to the host
// per spec.md §1; this backend only tracks cell contents and injects
// clipboard paste into VRAM the way handleClipboardPaste does in the
// teacher's backend.
type EbitenTextSurface struct {
	cols, rows int
	cells      []Cell
	engine     *Engine
}

func newEbitenTextSurface(cols, rows int, engine *Engine) (*EbitenTextSurface, error) {
	clipboardOnce.Do(func() {
		clipboardReady = clipboard.Init() == nil
	})
	return &EbitenTextSurface{cols: cols, rows: rows, cells: make([]Cell, cols*rows), engine: engine}, nil
}

func (s *EbitenTextSurface) Resize(cols, rows int) error {
	s.cols, s.rows = cols, rows
	s.cells = make([]Cell, cols*rows)
	return nil
}

func (s *EbitenTextSurface) Blit(rect Rect, cells []Cell) {
	n := (rect.X1 - rect.X0) * (rect.Y1 - rect.Y0)
	if n > len(cells) {
		n = len(cells)
	}
	if n > len(s.cells) {
		n = len(s.cells)
	}
	copy(s.cells[:n], cells[:n])
}

func (s *EbitenTextSurface) SetCursor(col, row int, visible bool, sizePercent int) {}
func (s *EbitenTextSurface) Close()                                               {}

// PasteClipboard injects clipboard text into text-mode VRAM at the current
// cursor location, grounded on handleClipboardPaste in video_backend_ebiten.go.
func (s *EbitenTextSurface) PasteClipboard(startAddr uint16) {
	if !clipboardReady {
		return
	}
	text := clipboard.Read(clipboard.FmtText)
	if len(text) == 0 {
		return
	}
	for i, b := range text {
		addr := startAddr + uint16(i)
		if int(addr) >= len(s.engine.Mem.Bank[0]) {
			break
		}
		s.engine.Mem.Bank[0][addr] = b
	}
}

// EbitenSurfaceFactory creates windowed surfaces (spec.md §6.2).
type EbitenSurfaceFactory struct {
	Engine *Engine
}

func (f *EbitenSurfaceFactory) NewGraphicsSurface(width, height int) (GraphicsSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vga: invalid graphics surface size %dx%d", width, height)
	}
	return newEbitenGraphicsSurface(width, height, &f.Engine.Regs.DAC)
}

func (f *EbitenSurfaceFactory) NewTextSurface(cols, rows int) (TextSurface, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("vga: invalid text surface size %dx%d", cols, rows)
	}
	return newEbitenTextSurface(cols, rows, f.Engine)
}
