//go:build vgaterm

// vga_host_terminal.go - raw-mode terminal SurfaceFactory backend
// (spec.md §6.2), grounded on terminal_host.go's term.MakeRaw/term.Restore
// usage. Unlike the teacher's raw syscall.Read/EAGAIN polling loop, input
// is read through a buffered reader on its own goroutine -- simpler, and
// safe on every platform term supports.

package vga

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalTextSurface renders the character-cell buffer as ANSI SGR escape
// sequences and feeds raw keystrokes back into text-mode VRAM.
type TerminalTextSurface struct {
	cols, rows int
	cells      []Cell
	engine     *Engine

	fd       int
	oldState *term.State
	reader   *bufio.Reader
	stop     chan struct{}
}

func newTerminalTextSurface(cols, rows int, engine *Engine) (*TerminalTextSurface, error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("vga: terminal raw mode: %w", err)
	}
	s := &TerminalTextSurface{
		cols: cols, rows: rows,
		cells:    make([]Cell, cols*rows),
		engine:   engine,
		fd:       fd,
		oldState: old,
		reader:   bufio.NewReader(os.Stdin),
		stop:     make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

func (s *TerminalTextSurface) readLoop() {
	for {
		select {
		case <-s.stop:
			return
		default:
		}
		b, err := s.reader.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case '\r':
			b = '\n'
		case 0x7F:
			b = 0x08
		}
		s.routeKey(b)
	}
}

// routeKey writes the received byte into plane 0 at the cursor column of
// row 0, a minimal stand-in for the guest's keyboard buffer consumption;
// the real keyboard controller is an external collaborator (spec.md §1).
func (s *TerminalTextSurface) routeKey(b byte) {
	if len(s.engine.Mem.Bank[0]) == 0 {
		return
	}
	col := s.engine.Regs.CursorGeometry(s.engine.Regs.ScanlineSize()).Column
	s.engine.Mem.Bank[0][uint16(col)] = b
}

func (s *TerminalTextSurface) Resize(cols, rows int) error {
	s.cols, s.rows = cols, rows
	s.cells = make([]Cell, cols*rows)
	return nil
}

func (s *TerminalTextSurface) Blit(rect Rect, cells []Cell) {
	n := (rect.X1 - rect.X0) * (rect.Y1 - rect.Y0)
	if n > len(cells) {
		n = len(cells)
	}
	if n > len(s.cells) {
		n = len(s.cells)
	}
	copy(s.cells[:n], cells[:n])

	var out []byte
	out = append(out, "\x1b[H"...)
	for i, c := range s.cells[:n] {
		if i > 0 && i%s.cols == 0 {
			out = append(out, "\r\n"...)
		}
		fg := c.Attr & 0x0F
		bg := (c.Attr >> 4) & 0x0F
		out = append(out, []byte(fmt.Sprintf("\x1b[%d;%dm%c", 30+int(fg%8), 40+int(bg%8), c.Char))...)
	}
	os.Stdout.Write(out)
}

func (s *TerminalTextSurface) SetCursor(col, row int, visible bool, sizePercent int) {
	fmt.Fprintf(os.Stdout, "\x1b[%d;%dH", row+1, col+1)
	if visible {
		os.Stdout.WriteString("\x1b[?25h")
	} else {
		os.Stdout.WriteString("\x1b[?25l")
	}
}

func (s *TerminalTextSurface) Close() {
	select {
	case <-s.stop:
		return
	default:
	}
	close(s.stop)
	_ = term.Restore(s.fd, s.oldState)
}

// TerminalSurfaceFactory builds terminal-backed text surfaces. Graphics
// mode has no terminal rendition, so NewGraphicsSurface falls back to the
// dependency-free in-memory surface.
type TerminalSurfaceFactory struct {
	Engine *Engine
}

func (f *TerminalSurfaceFactory) NewGraphicsSurface(width, height int) (GraphicsSurface, error) {
	return newMemoryGraphicsSurface(width, height), nil
}

func (f *TerminalSurfaceFactory) NewTextSurface(cols, rows int) (TextSurface, error) {
	return newTerminalTextSurface(cols, rows, f.Engine)
}
