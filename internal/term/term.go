// Package term implements the ANSI screen, raw input mode, and the
// stdin event reader.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/tenff-dev/tenff/internal/game"
)

// Screen implements game.Screen with ANSI escape sequences. Writes are
// buffered; errors stick to the writer and surface on Flush.
type Screen struct {
	w *bufio.Writer
}

// NewScreen wraps a terminal-like writer.
func NewScreen(w io.Writer) *Screen {
	return &Screen{w: bufio.NewWriter(w)}
}

// MoveCursorUp moves the cursor up n lines, to column zero.
func (s *Screen) MoveCursorUp(n int) {
	_, _ = fmt.Fprintf(s.w, "\x1b[%dF", n)
}

// EraseLine returns the cursor to column zero and erases the line.
func (s *Screen) EraseLine() {
	_, _ = s.w.WriteString("\x1b[999D\x1b[K")
}

// SetColor switches the text color.
func (s *Screen) SetColor(c game.Color) {
	switch c {
	case game.ColorRed:
		_, _ = s.w.WriteString("\x1b[31;1m")
	case game.ColorGreen:
		_, _ = s.w.WriteString("\x1b[32;1m")
	case game.ColorYellow:
		_, _ = s.w.WriteString("\x1b[33;1m")
	default:
		_, _ = s.w.WriteString("\x1b[0m")
	}
}

// ResetColor restores the default text color.
func (s *Screen) ResetColor() {
	_, _ = s.w.WriteString("\x1b[0m")
}

// WriteString writes plain text.
func (s *Screen) WriteString(text string) {
	_, _ = s.w.WriteString(text)
}

// Flush writes out the buffered frame.
func (s *Screen) Flush() error {
	return s.w.Flush()
}

// RawMode holds the terminal state needed to undo raw input mode.
type RawMode struct {
	fd    int
	state *xterm.State
}

// EnableRaw switches the terminal into raw, unbuffered, non-echoing
// input mode.
func EnableRaw(f *os.File) (*RawMode, error) {
	fd := int(f.Fd())
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore puts the terminal back into its previous mode.
func (r *RawMode) Restore() error {
	if err := xterm.Restore(r.fd, r.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// Width returns the terminal width clamped to max. A terminal whose
// size cannot be read reports max.
func Width(f *os.File, max int) int {
	w, _, err := xterm.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || w >= max {
		return max
	}
	return w
}

// ReadEvents reads raw byte chunks from r and delivers them as decoded
// string events. Bytes that do not decode as UTF-8 are dropped. The
// channel is closed on read error or EOF.
func ReadEvents(r io.Reader) <-chan string {
	events := make(chan string, 64)
	go func() {
		defer close(events)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if ev := strings.ToValidUTF8(string(buf[:n]), ""); ev != "" {
					events <- ev
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return events
}
