package draw

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/term"
)

// FrameWriter collects one frame of terminal output and sends it in a single
// write on Flush, so the terminal never shows half-drawn frames. Text positions
// are relative to the board's top-left cell.
type FrameWriter struct {
	out       io.Writer
	frame     bytes.Buffer
	originCol int
	originRow int
}

var _ io.Writer = (*FrameWriter)(nil)

// NewFrameWriter creates a FrameWriter for out with the board origin at the
// given 0-based terminal offset.
func NewFrameWriter(out io.Writer, originCol, originRow int) *FrameWriter {
	return &FrameWriter{out: out, originCol: originCol, originRow: originRow}
}

// SetOrigin moves the board origin after a terminal resize.
func (fw *FrameWriter) SetOrigin(col, row int) {
	fw.originCol, fw.originRow = col, row
}

// Write appends raw output, such as a rendered canvas, to the frame.
func (fw *FrameWriter) Write(p []byte) (int, error) {
	return fw.frame.Write(p)
}

// Text places s at a 1-based board cell.
func (fw *FrameWriter) Text(col, row int, s string) {
	fw.frame.WriteString("\033[")
	fw.frame.WriteString(strconv.Itoa(row + fw.originRow))
	fw.frame.WriteByte(';')
	fw.frame.WriteString(strconv.Itoa(col + fw.originCol))
	fw.frame.WriteByte('H')
	fw.frame.WriteString(s)
}

// Centered places s in the middle of a board row that is width cells wide.
func (fw *FrameWriter) Centered(width, row int, s string) {
	col := (width-utf8.RuneCountInString(s))/2 + 1
	fw.Text(max(col, 1), row, s)
}

// Flush sends the frame and starts an empty one.
func (fw *FrameWriter) Flush() error {
	defer fw.frame.Reset()
	_, err := fw.out.Write(fw.frame.Bytes())
	return err
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, "\033[?25h")
}
