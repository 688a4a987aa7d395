package buffer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrNoPreviousLine = errors.New("no previous line to join with")
	ErrLineOutOfRange = errors.New("line index out of range")
)

// Buffer is an ordered list of lines plus a cached copy of the current line.
// It always holds at least one line. Columns are rune offsets.
type Buffer struct {
	lines       []string
	current     int
	currentLine string
}

// New returns a buffer holding lines, or a single empty line when none are given.
func New(lines ...string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b := &Buffer{lines: append([]string(nil), lines...)}
	b.currentLine = b.lines[0]
	return b
}

func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineLen returns the rune length of line i.
func (b *Buffer) LineLen(i int) int {
	return utf8.RuneCountInString(b.Line(i))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *Buffer) Current() int {
	return b.current
}

func (b *Buffer) CurrentLine() string {
	return b.currentLine
}

func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

func (b *Buffer) SetCurrent(i int) error {
	if i < 0 || i >= len(b.lines) {
		return fmt.Errorf("set current %d of %d: %w", i, len(b.lines), ErrLineOutOfRange)
	}
	b.sync(i)
	return nil
}

// InsertChar splices ch into line at col. Out-of-range positions are ignored.
func (b *Buffer) InsertChar(line, col int, ch rune) bool {
	if line < 0 || line >= len(b.lines) {
		return false
	}
	rs := []rune(b.lines[line])
	if col < 0 || col > len(rs) {
		return false
	}
	out := make([]rune, 0, len(rs)+1)
	out = append(out, rs[:col]...)
	out = append(out, ch)
	out = append(out, rs[col:]...)
	b.lines[line] = string(out)
	b.sync(line)
	return true
}

// RemoveChar deletes the rune before col, the way backspace does.
func (b *Buffer) RemoveChar(line, col int) bool {
	if line < 0 || line >= len(b.lines) {
		return false
	}
	rs := []rune(b.lines[line])
	if col <= 0 || col > len(rs) {
		return false
	}
	b.lines[line] = string(rs[:col-1]) + string(rs[col:])
	b.sync(line)
	return true
}

// SplitLine cuts line at col. The head stays in place, the tail becomes a new
// line right after it and turns into the current line.
func (b *Buffer) SplitLine(line, col int) bool {
	if line < 0 || line >= len(b.lines) {
		return false
	}
	rs := []rune(b.lines[line])
	if col < 0 || col > len(rs) {
		return false
	}
	head, tail := string(rs[:col]), string(rs[col:])
	b.lines[line] = head
	b.insert(line+1, tail)
	b.sync(line + 1)
	return true
}

// InsertLine inserts text as a new line at index at and makes it current.
func (b *Buffer) InsertLine(at int, text string) error {
	if at < 0 || at > len(b.lines) {
		return fmt.Errorf("insert line %d of %d: %w", at, len(b.lines), ErrLineOutOfRange)
	}
	b.insert(at, text)
	b.sync(at)
	return nil
}

// JoinWithPrevious appends line to line-1 and removes it. It returns the
// column where the joined text starts.
func (b *Buffer) JoinWithPrevious(line int) (int, error) {
	if line == 0 {
		return 0, ErrNoPreviousLine
	}
	if line < 0 || line >= len(b.lines) {
		return 0, fmt.Errorf("join line %d of %d: %w", line, len(b.lines), ErrLineOutOfRange)
	}
	prev := b.lines[line-1]
	col := utf8.RuneCountInString(prev)
	b.lines[line-1] = prev + b.lines[line]
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	b.sync(line - 1)
	return col, nil
}

func (b *Buffer) insert(at int, text string) {
	b.lines = append(b.lines, "")
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = text
}

func (b *Buffer) sync(i int) {
	b.current = i
	b.currentLine = b.lines[i]
}
