package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	DeadSymbol  = '_'
	AliveSymbol = '*'

	// maxLineSize bounds a single input row; rows are one byte per cell
	maxLineSize = 16 << 20
)

// Symbols are the two characters of the board text format
type Symbols struct {
	Dead  byte
	Alive byte
}

// DefaultSymbols returns the `_` / `*` pair
func DefaultSymbols() Symbols {
	return Symbols{Dead: DeadSymbol, Alive: AliveSymbol}
}

// Decode parses a rectangular grid of dead/alive symbols, one row per line.
// The grid is returned as read, without cropping.
func Decode(r io.Reader, sym Symbols) (*Grid, error) {
	var (
		rows    [][]bool
		width   int
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		lineNo := len(rows) + 1

		if lineNo == 1 {
			width = len(line)
		} else if len(line) != width {
			return nil, &FormatError{Line: lineNo, Ragged: true, Width: width, Got: len(line)}
		}

		row := make([]bool, len(line))
		for x, c := range line {
			switch c {
			case sym.Dead:
			case sym.Alive:
				row[x] = true
			default:
				return nil, &FormatError{Line: lineNo, Char: c}
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "[Decode] failed to read line %d", len(rows)+1)
	}

	g := NewGrid(width, len(rows))
	if g.IsEmpty() {
		return g, nil
	}
	for y, row := range rows {
		copy(g.row(y), row)
	}
	return g, nil
}

// Encode renders the grid in the text format, each row terminated by a newline.
// An empty grid encodes to the empty string.
func Encode(g *Grid, sym Symbols) string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := range g.height {
		for _, alive := range g.row(y) {
			if alive {
				sb.WriteByte(sym.Alive)
			} else {
				sb.WriteByte(sym.Dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
