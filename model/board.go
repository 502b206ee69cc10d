package model

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegame/rules"
	"github.com/sheikhrachel/lifegame/utils"
)

// DefaultOutputDir is where snapshots are written, relative to the working directory
const DefaultOutputDir = utils.DefaultOutputDir

// StopReason tells why Board.Iterate returned
type StopReason int

const (
	// StopCompleted means the requested number of iterations was reached
	StopCompleted StopReason = iota
	// StopEmpty means no cell is alive anymore
	StopEmpty
	// StopCapped means the board hit the size cap and could not expand
	StopCapped
	// StopAborted means a snapshot could not be saved
	StopAborted
	// StopCanceled means the context was cancelled between two generations
	StopCanceled
)

func (r StopReason) String() string {
	switch r {
	case StopCompleted:
		return "completed"
	case StopEmpty:
		return "empty"
	case StopCapped:
		return "capped"
	case StopAborted:
		return "aborted"
	case StopCanceled:
		return "canceled"
	}
	return fmt.Sprintf("StopReason(%d)", int(r))
}

// Board is a Game of Life board that grows and shrinks with the living cells.
// After construction and after every generation it holds exactly the bounding
// box of its living cells, or nothing at all.
type Board struct {
	grid *Grid

	baseName  string
	outputDir string

	limitEnabled bool
	maxCells     int
	symbols      Symbols

	logger log.Logger
	stats  *utils.Stats
	pool   *GridPool
}

// Option configures a Board
type Option func(*Board)

// WithOutputDir sets the snapshot directory, created on construction if absent
func WithOutputDir(dir string) Option {
	return func(b *Board) { b.outputDir = dir }
}

// WithNoLimit disables the size cap when noLimit is true
func WithNoLimit(noLimit bool) Option {
	return func(b *Board) { b.limitEnabled = !noLimit }
}

// WithMaxCells overrides the size cap
func WithMaxCells(n int) Option {
	return func(b *Board) { b.maxCells = n }
}

// WithSymbols sets the dead/alive characters used to parse and serialize
func WithSymbols(sym Symbols) Option {
	return func(b *Board) { b.symbols = sym }
}

// WithLogger sets the logger receiving iteration progress
func WithLogger(logger log.Logger) Option {
	return func(b *Board) { b.logger = logger }
}

// WithStats makes the board record its progress in s
func WithStats(s *utils.Stats) Option {
	return func(b *Board) { b.stats = s }
}

// WithPool makes the board recycle its cell buffers through p
func WithPool(p *GridPool) Option {
	return func(b *Board) { b.pool = p }
}

// NewBoard reads the board stored in the file at path
func NewBoard(path string, opts ...Option) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errors.New("is a directory")}
	}

	return NewBoardFromReader(path, f, opts...)
}

// NewBoardFromReader parses a board from r. name is the input file name the
// snapshot names are derived from.
func NewBoardFromReader(name string, r io.Reader, opts ...Option) (*Board, error) {
	b := &Board{
		outputDir:    DefaultOutputDir,
		limitEnabled: true,
		maxCells:     utils.DefaultMaxCells,
		symbols:      DefaultSymbols(),
		logger:       log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}

	grid, err := Decode(r, b.symbols)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewBoard] failed to parse %s", name)
	}
	b.grid = grid
	b.baseName = stem(name)

	dir, err := filepath.Abs(b.outputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewBoard] failed to resolve output directory: %s", b.outputDir)
	}
	b.outputDir = dir
	if err = os.MkdirAll(b.outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "[NewBoard] failed to create output directory: %s", b.outputDir)
	}

	b.Shrink()
	return b, nil
}

// stem returns the file name without directory and extension
func stem(path string) string {
	base := filepath.Base(path)
	if s := strings.TrimSuffix(base, filepath.Ext(base)); s != "" {
		return s
	}
	return base
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int { return b.grid.width }

// GetHeight returns the height of the board
func (b *Board) GetHeight() int { return b.grid.height }

// IsEmpty reports whether the board holds no cell
func (b *Board) IsEmpty() bool { return b.grid.IsEmpty() }

// Get returns the state of a cell, positions outside the board are dead
func (b *Board) Get(x, y int) bool { return b.grid.Get(x, y) }

// CountLivingCells returns the number of living cells on the board
func (b *Board) CountLivingCells() int { return b.grid.CountLivingCells() }

// BaseName returns the stem snapshot files are named after
func (b *Board) BaseName() string { return b.baseName }

// OutputDir returns the absolute snapshot directory
func (b *Board) OutputDir() string { return b.outputDir }

// replace swaps the board grid, handing the old one back to the pool
func (b *Board) replace(next *Grid) {
	old := b.grid
	b.grid = next
	GridToPool(old, b.pool)
}

// Expand surrounds the board with a ring of dead cells, making room for the
// births of the next generation. It returns false, leaving the board as is,
// when the size cap is enabled and the board already exceeds it.
func (b *Board) Expand() bool {
	w, h := b.grid.width, b.grid.height
	if b.limitEnabled && w*h > b.maxCells {
		return false
	}

	if b.grid.IsEmpty() {
		b.replace(getGrid(b.pool, 1, 1))
		return true
	}

	next := getGrid(b.pool, w+2, h+2)
	next.CopyRegion(b.grid, 0, 0, 1, 1, w, h)
	b.replace(next)
	return true
}

// Shrink crops the board to the bounding box of its living cells
func (b *Board) Shrink() {
	bounds, ok := b.grid.Bounds()
	if !ok {
		b.grid.Reset(0, 0)
		return
	}

	w, h := bounds.Width(), bounds.Height()
	if w == b.grid.width && h == b.grid.height {
		return
	}

	next := getGrid(b.pool, w, h)
	next.CopyRegion(b.grid, bounds.MinX, bounds.MinY, 0, 0, w, h)
	b.replace(next)
}

// CountAliveNeighbours counts the living cells around (x, y). Any position is
// accepted, cells outside the board count as dead.
func (b *Board) CountAliveNeighbours(x, y int) int {
	return b.grid.CountNeighbors(x, y)
}

// advance computes the next generation into a fresh buffer
func (b *Board) advance() {
	cur := b.grid
	next := getGrid(b.pool, cur.width, cur.height)

	for y := range cur.height {
		for x := range cur.width {
			i := y*cur.width + x
			next.cells[i] = rules.ApplyConwayRules(cur.CountNeighbors(x, y), cur.cells[i])
		}
	}

	b.replace(next)
}

// Step expands the board, computes one generation and shrinks the result.
// It returns false when the board is capped and nothing was computed.
func (b *Board) Step() bool {
	if !b.Expand() {
		return false
	}
	b.advance()
	b.Shrink()
	return true
}

// SnapshotName returns the file name of the snapshot of generation i
func (b *Board) SnapshotName(i int) string {
	return fmt.Sprintf("%s_%d.txt", b.baseName, i)
}

// Iterate runs nIter generations. Generation 0 is the board as loaded. The
// final generation is always saved, every generation when saveAll is set.
// A failed save stops the run with ErrSaveFailed; an empty or capped board
// stops it early without error.
func (b *Board) Iterate(ctx context.Context, nIter int, saveAll bool) (StopReason, error) {
	b.recordStats(0)

	for i := 0; ; i++ {
		level.Info(b.logger).Log(
			"msg", "iteration",
			"iteration", i,
			"size", fmt.Sprintf("%d*%d", b.grid.width, b.grid.height),
		)

		if b.grid.IsEmpty() {
			level.Info(b.logger).Log("msg", "board is empty, stopping iteration")
			return StopEmpty, nil
		}

		if saveAll || i == nIter {
			if !b.Save(b.SnapshotName(i)) {
				level.Error(b.logger).Log("msg", "could not save file, aborting", "iteration", i)
				return StopAborted, ErrSaveFailed
			}
		}

		if i >= nIter {
			level.Info(b.logger).Log("msg", "iteration over")
			return StopCompleted, nil
		}

		if err := ctx.Err(); err != nil {
			level.Warn(b.logger).Log("msg", "iteration interrupted", "iteration", i, "err", err)
			return StopCanceled, err
		}

		if !b.Step() {
			level.Warn(b.logger).Log("msg", "board is too big, stopping iteration",
				"cells", b.grid.width*b.grid.height, "max_cells", b.maxCells)
			return StopCapped, nil
		}

		b.recordStats(i + 1)
	}
}

func (b *Board) recordStats(generation int) {
	if b.stats == nil {
		return
	}
	b.stats.Update(generation, b.grid.CountLivingCells(), b.grid.width*b.grid.height)
}

// String returns the board in the text format
func (b *Board) String() string {
	return Encode(b.grid, b.symbols)
}

// Save writes the board to the file name inside the output directory.
// I/O errors are logged and reported as false.
func (b *Board) Save(name string) bool {
	path := filepath.Join(b.outputDir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		level.Error(b.logger).Log("msg", "failed to write snapshot", "path", path, "err", err)
		return false
	}
	level.Debug(b.logger).Log("msg", "snapshot saved", "path", path)
	return true
}
