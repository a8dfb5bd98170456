package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Log exposes the package logger so the shell can configure level and
// formatting.
func Log() *logrus.Logger {
	return log
}

// BoardConfig carries everything needed to construct a Board. A Seed of
// zero means "seed from the wall clock".
type BoardConfig struct {
	Size     int
	NumMines int
	Seed     int64
}

// Board is the aggregate root of one game. Cells are stored row-major in
// cells[y][x]; row lengths vary with y, so the nested slices are ragged.
type Board struct {
	size     int
	numMines int
	cells    [][]Cell

	minesGenerated bool
	startTime      time.Time

	seed int64
	rand *rand.Rand
}

// NewBoard constructs a fresh board with all cells hidden and mine-free.
// Mines are not placed until the first reveal (see generateMines).
//
// Construction fails when the requested mine count leaves no mine-free
// tile; this is validated input in any sane shell, but it must stay a
// hard failure rather than a silent clamp.
func NewBoard(config BoardConfig) (*Board, error) {
	if config.NumMines > MaxMineCount(config.Size) {
		return nil, fmt.Errorf(
			"invalid mine count: a field of size %d has %d tiles, but %d mines were requested; "+
				"at least one tile must be left blank for the game to be winnable",
			config.Size, TotalTileCount(config.Size), config.NumMines,
		)
	}
	if config.NumMines < 0 {
		return nil, fmt.Errorf("invalid mine count: %d", config.NumMines)
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	board := &Board{
		size:      config.Size,
		numMines:  config.NumMines,
		cells:     make([][]Cell, RowCount(config.Size)),
		startTime: time.Now(),
		seed:      config.Seed,
		rand:      rand.New(rand.NewSource(config.Seed)),
	}
	for y := range board.cells {
		board.cells[y] = make([]Cell, CellsInRow(board.size, y))
	}
	return board, nil
}

// Restart discards the current game and rebinds the board to a freshly
// constructed one. Zero arguments keep the previous size/mine count. The
// next game's seed is drawn from the current rand, so a seeded session
// stays reproducible across games.
func (board *Board) Restart(size, numMines int) error {
	if size == 0 {
		size = board.size
	}
	if numMines == 0 {
		numMines = board.numMines
	}

	fresh, err := NewBoard(BoardConfig{
		Size:     size,
		NumMines: numMines,
		Seed:     board.rand.Int63(),
	})
	if err != nil {
		return err
	}

	*board = *fresh
	return nil
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) MinesGenerated() bool {
	return board.minesGenerated
}

// Seed returns the seed this board's mine placement was (or will be)
// drawn from.
func (board *Board) Seed() int64 {
	return board.seed
}

// Rand exposes the board's random source, so directors can break ties
// reproducibly.
func (board *Board) Rand() *rand.Rand {
	return board.rand
}

// CellAt returns the cell at (x, y), or nil for positions off the board.
func (board *Board) CellAt(x, y int) *Cell {
	if !board.HasTile(x, y) {
		return nil
	}
	return &board.cells[y][x]
}

func (board *Board) cellAt(pos Position) *Cell {
	return &board.cells[pos.Y][pos.X]
}

// TotalFlagCount returns the number of flags currently placed.
func (board *Board) TotalFlagCount() int {
	count := 0
	for _, pos := range board.AllPositions() {
		if board.cellAt(pos).HasFlag() {
			count++
		}
	}
	return count
}

// FlagLimitReached reports whether the player has placed as many flags
// as there are mines. The limit assumes flags are placed correctly; it
// does not verify them.
func (board *Board) FlagLimitReached() bool {
	return board.TotalFlagCount() >= board.numMines
}

// generateMines lazily places the board's mines, excluding the position
// of the triggering click so the first reveal is never a loss. It is a
// no-op once mines exist. The elapsed-time clock starts here, not at
// construction.
func (board *Board) generateMines(excluded Position) {
	if board.minesGenerated {
		return
	}

	candidates := make([]Position, 0, TotalTileCount(board.size)-1)
	for _, pos := range board.AllPositions() {
		if pos != excluded {
			candidates = append(candidates, pos)
		}
	}

	if board.numMines > len(candidates) {
		// Unreachable: NewBoard guarantees numMines <= tiles-1.
		log.Panicf("mine generation needs %d tiles but only %d are available",
			board.numMines, len(candidates))
	}

	board.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, pos := range candidates[:board.numMines] {
		board.cellAt(pos).SetMine()
	}

	board.minesGenerated = true
	board.startTime = time.Now()

	log.WithFields(logrus.Fields{
		"size":     board.size,
		"mines":    board.numMines,
		"seed":     board.seed,
		"excluded": excluded,
	}).Debug("mines generated")
}

// revealAll uncovers every unflagged cell. Flags are left in place so
// the shell can still show which were right and wrong.
func (board *Board) revealAll() {
	for _, pos := range board.AllPositions() {
		if cell := board.cellAt(pos); !cell.HasFlag() {
			cell.Reveal()
		}
	}
}
