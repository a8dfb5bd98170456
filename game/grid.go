package game

import "fmt"

// Position addresses one hexagon on the board. Rows are counted from the
// top; x always starts at 0 at the left edge of its row, so the highest
// valid x depends on y.
//
// y/x layout for size = 3:
//
//	  0 1 2
//	 0 1 2 3
//	0 1 2 3 4
//	 0 1 2 3
//	  0 1 2
type Position struct {
	X, Y int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

// RowCount returns the number of rows in a hexagonal grid of the given
// size, where size is the number of tiles in the topmost row. A size of
// zero yields a degenerate grid with no rows.
func RowCount(size int) int {
	return max(0, 2*size-1)
}

// CellsInRow returns the number of tiles in row y. The formula is defined
// for any y, including rows outside the grid; bounds checking is the
// caller's job (see Board.HasTile).
func CellsInRow(size, y int) int {
	return size + min(y, 2*size-2-y)
}

// TotalTileCount returns the number of tiles in a grid of the given size.
func TotalTileCount(size int) int {
	if size < 1 {
		return 0
	}
	return 3*size*size - 3*size + 1
}

// MaxMineCount returns the highest playable mine count for a grid of the
// given size: one less than the tile count, so at least one tile is
// always mine-free.
func MaxMineCount(size int) int {
	if size < 1 {
		return 0
	}
	return TotalTileCount(size) - 1
}

// HasTile reports whether (x, y) addresses a tile on this board. Used to
// validate every position that comes in from screen space.
func (board *Board) HasTile(x, y int) bool {
	return 0 <= y && y < board.RowCount() &&
		0 <= x && x < CellsInRow(board.size, y)
}

func (board *Board) RowCount() int {
	return RowCount(board.size)
}

// AllPositions returns every valid position, row-major from the top row.
func (board *Board) AllPositions() []Position {
	positions := make([]Position, 0, TotalTileCount(board.size))
	for y := 0; y < board.RowCount(); y++ {
		for x := 0; x < CellsInRow(board.size, y); x++ {
			positions = append(positions, Position{x, y})
		}
	}
	return positions
}
