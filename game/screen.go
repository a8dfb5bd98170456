package game

import (
	"math"

	"github.com/faiface/pixel"
)

// ToScreen maps a grid position to the pixel-space center of its
// hexagon. The apothem is the distance from a hexagon's center to the
// midpoint of an edge, i.e. half a tile's width.
//
// Rows shorter than the center row are shifted right by one apothem per
// missing tile, which is what renders the grid as a hexagon rather than
// a rectangle. Vertically, consecutive rows overlap: centers sit
// 3/sqrt(3) apothems apart, measured via the center-to-vertex distance
// apothem/sqrt(3).
func (board *Board) ToScreen(pos Position, apothem float64) pixel.Vec {
	rowLen := CellsInRow(board.size, pos.Y)
	maxRowLen := board.RowCount()

	screenX := apothem * float64(maxRowLen-rowLen+2*pos.X+1)
	screenY := float64(3*pos.Y+2) * (apothem / math.Sqrt(3))
	return pixel.V(screenX, screenY)
}

// FromScreen is the algebraic inverse of ToScreen: it recovers the grid
// position whose hexagon center is nearest the given point. It performs
// no bounds checking — clicks outside the board map to positions with no
// tile, and validating them is the caller's job.
func (board *Board) FromScreen(screen pixel.Vec, apothem float64) Position {
	centerToVertex := apothem / math.Sqrt(3)
	y := int(math.Round((screen.Y/centerToVertex - 2) / 3))

	rowLen := CellsInRow(board.size, y)
	maxRowLen := board.RowCount()

	x := int(math.Round((screen.X/apothem - float64(maxRowLen-rowLen+1)) / 2))
	return Position{x, y}
}
