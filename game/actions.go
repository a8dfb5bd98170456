package game

import (
	"fmt"

	"github.com/faiface/pixel"
)

// PrimaryAction handles the primary (usually left) click at a screen
// coordinate. Clicks off the board and clicks on flagged cells are
// swallowed silently; flags exist to prevent exactly this kind of
// accidental reveal.
//
// The first successful reveal of a game triggers mine generation with
// the clicked tile excluded, so the first click never loses.
func (board *Board) PrimaryAction(screen pixel.Vec, apothem float64, ui Frontend) {
	pos := board.FromScreen(screen, apothem)
	if !board.HasTile(pos.X, pos.Y) {
		return
	}
	cell := board.cellAt(pos)
	if cell.HasFlag() {
		return
	}

	board.generateMines(pos)
	cell.Reveal()

	if board.AdjacentMineCount(pos) == 0 {
		board.revealCascade(pos)
	}

	board.checkGameOver(ui)
}

// SecondaryAction handles the secondary (usually right) click at a
// screen coordinate: it toggles the flag on a hidden cell. Clicks off
// the board and on revealed cells are swallowed silently. Placing a flag
// beyond the flag limit is refused with an advisory instead — the limit
// equals the mine count, so hitting it with hidden mines left means some
// flag is wrong.
func (board *Board) SecondaryAction(screen pixel.Vec, apothem float64, ui Frontend) {
	pos := board.FromScreen(screen, apothem)
	if !board.HasTile(pos.X, pos.Y) {
		return
	}
	cell := board.cellAt(pos)
	if !cell.CanToggleFlag() {
		return
	}

	if !cell.HasFlag() {
		if board.FlagLimitReached() {
			ui.Notify(alertTitle, fmt.Sprintf(
				"You've reached the flag limit of %d.\n"+
					"This means that at least one of your flags is incorrectly placed.\n"+
					"Removing any incorrect flags and revealing those tiles will "+
					"allow you to win the game.",
				board.numMines))
			return
		}
		cell.SetFlag()
	} else {
		cell.UnsetFlag()
	}

	board.checkGameOver(ui)
}
