package game

import (
	"fmt"
	"time"
)

type BoardState int

const (
	Lost BoardState = iota
	Won
	Ongoing
)

// Frontend is the narrow surface the rules engine needs from whatever is
// rendering the game. The engine never holds a Frontend beyond the
// action call it was passed into.
type Frontend interface {
	// Redraw asks the shell to re-render the board. It fires after every
	// action, including ones that changed nothing visible.
	Redraw()
	// Notify shows the player a message (end-of-game announcements, the
	// flag-limit advisory).
	Notify(title, message string)
}

const alertTitle = "Minesweeper"

// checkGameOver classifies the board after a player action and handles
// terminal states. The checks run in fixed priority order:
//
//  1. no mines generated yet  -> Ongoing (nothing to evaluate)
//  2. no safe tile left hidden -> Won
//  3. any mine revealed        -> Lost
//  4. otherwise                -> Ongoing
//
// A terminal state reveals every unflagged cell, announces the result,
// and restarts the board with the same size and mine count. Every branch
// finishes with a redraw so the shell always re-renders.
func (board *Board) checkGameOver(ui Frontend) BoardState {
	if !board.minesGenerated {
		ui.Redraw()
		return Ongoing
	}

	safeHidden := 0
	mineRevealed := false
	for _, pos := range board.AllPositions() {
		cell := board.cellAt(pos)
		switch {
		case !cell.HasMine() && !cell.IsRevealed():
			safeHidden++
		case cell.HasMine() && cell.IsRevealed():
			mineRevealed = true
		}
	}

	if safeHidden == 0 {
		elapsed := time.Since(board.startTime)
		board.revealAll()
		ui.Redraw()

		log.WithField("duration", elapsed).Info("game won")
		ui.Notify(alertTitle, fmt.Sprintf(
			"Congratulations!\nYou won the game in %s.", formatGameDuration(elapsed)))

		board.mustRestart()
		ui.Redraw()
		return Won
	}

	if mineRevealed {
		board.revealAll()
		ui.Redraw()

		log.Info("game lost")
		ui.Notify(alertTitle, "Game over.\nTry again!")

		board.mustRestart()
		ui.Redraw()
		return Lost
	}

	ui.Redraw()
	return Ongoing
}

// mustRestart restarts with the previous parameters, which have already
// been validated once; a failure here is an internal-consistency bug.
func (board *Board) mustRestart() {
	if err := board.Restart(0, 0); err != nil {
		log.Panicf("restart with previous parameters failed: %v", err)
	}
}

// formatGameDuration renders an elapsed play time the way the win
// message wants it: bare seconds under a minute, spelled-out minutes
// beyond, with milliseconds kept either way.
func formatGameDuration(elapsed time.Duration) string {
	mins := int(elapsed.Minutes())
	secs := elapsed.Seconds() - float64(60*mins)
	switch mins {
	case 0:
		return fmt.Sprintf("%.3f seconds", secs)
	case 1:
		return fmt.Sprintf("1 minute and %.3f seconds", secs)
	default:
		return fmt.Sprintf("%d minutes and %.3f seconds", mins, secs)
	}
}
