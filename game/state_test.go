package game

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGameDuration(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{1500 * time.Millisecond, "1.500 seconds"},
		{30*time.Second + 500*time.Millisecond, "30.500 seconds"},
		{59*time.Second + 999*time.Millisecond, "59.999 seconds"},
		{60 * time.Second, "1 minute and 0.000 seconds"},
		{75*time.Second + 250*time.Millisecond, "1 minute and 15.250 seconds"},
		{125 * time.Second, "2 minutes and 5.000 seconds"},
		{10*time.Minute + 3*time.Second, "10 minutes and 3.000 seconds"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatGameDuration(c.elapsed))
	}
}

func TestCheckGameOverBeforeMines(t *testing.T) {
	board, err := NewBoard(BoardConfig{Size: 3, NumMines: 5})
	require.NoError(t, err)

	ui := &recordingFrontend{}
	assert.Equal(t, Ongoing, board.checkGameOver(ui))
	assert.Equal(t, 1, ui.redraws)
	assert.Empty(t, ui.notifications)
}

func TestCheckGameOverOngoing(t *testing.T) {
	board, err := NewBoard(BoardConfig{Size: 3, NumMines: 5, Seed: 3})
	require.NoError(t, err)
	board.generateMines(Position{0, 0})
	board.cellAt(Position{0, 0}).Reveal()

	ui := &recordingFrontend{}
	assert.Equal(t, Ongoing, board.checkGameOver(ui))
	assert.Equal(t, 1, ui.redraws)
	assert.Empty(t, ui.notifications)
	assert.True(t, board.MinesGenerated(), "an ongoing game must not restart")
}

func TestCheckGameOverLoss(t *testing.T) {
	board, err := NewBoard(BoardConfig{Size: 3, NumMines: 5, Seed: 3})
	require.NoError(t, err)
	board.generateMines(Position{0, 0})
	// The excluded tile is guaranteed safe; flag it.
	board.cellAt(Position{0, 0}).SetFlag()

	// Step on a mine.
	var mined Position
	for _, pos := range board.AllPositions() {
		if board.cellAt(pos).HasMine() {
			mined = pos
			break
		}
	}
	board.cellAt(mined).Reveal()

	var atNotify string
	ui := &recordingFrontend{
		onNotify: func() {
			atNotify = board.Snapshot().SerializedBoard
		},
	}
	assert.Equal(t, Lost, board.checkGameOver(ui))

	require.Len(t, ui.notifications, 1)
	assert.Contains(t, ui.notifications[0], "Game over")

	// At notification time everything unflagged was revealed: no hidden
	// safe tiles, no hidden mines, flags untouched.
	assert.NotContains(t, atNotify, "#")
	assert.NotContains(t, atNotify, "O")
	assert.Equal(t, 1, strings.Count(atNotify, "f"))

	// The board restarted itself with the same parameters.
	assert.Equal(t, 3, board.Size())
	assert.Equal(t, 5, board.NumMines())
	assert.False(t, board.MinesGenerated())
	assert.Equal(t, 0, board.TotalFlagCount())
}

func TestCheckGameOverWin(t *testing.T) {
	board, err := NewBoard(BoardConfig{Size: 3, NumMines: 5, Seed: 3})
	require.NoError(t, err)
	board.generateMines(Position{0, 0})

	for _, pos := range board.AllPositions() {
		if !board.cellAt(pos).HasMine() {
			board.cellAt(pos).Reveal()
		}
	}

	var atNotify string
	ui := &recordingFrontend{
		onNotify: func() {
			atNotify = board.Snapshot().SerializedBoard
		},
	}
	assert.Equal(t, Won, board.checkGameOver(ui))

	require.Len(t, ui.notifications, 1)
	assert.Contains(t, ui.notifications[0], "Congratulations!")
	assert.Contains(t, ui.notifications[0], "You won the game in")
	assert.Contains(t, ui.notifications[0], "seconds")

	// The bulk reveal uncovered the mines too.
	assert.NotContains(t, atNotify, "#")
	assert.NotContains(t, atNotify, "O")
	assert.Equal(t, 5, strings.Count(atNotify, "*"))

	assert.False(t, board.MinesGenerated())
	assert.Equal(t, 3, board.Size())
	assert.Equal(t, 5, board.NumMines())
}

func TestWinIgnoresFlagPlacement(t *testing.T) {
	// A win only needs every safe tile revealed; flags on safe tiles are
	// irrelevant... but an unrevealed flagged safe tile still blocks it.
	board, err := NewBoard(BoardConfig{Size: 2, NumMines: 2, Seed: 9})
	require.NoError(t, err)
	board.generateMines(Position{0, 0})

	var flagged Position
	for _, pos := range board.AllPositions() {
		if !board.cellAt(pos).HasMine() {
			flagged = pos
			break
		}
	}
	board.cellAt(flagged).SetFlag()

	for _, pos := range board.AllPositions() {
		cell := board.cellAt(pos)
		if !cell.HasMine() && pos != flagged {
			cell.Reveal()
		}
	}

	ui := &recordingFrontend{}
	assert.Equal(t, Ongoing, board.checkGameOver(ui))

	board.cellAt(flagged).Reveal()
	assert.Equal(t, Won, board.checkGameOver(ui))
}
