package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexsweep/game"
)

type recordingFrontend struct {
	notifications []string
}

func (ui *recordingFrontend) Redraw() {}

func (ui *recordingFrontend) Notify(title, message string) {
	ui.notifications = append(ui.notifications, message)
}

func TestActProbesSomewhere(t *testing.T) {
	board, err := game.NewBoard(game.BoardConfig{Size: 4, NumMines: 10, Seed: 3})
	require.NoError(t, err)

	director := &Director{}
	director.Init(board, &recordingFrontend{})
	defer director.End()

	require.True(t, director.Act())
	assert.True(t, board.MinesGenerated())
}

func TestActOnMaxMineBoardWinsImmediately(t *testing.T) {
	// With mines == tiles-1, wherever the first probe lands is the one
	// safe tile and the game is won on the spot.
	board, err := game.NewBoard(game.BoardConfig{Size: 3, NumMines: 18, Seed: 3})
	require.NoError(t, err)

	ui := &recordingFrontend{}
	director := &Director{}
	director.Init(board, ui)
	defer director.End()

	require.True(t, director.Act())
	require.Len(t, ui.notifications, 1)
	assert.Contains(t, ui.notifications[0], "Congratulations")
}
