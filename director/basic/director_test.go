package basic

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

func boardFromLayout(t *testing.T, layout string) *game.Board {
	t.Helper()
	board, err := (&game.BoardSnapshot{Seed: 1, SerializedBoard: layout}).CreateBoard()
	require.NoError(t, err)
	return board
}

func TestActFlagsCertainMine(t *testing.T) {
	// Size-2 board, one hidden mine in the top-left corner, everything
	// else already revealed. (1, 0) sees exactly one hidden neighbor and
	// one adjacent mine, so the director must flag the corner — which
	// also finishes the game.
	board := boardFromLayout(t, "O.\n...\n..")

	ui := &recordingFrontend{}
	director := &Director{}
	director.Init(board, ui)
	defer director.End()

	require.True(t, director.Act())
	require.Len(t, ui.notifications, 1)
	assert.Contains(t, ui.notifications[0], "Congratulations")
}

func TestActClicksSafeTile(t *testing.T) {
	// The only mine is flagged; (1, 1) has its one mine accounted for
	// and exactly one other hidden neighbor, (0, 1), which is therefore
	// safe. Probing it uncovers the last safe tile, so a win (and not a
	// loss) proves the director picked correctly.
	board := boardFromLayout(t, "F.\n#..\n..")

	ui := &recordingFrontend{}
	director := &Director{}
	director.Init(board, ui)
	defer director.End()

	require.True(t, director.Act())
	require.Len(t, ui.notifications, 1)
	assert.Contains(t, ui.notifications[0], "Congratulations")
}

func TestActFallsBackToRandom(t *testing.T) {
	// Nothing revealed yet: no deliberate action exists, so the director
	// probes somewhere.
	board, err := game.NewBoard(game.BoardConfig{Size: 3, NumMines: 5, Seed: 2})
	require.NoError(t, err)

	ui := &recordingFrontend{}
	director := &Director{}
	director.Init(board, ui)
	defer director.End()

	require.True(t, director.Act())
	assert.True(t, board.MinesGenerated(), "a probe must have triggered generation")
}
