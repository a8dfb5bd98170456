package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a record of a board's layout, one glyph per cell:
//
//	*  revealed mine    F  flagged mine    O  hidden mine
//	f  misplaced flag   .  revealed        #  hidden
//
// The shell writes one out for every finished game; tests use them to
// build deterministic boards. Size and mine count are implicit in the
// grid itself.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.RowCount())
	for y := range rows {
		var row strings.Builder
		for x := 0; x < CellsInRow(board.size, y); x++ {
			row.WriteString(board.cells[y][x].serialize())
		}
		rows[y] = row.String()
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CreateBoard rebuilds a playable board from the snapshot. The grid's
// shape dictates the size; mines are taken from the glyphs rather than
// regenerated, so the board is marked as already generated.
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(snapshot.SerializedBoard, "\n")
	size := (len(rows) + 1) / 2
	if RowCount(size) != len(rows) {
		return nil, fmt.Errorf("snapshot has %d rows, which is not a hexagonal grid", len(rows))
	}

	numMines := strings.Count(snapshot.SerializedBoard, "*") +
		strings.Count(snapshot.SerializedBoard, "F") +
		strings.Count(snapshot.SerializedBoard, "O")

	board, err := NewBoard(BoardConfig{
		Size:     size,
		NumMines: numMines,
		Seed:     snapshot.Seed,
	})
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != CellsInRow(size, y) {
			return nil, fmt.Errorf("snapshot row %d has %d cells, want %d",
				y, len(row), CellsInRow(size, y))
		}
		for x, c := range row {
			if !board.cells[y][x].deserialize(string(c)) {
				return nil, fmt.Errorf("unknown cell glyph %q at (%d, %d)", c, x, y)
			}
		}
	}

	board.minesGenerated = numMines > 0
	return board, nil
}
