package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"hexsweep/game"
)

// apothem used when translating typed grid coordinates into the
// screen-space click handlers.
const apothem = 16

// shell is the terminal rendering shell. It implements game.Frontend and
// drives the board exclusively through its exposed operations.
type shell struct {
	board       *game.Board
	out         io.Writer
	snapshotDir string

	wins, losses int
}

func newShell(board *game.Board, out io.Writer, snapshotDir string) *shell {
	return &shell{
		board:       board,
		out:         out,
		snapshotDir: snapshotDir,
	}
}

func (sh *shell) Redraw() {
	var render strings.Builder
	maxRowLen := sh.board.RowCount()

	for y := 0; y < maxRowLen; y++ {
		rowLen := game.CellsInRow(sh.board.Size(), y)
		render.WriteString(strings.Repeat(" ", maxRowLen-rowLen))
		for x := 0; x < rowLen; x++ {
			render.WriteString(sh.glyph(game.Position{X: x, Y: y}))
			render.WriteString(" ")
		}
		render.WriteString("\n")
	}

	fmt.Fprintf(sh.out, "\n%sflags: %d/%d\n",
		render.String(), sh.board.TotalFlagCount(), sh.board.NumMines())
}

func (sh *shell) glyph(pos game.Position) string {
	cell := sh.board.CellAt(pos.X, pos.Y)
	switch {
	case cell.HasFlag():
		return "F"
	case !cell.IsRevealed():
		return "#"
	case cell.HasMine():
		return "*"
	default:
		if n := sh.board.AdjacentMineCount(pos); n > 0 {
			return strconv.Itoa(n)
		}
		return "."
	}
}

func (sh *shell) Notify(title, message string) {
	fmt.Fprintf(sh.out, "%s: %s\n", title, strings.ReplaceAll(message, "\n", " "))

	// Terminal notifications arrive after the full-board reveal and
	// before the restart, so this is the moment to snapshot.
	switch {
	case strings.HasPrefix(message, "Congratulations"):
		sh.wins++
		sh.saveSnapshot("win")
	case strings.HasPrefix(message, "Game over"):
		sh.losses++
		sh.saveSnapshot("loss")
	}
}

func (sh *shell) saveSnapshot(result string) {
	if sh.snapshotDir == "" {
		return
	}

	stat, err := os.Stat(sh.snapshotDir)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintln(sh.out, err)
			return
		}
		if err := os.MkdirAll(sh.snapshotDir, 0777); err != nil {
			fmt.Fprintln(sh.out, err)
			return
		}
	} else if !stat.IsDir() {
		fmt.Fprintf(sh.out, "%s is not a directory; cannot save snapshots to it.\n", sh.snapshotDir)
		return
	}

	filename := time.Now().Format("20060102_150405_") + result + ".yaml"
	path := strings.Join([]string{sh.snapshotDir, filename}, string(os.PathSeparator))

	if err := os.WriteFile(path, []byte(sh.board.Snapshot().Serialize()), 0666); err != nil {
		fmt.Fprintln(sh.out, err)
	}
}

// playInteractive reads commands from in until quit or EOF. Coordinates
// are grid coordinates; out-of-board positions are silently ignored,
// exactly like a stray click.
func (sh *shell) playInteractive(in io.Reader) error {
	sh.Redraw()
	fmt.Fprintln(sh.out, `commands: r <x> <y> (reveal), f <x> <y> (toggle flag), q (quit)`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "r", "f":
			if len(fields) != 3 {
				fmt.Fprintln(sh.out, "usage: r <x> <y>  |  f <x> <y>")
				continue
			}
			x, errX := strconv.Atoi(fields[1])
			y, errY := strconv.Atoi(fields[2])
			if errX != nil || errY != nil {
				fmt.Fprintln(sh.out, "coordinates must be integers")
				continue
			}

			screen := sh.board.ToScreen(game.Position{X: x, Y: y}, apothem)
			if fields[0] == "r" {
				sh.board.PrimaryAction(screen, apothem, sh)
			} else {
				sh.board.SecondaryAction(screen, apothem, sh)
			}
		default:
			fmt.Fprintf(sh.out, "unknown command %q\n", fields[0])
		}
	}
}

// autoplay lets a director play until the requested number of games has
// finished. The board restarts itself after each game, so the director
// simply keeps acting.
func (sh *shell) autoplay(director game.Director, games int) error {
	director.Init(sh.board, sh)
	defer director.End()

	for sh.wins+sh.losses < games {
		if !director.Act() {
			break
		}
	}

	fmt.Fprintf(sh.out, "won %d, lost %d\n", sh.wins, sh.losses)
	return nil
}
