package game

// Cell is one hexagon's state. Cells are owned by their Board and carry
// no position of their own; the board's grid index is the identity.
type Cell struct {
	hasMine  bool
	revealed bool
	flagged  bool
}

func (cell *Cell) HasMine() bool {
	return cell.hasMine
}

// SetMine turns the cell into a mine. There is no way back; mines are
// only placed during the single generation event.
func (cell *Cell) SetMine() {
	cell.hasMine = true
}

func (cell *Cell) IsRevealed() bool {
	return cell.revealed
}

// Reveal uncovers the cell. Revealing is monotonic: revealing an already
// revealed cell is a no-op.
func (cell *Cell) Reveal() {
	cell.revealed = true
}

func (cell *Cell) HasFlag() bool {
	return cell.flagged
}

func (cell *Cell) SetFlag() {
	cell.flagged = true
}

func (cell *Cell) UnsetFlag() {
	cell.flagged = false
}

// CanToggleFlag reports whether the cell's flag may still be changed.
// Flags only make sense on hidden cells.
func (cell *Cell) CanToggleFlag() bool {
	return !cell.revealed
}

func (cell *Cell) serialize() string {
	switch {
	case cell.hasMine:
		switch {
		case cell.revealed:
			return "*"
		case cell.flagged:
			return "F"
		default:
			return "O"
		}
	case cell.flagged:
		return "f"
	case cell.revealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c string) bool {
	switch c {
	case "*":
		cell.hasMine = true
		cell.revealed = true
	case "F":
		cell.hasMine = true
		cell.flagged = true
	case "O":
		cell.hasMine = true
	case "f":
		cell.flagged = true
	case ".":
		cell.revealed = true
	case "#":
	default:
		return false
	}
	return true
}
