package game

// AdjacentPositions returns the valid positions adjacent to pos, at most
// six. The four straight candidates are always tried; the two diagonal
// candidates depend on where the row sits relative to the center row
// (y = size-1), because x coordinates "bend" there:
//
//	above center: (x+1, y+1), (x-1, y-1)
//	center row:   (x-1, y+1), (x-1, y-1)
//	below center: (x+1, y-1), (x-1, y+1)
//
// Candidates off the board are filtered out, so edge and corner tiles
// return fewer neighbors.
func (board *Board) AdjacentPositions(pos Position) []Position {
	candidates := [6]Position{
		{pos.X, pos.Y + 1},
		{pos.X, pos.Y - 1},
		{pos.X + 1, pos.Y},
		{pos.X - 1, pos.Y},
	}

	center := board.size - 1
	switch {
	case pos.Y < center:
		candidates[4] = Position{pos.X + 1, pos.Y + 1}
		candidates[5] = Position{pos.X - 1, pos.Y - 1}
	case pos.Y == center:
		candidates[4] = Position{pos.X - 1, pos.Y + 1}
		candidates[5] = Position{pos.X - 1, pos.Y - 1}
	default:
		candidates[4] = Position{pos.X + 1, pos.Y - 1}
		candidates[5] = Position{pos.X - 1, pos.Y + 1}
	}

	adjacent := make([]Position, 0, len(candidates))
	for _, candidate := range candidates {
		if board.HasTile(candidate.X, candidate.Y) {
			adjacent = append(adjacent, candidate)
		}
	}
	return adjacent
}

// AdjacentMineCount returns how many of pos's neighbors hold a mine,
// 0 through 6. Counts are computed on demand; nothing is cached.
func (board *Board) AdjacentMineCount(pos Position) int {
	count := 0
	for _, adjacent := range board.AdjacentPositions(pos) {
		if board.cellAt(adjacent).HasMine() {
			count++
		}
	}
	return count
}
