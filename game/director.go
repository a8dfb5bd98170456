package game

// Director is a computer player. Implementations act synchronously: each
// Act performs at most one player action against the board through its
// public handlers, and returns false once no action is available.
type Director interface {
	Init(board *Board, ui Frontend)

	// Act performs a single action.
	Act() bool

	// End releases anything the director holds.
	End()
}
