package shogi

// IsInCheck reports whether player's king could be captured by the
// opponent's next move. False if the king is missing from the board.
func IsInCheck(player Player, board *Board) bool {
	kingPos, found := board.Find(Piece{Owner: player, Sort: King})
	if !found {
		return false
	}
	opponent := player.Opponent()

	for y := int8(0); y < BoardSize; y++ {
		for x := int8(0); x < BoardSize; x++ {
			from := BoardPos{X: x, Y: y}
			tile := board.Get(from)
			if tile == nil || tile.Owner != opponent {
				continue
			}
			for _, movement := range GenerateMotions(from, board, false) {
				dest, ok := from.ApplyMotion(movement.Motion)
				if ok && dest == kingPos {
					return true
				}
			}
		}
	}
	return false
}

// IsInCheckmate reports whether player is in check and has no legal
// move, basic or drop, that relieves it.
func IsInCheckmate(player Player, board *Board) bool {
	if !IsInCheck(player, board) {
		return false
	}
	valid := MovesFor(player, board, true)
	return valid.Total() == 0
}
