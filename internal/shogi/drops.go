package shogi

// PossibleDropsOf returns every square piece (a demoted, non-king
// piece) may legally be dropped on.
func PossibleDropsOf(piece Piece, board *Board, testCheck bool) []BoardPos {
	if piece.Sort == Pawn {
		return possiblePawnDrops(piece, board, testCheck)
	}
	return possibleGeneralDrops(piece, board, testCheck)
}

// possibleGeneralDrops implements the non-pawn case: any empty square
// whose rank would not immediately strand the piece, filtered by
// self-check when testCheck is requested.
func possibleGeneralDrops(piece Piece, board *Board, testCheck bool) []BoardPos {
	var out []BoardPos
	for y := int8(0); y < BoardSize; y++ {
		if MustPromoteAtRank(piece, y) {
			continue
		}
		for x := int8(0); x < BoardSize; x++ {
			pos := BoardPos{X: x, Y: y}
			if board.Get(pos) != nil {
				continue
			}
			drop := DropMove{Pos: pos, Piece: piece}
			if testCheck && dropLeavesInCheck(board, piece.Owner, drop) {
				continue
			}
			out = append(out, pos)
		}
	}
	return out
}

// possiblePawnDrops adds nifu (no second un-promoted pawn on a file)
// and uchi-fu-zume (no drop that immediately checkmates) on top of the
// general rank restriction.
func possiblePawnDrops(piece Piece, board *Board, testCheck bool) []BoardPos {
	player := piece.Owner
	var out []BoardPos
	for x := int8(0); x < BoardSize; x++ {
		if board.FileHasPawnFor(x, player) {
			continue
		}
		for y := int8(0); y < BoardSize; y++ {
			if MustPromoteAtRank(piece, y) {
				continue
			}
			pos := BoardPos{X: x, Y: y}
			if board.Get(pos) != nil {
				continue
			}
			drop := DropMove{Pos: pos, Piece: piece}
			if testCheck && dropLeavesInCheck(board, player, drop) {
				continue
			}
			sim := board.Clone()
			sim.ApplyMoveDrop(drop)
			if IsInCheckmate(player.Opponent(), sim) {
				continue
			}
			out = append(out, pos)
		}
	}
	return out
}

func dropLeavesInCheck(board *Board, player Player, drop DropMove) bool {
	sim := board.Clone()
	sim.ApplyMoveDrop(drop)
	return IsInCheck(player, sim)
}
