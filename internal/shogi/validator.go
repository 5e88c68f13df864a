package shogi

// Basics maps each of the mover's occupied tiles to the movements
// available from it.
type Basics map[BoardPos][]Movement

// Drops maps each droppable piece (demoted sort plus owner) to the
// squares it may be dropped on.
type Drops map[Piece][]BoardPos

// Valid is the full set of legal moves available to a player.
type Valid struct {
	Basics Basics
	Drops  Drops
}

// Total counts every concrete move Valid represents: each Movement
// with CanPromoteOpt counts twice (promote or not), MustPromote and
// CannotPromote count once, and each drop destination counts once.
func (v Valid) Total() int {
	total := 0
	for _, movements := range v.Basics {
		for _, m := range movements {
			if m.Promotion == CanPromoteOpt {
				total += 2
			} else {
				total++
			}
		}
	}
	for _, dests := range v.Drops {
		total += len(dests)
	}
	return total
}

// MovesBasicFor iterates every tile owned by player and collects the
// movements available from each non-empty one.
func MovesBasicFor(player Player, board *Board, testCheck bool) Basics {
	basics := make(Basics)
	for y := int8(0); y < BoardSize; y++ {
		for x := int8(0); x < BoardSize; x++ {
			pos := BoardPos{X: x, Y: y}
			tile := board.Get(pos)
			if tile == nil || tile.Owner != player {
				continue
			}
			if moves := GenerateMotions(pos, board, testCheck); len(moves) > 0 {
				basics[pos] = moves
			}
		}
	}
	return basics
}

// MovesDropFor collects drop destinations for every sort player holds
// in hand. If testCheck is true but player is not currently in check,
// the expensive self-check test is skipped: a drop only adds a piece
// to the board, so it can never newly expose the mover's own king —
// it can only ever block an existing attack, never create one.
func MovesDropFor(player Player, board *Board, testCheck bool) Drops {
	drops := make(Drops)
	hand := board.HandOf(player)
	dropTestCheck := testCheck && IsInCheck(player, board)
	for _, sort := range DroppableSorts {
		if hand.Count(sort) == 0 {
			continue
		}
		piece := Piece{Owner: player, Sort: sort}
		if dests := PossibleDropsOf(piece, board, dropTestCheck); len(dests) > 0 {
			drops[piece] = dests
		}
	}
	return drops
}

// MovesFor returns every legal move available to player.
func MovesFor(player Player, board *Board, testCheck bool) Valid {
	return Valid{
		Basics: MovesBasicFor(player, board, testCheck),
		Drops:  MovesDropFor(player, board, testCheck),
	}
}

// IsValid reports whether move is legal for whichever player owns the
// moving piece, on board. It does not consult move's Promoted flag
// except to enforce mandatory promotion: a Basic move whose shape is
// must_promote but carries Promoted=false is invalid.
func IsValid(move Move, board *Board) bool {
	switch move.Kind {
	case MoveBasic:
		piece := board.Get(move.Basic.From)
		if piece == nil {
			return false
		}
		for _, m := range GenerateMotions(move.Basic.From, board, true) {
			if m.Motion != move.Basic.Motion {
				continue
			}
			if m.Promotion == MustPromote && !move.Basic.Promoted {
				return false
			}
			return true
		}
		return false
	case MoveDrop:
		player := move.Drop.Piece.Owner
		if board.HandOf(player).Count(move.Drop.Piece.Sort) == 0 {
			return false
		}
		for _, pos := range PossibleDropsOf(move.Drop.Piece, board, true) {
			if pos == move.Drop.Pos {
				return true
			}
		}
		return false
	default:
		return false
	}
}
