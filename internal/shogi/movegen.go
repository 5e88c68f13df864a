package shogi

// Movement is a candidate motion for a piece together with the
// promotion choice it permits: the shape of a move plus whether
// promoting is mandatory, optional, or forbidden.
type Movement struct {
	Motion    Motion
	Promotion PromoteAbility
}

// symmetric reports whether sort never needs its move table flipped for
// White: its shape is unchanged by reflecting the board vertically.
func symmetric(sort PieceSort) bool {
	switch sort {
	case King, Rook, Bishop, PromotedRook, PromotedBishop:
		return true
	default:
		return false
	}
}

// pieceMovement returns sort's direct motions and ranged directions,
// given from Black's perspective. Ranged directions are unit steps to
// be extended by the caller.
func pieceMovement(sort PieceSort) (direct, ranged []Motion) {
	switch sort {
	case King:
		return []Motion{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 0}, {1, 0},
			{-1, 1}, {0, 1}, {1, 1},
		}, nil
	case Gold, PromotedSilver, PromotedKnight, PromotedLance, PromotedPawn:
		return []Motion{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 0}, {1, 0},
			{0, 1},
		}, nil
	case Silver:
		return []Motion{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 1}, {1, 1},
		}, nil
	case Knight:
		return []Motion{{1, -2}, {-1, -2}}, nil
	case Pawn:
		return []Motion{{0, -1}}, nil
	case Lance:
		return nil, []Motion{{0, -1}}
	case Rook:
		return nil, []Motion{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	case Bishop:
		return nil, []Motion{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	case PromotedRook:
		return []Motion{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
			[]Motion{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	case PromotedBishop:
		return []Motion{{0, -1}, {0, 1}, {-1, 0}, {1, 0}},
			[]Motion{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	default:
		return nil, nil
	}
}

func flipAll(motions []Motion) []Motion {
	if motions == nil {
		return nil
	}
	flipped := make([]Motion, len(motions))
	for i, m := range motions {
		flipped[i] = m.FlipHoriz()
	}
	return flipped
}

// GenerateMotions returns every Movement the piece at pos can make.
// When testCheck is true (the default used by the validator) any
// motion that would leave the mover in check is pruned; check.go calls
// this with testCheck=false to break the mutual recursion.
func GenerateMotions(pos BoardPos, board *Board, testCheck bool) []Movement {
	piece := board.Get(pos)
	if piece == nil {
		return nil
	}
	player := piece.Owner

	direct, ranged := pieceMovement(piece.Sort)
	if !symmetric(piece.Sort) && player == White {
		direct = flipAll(direct)
		ranged = flipAll(ranged)
	}

	var out []Movement

	for _, m := range direct {
		dest, ok := pos.ApplyMotion(m)
		if !ok {
			continue
		}
		target := board.Get(dest)
		if target != nil && target.Owner == player {
			continue
		}
		ability := AbleToPromote(*piece, pos, dest)
		if testCheck && leavesInCheck(board, player, pos, m) {
			continue
		}
		out = append(out, Movement{Motion: m, Promotion: ability})
	}

	for _, dir := range ranged {
		for k := int8(1); ; k++ {
			m := Motion{DX: dir.DX * k, DY: dir.DY * k}
			dest, ok := pos.ApplyMotion(m)
			if !ok {
				break
			}
			target := board.Get(dest)
			if target != nil && target.Owner == player {
				break
			}
			ability := AbleToPromote(*piece, pos, dest)
			blocked := testCheck && leavesInCheck(board, player, pos, m)
			if !blocked {
				out = append(out, Movement{Motion: m, Promotion: ability})
			}
			if target != nil {
				// Opponent piece: the ray stops here regardless of
				// whether this stride was itself legal.
				break
			}
			// Empty square: a later stride along the ray might block
			// the check even if this one doesn't, so keep going.
		}
	}

	return out
}

// leavesInCheck reports whether moving the piece at from by motion
// would leave player in check. The promoted flag is set arbitrarily
// (false) since promotion never changes whether the destination square
// is attacked.
func leavesInCheck(board *Board, player Player, from BoardPos, motion Motion) bool {
	sim := board.Clone()
	sim.ApplyMoveBasic(BasicMove{From: from, Motion: motion, Promoted: false})
	return IsInCheck(player, sim)
}
