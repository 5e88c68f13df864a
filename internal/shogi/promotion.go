package shogi

// PromoteAbility classifies whether a move may, must, or cannot carry a
// promotion.
type PromoteAbility uint8

const (
	CannotPromote PromoteAbility = iota
	CanPromoteOpt
	MustPromote
)

// String names the ability, for debugging and test failure messages.
func (a PromoteAbility) String() string {
	switch a {
	case CannotPromote:
		return "cannot_promote"
	case CanPromoteOpt:
		return "can_promote"
	case MustPromote:
		return "must_promote"
	default:
		return "unknown"
	}
}

// baseThreshold returns the Black-perspective rank threshold k used by
// MustPromoteInRanks/MustPromoteAtRank: 0 for sorts that are never
// forced to promote, 1 for pawn/lance (immobile on the last rank), 2
// for knight (immobile on the last two ranks).
func baseThreshold(sort PieceSort) int8 {
	switch sort {
	case Pawn, Lance:
		return 1
	case Knight:
		return 2
	default:
		return 0
	}
}

// MustPromoteInRanks returns the signed rank threshold: the
// Black-perspective values 0/1/2 for (other)/(pawn, lance)/(knight),
// mirrored to size-1-k for White.
func MustPromoteInRanks(piece Piece) int8 {
	k := baseThreshold(piece.Sort)
	if piece.Owner == White {
		return int8(BoardSize-1) - k
	}
	return k
}

// MustPromoteAtRank reports whether landing piece on rank would leave
// it with no legal future move: Black pawn/lance on rank 0, Black
// knight on ranks 0-1, and the White-mirrored cases.
func MustPromoteAtRank(piece Piece, rank int8) bool {
	if baseThreshold(piece.Sort) == 0 {
		return false
	}
	threshold := MustPromoteInRanks(piece)
	if piece.Owner == Black {
		return rank < threshold
	}
	return rank > threshold
}

// AbleToPromote classifies a move of piece from src to dest: must if
// the destination rank would strand the piece, can if either square
// lies in the mover's promotion zone, cannot otherwise. A piece that
// cannot promote at all (King, Gold, or an already-promoted sort)
// always classifies as cannot.
func AbleToPromote(piece Piece, src, dest BoardPos) PromoteAbility {
	if !piece.Sort.CanPromote() {
		return CannotPromote
	}
	if MustPromoteAtRank(piece, dest.Y) {
		return MustPromote
	}
	if src.InPromotionZoneFor(piece.Owner) || dest.InPromotionZoneFor(piece.Owner) {
		return CanPromoteOpt
	}
	return CannotPromote
}
