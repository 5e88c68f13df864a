package shogi

// PieceSort enumerates the fourteen kinds of Shogi piece: the two base
// sorts that never promote (King, Gold), and the six promotable base
// sorts paired with their promoted forms.
type PieceSort uint8

const (
	King PieceSort = iota
	Rook
	PromotedRook
	Bishop
	PromotedBishop
	Gold
	Silver
	PromotedSilver
	Knight
	PromotedKnight
	Lance
	PromotedLance
	Pawn
	PromotedPawn

	numPieceSorts = 14
)

// String returns the English name of the sort.
func (s PieceSort) String() string {
	switch s {
	case King:
		return "King"
	case Rook:
		return "Rook"
	case PromotedRook:
		return "PromotedRook"
	case Bishop:
		return "Bishop"
	case PromotedBishop:
		return "PromotedBishop"
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case PromotedSilver:
		return "PromotedSilver"
	case Knight:
		return "Knight"
	case PromotedKnight:
		return "PromotedKnight"
	case Lance:
		return "Lance"
	case PromotedLance:
		return "PromotedLance"
	case Pawn:
		return "Pawn"
	case PromotedPawn:
		return "PromotedPawn"
	default:
		return "Unknown"
	}
}

// promotionPairs maps each promotable base sort to its promoted form.
// Gold and King never appear here: they cannot promote.
var promotionPairs = map[PieceSort]PieceSort{
	Rook:   PromotedRook,
	Bishop: PromotedBishop,
	Silver: PromotedSilver,
	Knight: PromotedKnight,
	Lance:  PromotedLance,
	Pawn:   PromotedPawn,
}

var demotionPairs = func() map[PieceSort]PieceSort {
	m := make(map[PieceSort]PieceSort, len(promotionPairs))
	for base, promoted := range promotionPairs {
		m[promoted] = base
	}
	return m
}()

// CanPromote reports whether the sort is one of the six promotable base
// sorts (i.e. it is not already promoted, and not King/Gold).
func (s PieceSort) CanPromote() bool {
	_, ok := promotionPairs[s]
	return ok
}

// Promote returns the promoted form of s, or s unchanged if s cannot
// promote or is already promoted. Idempotent.
func (s PieceSort) Promote() PieceSort {
	if promoted, ok := promotionPairs[s]; ok {
		return promoted
	}
	return s
}

// Demote returns the base form of s, or s unchanged if s is already a
// base sort. Idempotent.
func (s PieceSort) Demote() PieceSort {
	if base, ok := demotionPairs[s]; ok {
		return base
	}
	return s
}

// IsPromoted reports whether s is one of the six promoted sorts.
func (s PieceSort) IsPromoted() bool {
	_, ok := demotionPairs[s]
	return ok
}

// Piece is a player's piece of a given sort.
type Piece struct {
	Owner Player
	Sort  PieceSort
}

// Promote returns the piece with its sort promoted.
func (p Piece) Promote() Piece {
	return Piece{Owner: p.Owner, Sort: p.Sort.Promote()}
}

// Demote returns the piece with its sort demoted.
func (p Piece) Demote() Piece {
	return Piece{Owner: p.Owner, Sort: p.Sort.Demote()}
}
