package shogi

// BoardSize is the width and height of a Shogi board.
const BoardSize = 9

// BoardPos is a board square. X is the file, Y is the rank; both are
// zero-indexed. A position is on-board iff X,Y are both in [0,BoardSize).
type BoardPos struct {
	X, Y int8
}

// InBounds reports whether p lies on the board.
func (p BoardPos) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// ApplyMotion returns the position reached by applying m to p, and
// false iff the result would be out of bounds.
func (p BoardPos) ApplyMotion(m Motion) (BoardPos, bool) {
	dest := BoardPos{X: p.X + m.DX, Y: p.Y + m.DY}
	if !dest.InBounds() {
		return BoardPos{}, false
	}
	return dest, true
}

// InPromotionZoneFor reports whether p lies in player's promotion zone:
// the last three ranks from that player's perspective.
func (p BoardPos) InPromotionZoneFor(player Player) bool {
	if player == Black {
		return p.Y >= 0 && p.Y <= 2
	}
	return p.Y >= BoardSize-3 && p.Y <= BoardSize-1
}

// Motion is a relative displacement (dx, dy) applied to a BoardPos.
type Motion struct {
	DX, DY int8
}

// FlipHoriz negates the motion's Y component. Used to mirror an
// asymmetric piece's move table from Black's perspective to White's.
func (m Motion) FlipHoriz() Motion {
	return Motion{DX: m.DX, DY: -m.DY}
}
