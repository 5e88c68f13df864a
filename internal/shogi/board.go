package shogi

// FileSet is a bitset over the BoardSize files, one bit per file index.
type FileSet uint16

// Has reports whether file x is set.
func (f FileSet) Has(x int8) bool {
	return f&(1<<uint(x)) != 0
}

// Board is a 9x9 grid of optional pieces plus each player's hand.
// Tiles is indexed [y][x] so row-major iteration (as Find and the
// move-generation sweeps use) walks memory in order.
type Board struct {
	Tiles [BoardSize][BoardSize]*Piece
	Hands [2]Hand
}

// Empty returns a board with no pieces and empty hands. Useful for
// tests and puzzle setup.
func Empty() *Board {
	return &Board{}
}

// Initial returns the standard Shogi opening position.
func Initial() *Board {
	b := Empty()

	backRank := [BoardSize]PieceSort{
		Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance,
	}

	place := func(y int8, owner Player, sort PieceSort, x int8) {
		b.Set(BoardPos{X: x, Y: y}, &Piece{Owner: owner, Sort: sort})
	}

	for x := int8(0); x < BoardSize; x++ {
		place(8, Black, backRank[x], x)
		place(0, White, backRank[x], x)
		place(6, Black, Pawn, x)
		place(2, White, Pawn, x)
	}

	place(7, Black, Bishop, 1)
	place(7, Black, Rook, 7)
	place(1, White, Rook, 1)
	place(1, White, Bishop, 7)

	return b
}

// Get returns the piece at pos, or nil if the tile is empty. Behavior
// for an out-of-bounds pos is a programmer error.
func (b *Board) Get(pos BoardPos) *Piece {
	return b.Tiles[pos.Y][pos.X]
}

// Set places piece (or nil, to clear) at pos. Behavior for an
// out-of-bounds pos is a programmer error.
func (b *Board) Set(pos BoardPos, piece *Piece) {
	b.Tiles[pos.Y][pos.X] = piece
}

// Find returns the first (row-major) tile holding a piece equal to p.
func (b *Board) Find(p Piece) (BoardPos, bool) {
	for y := int8(0); y < BoardSize; y++ {
		for x := int8(0); x < BoardSize; x++ {
			if tile := b.Tiles[y][x]; tile != nil && *tile == p {
				return BoardPos{X: x, Y: y}, true
			}
		}
	}
	return BoardPos{}, false
}

// FileHasPawnFor reports whether an un-promoted pawn owned by player
// occupies file x. Used to enforce nifu on pawn drops.
func (b *Board) FileHasPawnFor(x int8, player Player) bool {
	for y := int8(0); y < BoardSize; y++ {
		tile := b.Tiles[y][x]
		if tile != nil && tile.Owner == player && tile.Sort == Pawn {
			return true
		}
	}
	return false
}

// FilesHavePawnFor is the bulk form of FileHasPawnFor, one bit per file.
func (b *Board) FilesHavePawnFor(player Player) FileSet {
	var files FileSet
	for x := int8(0); x < BoardSize; x++ {
		if b.FileHasPawnFor(x, player) {
			files |= 1 << uint(x)
		}
	}
	return files
}

// HandOf returns player's hand.
func (b *Board) HandOf(player Player) Hand {
	return b.Hands[player]
}

// HandOfMut returns a pointer to player's hand, for mutation.
func (b *Board) HandOfMut(player Player) *Hand {
	return &b.Hands[player]
}

// ApplyMoveBasic applies a Basic move in place. It fails (returning
// false, board unchanged) if From is empty or the motion runs off the
// board. On success it reads the source piece, computes the
// destination, writes None at the source, writes the (possibly
// promoted) piece at the destination, and — if the destination held a
// piece — demotes that captured piece and adds it to the mover's hand.
// Self-capture is not checked here; that is the move validator's job.
func (b *Board) ApplyMoveBasic(m BasicMove) bool {
	src := b.Get(m.From)
	if src == nil {
		return false
	}
	dest, ok := m.From.ApplyMotion(m.Motion)
	if !ok {
		return false
	}

	mover := src.Owner
	captured := b.Get(dest)

	moved := *src
	if m.Promoted {
		moved = moved.Promote()
	}

	b.Set(m.From, nil)
	b.Set(dest, &moved)

	if captured != nil {
		b.HandOfMut(mover).Add(captured.Sort.Demote())
	}
	return true
}

// ApplyMoveDrop applies a Drop move in place. It fails if the
// destination is occupied, the hand count for the piece's sort is
// zero, or the piece is promoted or a king. On success it places the
// piece and decrements the hand count.
func (b *Board) ApplyMoveDrop(d DropMove) bool {
	if b.Get(d.Pos) != nil {
		return false
	}
	if d.Piece.Sort.IsPromoted() || d.Piece.Sort == King {
		return false
	}
	if !b.HandOfMut(d.Piece.Owner).Remove(d.Piece.Sort) {
		return false
	}
	piece := d.Piece
	b.Set(d.Pos, &piece)
	return true
}

// ApplyMove dispatches to ApplyMoveBasic or ApplyMoveDrop.
func (b *Board) ApplyMove(m Move) bool {
	switch m.Kind {
	case MoveBasic:
		return b.ApplyMoveBasic(m.Basic)
	case MoveDrop:
		return b.ApplyMoveDrop(m.Drop)
	default:
		return false
	}
}

// Clone returns a deep copy of b, safe to mutate independently.
func (b *Board) Clone() *Board {
	clone := &Board{Hands: b.Hands}
	for y := int8(0); y < BoardSize; y++ {
		for x := int8(0); x < BoardSize; x++ {
			if tile := b.Tiles[y][x]; tile != nil {
				p := *tile
				clone.Tiles[y][x] = &p
			}
		}
	}
	return clone
}
