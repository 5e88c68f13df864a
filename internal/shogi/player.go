// Package shogi implements the rules core of a Shogi (Japanese chess)
// engine: board and hand representation, promotion rules, move
// generation, check detection and move validation.
package shogi

// Player identifies a side in the game. Black (先手) moves first.
type Player uint8

const (
	Black Player = iota
	White
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

// String returns a human-readable label for the player.
func (p Player) String() string {
	if p == Black {
		return "Black"
	}
	return "White"
}
