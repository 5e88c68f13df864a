// Package csa implements the CSA move-line format: a plain-text,
// line-oriented notation used to replay recorded games against the
// rules core.
package csa

import (
	"fmt"
	"log"

	"github.com/lawbel/zig-shogi-sub000/internal/shogi"
)

// ParseErrorKind distinguishes the two ways a CSA move line can fail
// to parse.
type ParseErrorKind int

const (
	EndOfInput ParseErrorKind = iota
	UnexpectedChar
)

// ParseError is returned by ParseLine. Replay treats it as recoverable:
// the offending line is skipped and replay continues.
type ParseError struct {
	Kind   ParseErrorKind
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case EndOfInput:
		return "csa: unexpected end of input"
	default:
		return fmt.Sprintf("csa: unexpected character: %s", e.Detail)
	}
}

// GameErrorKind distinguishes the two ways a syntactically valid move
// line can fail to apply to the current position.
type GameErrorKind int

const (
	PieceNotInHand GameErrorKind = iota
	InvalidMove
)

// GameError is returned by ApplyParsedMove and Replay. Unlike
// ParseError it is never recovered locally — it is reported straight
// to the caller of the replay driver.
type GameError struct {
	Kind   GameErrorKind
	Detail string
}

func (e *GameError) Error() string {
	switch e.Kind {
	case PieceNotInHand:
		return fmt.Sprintf("csa: piece not in hand: %s", e.Detail)
	default:
		return fmt.Sprintf("csa: invalid move: %s", e.Detail)
	}
}

// sortCodes maps the fourteen two-letter CSA sort codes to PieceSort.
var sortCodes = map[string]shogi.PieceSort{
	"OU": shogi.King,
	"HI": shogi.Rook,
	"KA": shogi.Bishop,
	"KI": shogi.Gold,
	"GI": shogi.Silver,
	"KE": shogi.Knight,
	"KY": shogi.Lance,
	"FU": shogi.Pawn,
	"RY": shogi.PromotedRook,
	"UM": shogi.PromotedBishop,
	"NG": shogi.PromotedSilver,
	"NK": shogi.PromotedKnight,
	"NY": shogi.PromotedLance,
	"TO": shogi.PromotedPawn,
}

// ParsedMove is a CSA move line after parsing, before it is checked
// against a position. FinalSort is the sort the moving piece has AFTER
// the move — for a Basic move this may differ from the piece's sort on
// the board, which is how a promotion is detected.
type ParsedMove struct {
	Player    shogi.Player
	IsDrop    bool
	From      shogi.BoardPos // meaningful iff !IsDrop
	To        shogi.BoardPos
	FinalSort shogi.PieceSort
}

func csaDigit(b byte) (int8, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	return int8(b - '0'), true
}

// csaToInternal converts one CSA coordinate pair (1-indexed from
// White's right) to an internal BoardPos.
func csaToInternal(csaX, csaY int8) shogi.BoardPos {
	return shogi.BoardPos{X: int8(shogi.BoardSize) - csaX, Y: csaY - 1}
}

// ParseLine parses a single 7-byte CSA move line:
// {+|-}{sx}{sy}{dx}{dy}{SORT}. A source of "00" denotes a drop;
// destination "00" is never valid.
func ParseLine(line string) (ParsedMove, error) {
	if len(line) == 0 {
		return ParsedMove{}, &ParseError{Kind: EndOfInput}
	}
	if len(line) != 7 {
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: "line is not 7 bytes"}
	}

	var player shogi.Player
	switch line[0] {
	case '+':
		player = shogi.Black
	case '-':
		player = shogi.White
	default:
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: string(line[0])}
	}

	sx, ok := csaDigit(line[1])
	if !ok {
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: string(line[1])}
	}
	sy, ok := csaDigit(line[2])
	if !ok {
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: string(line[2])}
	}
	dx, ok := csaDigit(line[3])
	if !ok {
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: string(line[3])}
	}
	dy, ok := csaDigit(line[4])
	if !ok {
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: string(line[4])}
	}
	if dx == 0 && dy == 0 {
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: "destination 00"}
	}

	sort, ok := sortCodes[line[5:7]]
	if !ok {
		return ParsedMove{}, &ParseError{Kind: UnexpectedChar, Detail: line[5:7]}
	}

	isDrop := sx == 0 && sy == 0
	pm := ParsedMove{Player: player, IsDrop: isDrop, To: csaToInternal(dx, dy), FinalSort: sort}
	if !isDrop {
		pm.From = csaToInternal(sx, sy)
	}
	return pm, nil
}

// ApplyParsedMove checks pm against board's current position, applies
// it if legal, and returns the shogi.Move it resolved to.
func ApplyParsedMove(board *shogi.Board, pm ParsedMove) (shogi.Move, error) {
	if pm.IsDrop {
		piece := shogi.Piece{Owner: pm.Player, Sort: pm.FinalSort}
		if board.HandOf(pm.Player).Count(pm.FinalSort) == 0 {
			return shogi.Move{}, &GameError{Kind: PieceNotInHand, Detail: pm.FinalSort.String()}
		}
		move := shogi.NewDropMove(pm.To, piece)
		if !shogi.IsValid(move, board) {
			return shogi.Move{}, &GameError{Kind: InvalidMove, Detail: "drop"}
		}
		board.ApplyMove(move)
		return move, nil
	}

	origin := board.Get(pm.From)
	if origin == nil {
		return shogi.Move{}, &GameError{Kind: InvalidMove, Detail: "empty origin square"}
	}
	// A CSA basic move line carries the piece's final sort; comparing
	// it against the origin tile's sort on the current board is how a
	// promotion is inferred.
	promoted := origin.Sort != pm.FinalSort
	motion := shogi.Motion{DX: pm.To.X - pm.From.X, DY: pm.To.Y - pm.From.Y}
	move := shogi.NewBasicMove(pm.From, motion, promoted)
	if !shogi.IsValid(move, board) {
		return shogi.Move{}, &GameError{Kind: InvalidMove, Detail: "basic"}
	}
	board.ApplyMove(move)
	return move, nil
}

// Replay applies each line to board in order. A line that fails to
// parse is logged and skipped so unrecognized text does not abort
// replay; a line that parses but fails to apply (GameError) stops
// replay immediately and is returned to the caller.
func Replay(board *shogi.Board, lines []string) error {
	for _, line := range lines {
		pm, err := ParseLine(line)
		if err != nil {
			log.Printf("[CSA] skipping unparsable line %q: %v", line, err)
			continue
		}
		if _, err := ApplyParsedMove(board, pm); err != nil {
			return err
		}
	}
	return nil
}
