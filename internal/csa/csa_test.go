package csa

import (
	"errors"
	"testing"

	"github.com/lawbel/zig-shogi-sub000/internal/shogi"
)

func TestParseLineBasicMove(t *testing.T) {
	pm, err := ParseLine("+7776FU")
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if pm.Player != shogi.Black || pm.IsDrop {
		t.Fatalf("unexpected parse: %+v", pm)
	}
	wantFrom := shogi.BoardPos{X: shogi.BoardSize - 7, Y: 7 - 1}
	wantTo := shogi.BoardPos{X: shogi.BoardSize - 7, Y: 6 - 1}
	if pm.From != wantFrom || pm.To != wantTo || pm.FinalSort != shogi.Pawn {
		t.Errorf("ParseLine(+7776FU) = %+v, want From=%v To=%v Sort=Pawn", pm, wantFrom, wantTo)
	}
}

func TestParseLineDropMove(t *testing.T) {
	pm, err := ParseLine("-0055KA")
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if pm.Player != shogi.White || !pm.IsDrop {
		t.Fatalf("unexpected parse: %+v", pm)
	}
	if pm.FinalSort != shogi.Bishop {
		t.Errorf("FinalSort = %v, want Bishop", pm.FinalSort)
	}
}

func TestParseLineRejectsWrongLength(t *testing.T) {
	if _, err := ParseLine("+77FU"); err == nil {
		t.Error("expected an error for a line with the wrong length")
	}
	var parseErr *ParseError
	if _, err := ParseLine("+77FU"); !errors.As(err, &parseErr) {
		t.Error("expected a *ParseError")
	}
}

func TestParseLineRejectsUnknownSort(t *testing.T) {
	if _, err := ParseLine("+7776ZZ"); err == nil {
		t.Error("expected an error for an unrecognized sort code")
	}
}

func TestParseLineRejectsEmptyDestination(t *testing.T) {
	if _, err := ParseLine("+770000"); err == nil {
		t.Error("a 00 destination should never parse")
	}
}

func TestReplaySkipsUnparsableLines(t *testing.T) {
	board := shogi.Initial()
	lines := []string{"garbage", "+7776FU"}
	if err := Replay(board, lines); err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}
	from := shogi.BoardPos{X: shogi.BoardSize - 7, Y: 6}
	if board.Get(from) != nil {
		t.Error("the pawn should have moved off its origin square")
	}
}

func TestReplaySurfacesGameError(t *testing.T) {
	board := shogi.Empty()
	board.Set(shogi.BoardPos{X: 4, Y: 8}, &shogi.Piece{Owner: shogi.Black, Sort: shogi.King})
	board.Set(shogi.BoardPos{X: 4, Y: 0}, &shogi.Piece{Owner: shogi.White, Sort: shogi.King})

	err := Replay(board, []string{"+0055KA"})
	if err == nil {
		t.Fatal("expected a GameError: bishop is not in Black's hand")
	}
	var gameErr *GameError
	if !errors.As(err, &gameErr) {
		t.Fatalf("expected a *GameError, got %T: %v", err, err)
	}
	if gameErr.Kind != PieceNotInHand {
		t.Errorf("GameError.Kind = %v, want PieceNotInHand", gameErr.Kind)
	}
}

func TestApplyParsedMoveRejectsEmptyOrigin(t *testing.T) {
	board := shogi.Empty()
	pm := ParsedMove{Player: shogi.Black, From: shogi.BoardPos{X: 0, Y: 0}, To: shogi.BoardPos{X: 0, Y: 1}, FinalSort: shogi.Pawn}
	_, err := ApplyParsedMove(board, pm)
	if err == nil {
		t.Fatal("expected an error moving from an empty square")
	}
	var gameErr *GameError
	if !errors.As(err, &gameErr) || gameErr.Kind != InvalidMove {
		t.Errorf("expected a GameError{Kind: InvalidMove}, got %v", err)
	}
}
