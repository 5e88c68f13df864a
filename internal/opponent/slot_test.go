package opponent

import (
	"testing"

	"github.com/lawbel/zig-shogi-sub000/internal/shogi"
)

func TestSlotGetDoesNotConsume(t *testing.T) {
	var slot Slot
	if _, ok := slot.Get(); ok {
		t.Fatal("a fresh slot should report nothing pending")
	}

	move := shogi.NewBasicMove(shogi.BoardPos{X: 0, Y: 0}, shogi.Motion{DX: 0, DY: -1}, false)
	slot.Set(move)

	got, ok := slot.Get()
	if !ok || got != move {
		t.Fatalf("Get() = %v, %v; want %v, true", got, ok, move)
	}
	if got, ok := slot.Get(); !ok || got != move {
		t.Error("Get should not consume the pending move")
	}
}

func TestSlotTakeConsumes(t *testing.T) {
	var slot Slot
	move := shogi.NewDropMove(shogi.BoardPos{X: 3, Y: 3}, shogi.Piece{Owner: shogi.Black, Sort: shogi.Pawn})
	slot.Set(move)

	got, ok := slot.Take()
	if !ok || got != move {
		t.Fatalf("Take() = %v, %v; want %v, true", got, ok, move)
	}
	if _, ok := slot.Take(); ok {
		t.Error("Take should have emptied the slot")
	}
	if _, ok := slot.Get(); ok {
		t.Error("slot should report empty after Take")
	}
}

func TestSlotSetReplacesPending(t *testing.T) {
	var slot Slot
	first := shogi.NewBasicMove(shogi.BoardPos{X: 0, Y: 0}, shogi.Motion{DX: 0, DY: -1}, false)
	second := shogi.NewBasicMove(shogi.BoardPos{X: 1, Y: 1}, shogi.Motion{DX: 0, DY: -1}, false)
	slot.Set(first)
	slot.Set(second)

	got, ok := slot.Take()
	if !ok || got != second {
		t.Errorf("Take() = %v, want the most recently Set move %v", got, second)
	}
}
