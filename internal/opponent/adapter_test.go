package opponent

import (
	"testing"
	"time"

	"github.com/lawbel/zig-shogi-sub000/internal/shogi"
)

func TestChooseMoveReturnsSoleLegalMove(t *testing.T) {
	board := shogi.Empty()
	board.Set(shogi.BoardPos{X: 4, Y: 4}, &shogi.Piece{Owner: shogi.Black, Sort: shogi.Pawn})

	want := shogi.NewBasicMove(shogi.BoardPos{X: 4, Y: 4}, shogi.Motion{DX: 0, DY: -1}, false)

	for _, seed := range []int64{1, 2, 3, 42} {
		a := NewAdapter(seed, time.Millisecond, time.Millisecond)
		got, ok := a.ChooseMove(shogi.Black, board)
		if !ok {
			t.Fatalf("seed %d: expected a legal move, got none", seed)
		}
		if got != want {
			t.Errorf("seed %d: ChooseMove() = %v, want the only legal move %v", seed, got, want)
		}
	}
}

func TestChooseMoveReportsNoMoveWhenNoneExist(t *testing.T) {
	board := shogi.Empty()
	a := NewAdapter(1, time.Millisecond, time.Millisecond)
	if _, ok := a.ChooseMove(shogi.Black, board); ok {
		t.Error("an empty board has no legal moves, ChooseMove should report false")
	}
}

func TestThinkTimeStaysWithinBounds(t *testing.T) {
	a := NewAdapter(7, 10*time.Millisecond, 20*time.Millisecond)
	for i := 0; i < 50; i++ {
		d := a.thinkTime()
		if d < 10*time.Millisecond || d > 20*time.Millisecond {
			t.Fatalf("thinkTime() = %v, want within [10ms,20ms]", d)
		}
	}
}

func TestThinkTimeHandlesZeroSpan(t *testing.T) {
	a := NewAdapter(7, 5*time.Millisecond, 5*time.Millisecond)
	if d := a.thinkTime(); d != 5*time.Millisecond {
		t.Errorf("thinkTime() with equal bounds = %v, want 5ms", d)
	}
}

func TestSpawnWorkerPublishesToSlot(t *testing.T) {
	board := shogi.Empty()
	board.Set(shogi.BoardPos{X: 4, Y: 4}, &shogi.Piece{Owner: shogi.Black, Sort: shogi.Pawn})

	a := NewAdapter(1, time.Millisecond, 2*time.Millisecond)
	var slot Slot
	SpawnWorker(a, shogi.Black, board, &slot)

	deadline := time.After(time.Second)
	for {
		if _, ok := slot.Get(); ok {
			return
		}
		select {
		case <-deadline:
			t.Fatal("worker did not publish a move within the deadline")
		case <-time.After(time.Millisecond):
		}
	}
}
