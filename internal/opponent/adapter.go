package opponent

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/lawbel/zig-shogi-sub000/internal/shogi"
)

// Adapter is the uniform-random move chooser: it consumes the
// validator's full legal-move set, counts every concrete move (a
// can_promote Basic counts as two), and picks one uniformly. It
// deliberately does no search or evaluation.
type Adapter struct {
	mu  sync.Mutex
	rng *rand.Rand

	minDelay time.Duration
	maxDelay time.Duration
}

// NewAdapter builds an Adapter. minDelay/maxDelay bound the uniform
// random think-time; both are used as given, with no default applied.
func NewAdapter(seed int64, minDelay, maxDelay time.Duration) *Adapter {
	return &Adapter{
		rng:      rand.New(rand.NewSource(seed)),
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// ChooseMove picks a uniformly random legal move for player on board.
// The second return is false iff player has no legal move at all.
func (a *Adapter) ChooseMove(player shogi.Player, board *shogi.Board) (shogi.Move, bool) {
	valid := shogi.MovesFor(player, board, true)
	total := valid.Total()
	if total == 0 {
		return shogi.Move{}, false
	}

	a.mu.Lock()
	idx := a.rng.Intn(total)
	a.mu.Unlock()

	for from, movements := range valid.Basics {
		for _, m := range movements {
			count := 1
			if m.Promotion == shogi.CanPromoteOpt {
				count = 2
			}
			if idx < count {
				promoted := m.Promotion == shogi.MustPromote
				if m.Promotion == shogi.CanPromoteOpt {
					promoted = idx == 1
				}
				return shogi.NewBasicMove(from, m.Motion, promoted), true
			}
			idx -= count
		}
	}
	for piece, dests := range valid.Drops {
		for _, pos := range dests {
			if idx < 1 {
				return shogi.NewDropMove(pos, piece), true
			}
			idx--
		}
	}
	// Total() and the enumeration above disagree only on a programmer
	// error (e.g. a Valid built by hand).
	return shogi.Move{}, false
}

func (a *Adapter) thinkTime() time.Duration {
	span := int64(a.maxDelay - a.minDelay)
	a.mu.Lock()
	defer a.mu.Unlock()
	if span <= 0 {
		return a.minDelay
	}
	return a.minDelay + time.Duration(a.rng.Int63n(span+1))
}

// SpawnWorker starts exactly one worker goroutine that chooses a move
// for player on a snapshot of board and publishes it to slot once both
// the move is chosen and the think-time delay has elapsed. The caller
// must not spawn another worker for the same slot until this one has
// published: only one worker is ever outstanding at a time.
func SpawnWorker(a *Adapter, player shogi.Player, board *shogi.Board, slot *Slot) {
	snapshot := board.Clone()
	go func() {
		log.Printf("[Opponent] thinking as %v", player)
		delay := a.thinkTime()
		time.Sleep(delay)

		move, ok := a.ChooseMove(player, snapshot)
		if !ok {
			log.Printf("[Opponent] no legal move for %v", player)
			return
		}
		slot.Set(move)
	}()
}
