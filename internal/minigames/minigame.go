// Package minigames contains the embedded casino games. The navigator is
// oblivious to their internals: it launches an instance, feeds player actions
// into it and waits for the single outcome token the instance emits.
package minigames

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// Action is one player input to an active minigame.
type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
	ActionSpin  Action = "spin"
	ActionCall  Action = "call"
	ActionFold  Action = "fold"
)

// Result of one applied action. Done becomes true exactly once per instance,
// together with the final outcome token.
type Result struct {
	Done    bool
	Outcome models.OutcomeToken
}

// Minigame is one launched game instance. Instances are single-use: after an
// action sets Result.Done, every following Act returns ErrFinished.
type Minigame interface {
	Kind() models.MinigameKind
	Act(action Action) (Result, error)
	// View returns a presentation snapshot of the table state.
	View() map[string]any
}

// Factory launches minigame instances with an injectable random source, so
// outcome handling is deterministically testable.
type Factory struct {
	log     *zap.Logger
	newRand func() *rand.Rand
}

// NewFactory creates a factory. newRand may be nil, in which case every
// launch gets a time-seeded source.
func NewFactory(log *zap.Logger, newRand func() *rand.Rand) *Factory {
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Factory{
		log:     log.Named("Minigames"),
		newRand: newRand,
	}
}

// Launch creates a fresh instance of the requested kind.
func (f *Factory) Launch(kind models.MinigameKind) (Minigame, error) {
	rng := f.newRand()
	switch kind {
	case models.MinigameBlackjack:
		return newBlackjack(f.log, rng), nil
	case models.MinigameSlots:
		return newSlots(f.log, rng), nil
	case models.MinigamePoker:
		return newPoker(f.log, rng), nil
	default:
		return nil, ErrUnknownKind
	}
}
