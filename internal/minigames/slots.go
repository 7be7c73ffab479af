package minigames

import (
	"math/rand"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

var slotSymbols = []string{"🍒", "🍋", "🍊", "💎", "7️⃣", "🔔"}

const slotJackpotSymbol = "7️⃣"

// slots: один спин — один исход. Три семерки дают джекпот, любые три
// одинаковых символа — выигрыш, пара — частичное совпадение.
type slots struct {
	log   *zap.Logger
	rng   *rand.Rand
	reels []string
	done  bool
}

var _ Minigame = (*slots)(nil)

func newSlots(log *zap.Logger, rng *rand.Rand) *slots {
	return &slots{
		log: log.Named("Slots"),
		rng: rng,
	}
}

func (g *slots) Kind() models.MinigameKind { return models.MinigameSlots }

func (g *slots) Act(action Action) (Result, error) {
	if g.done {
		return Result{}, ErrFinished
	}
	if action != ActionSpin {
		return Result{}, ErrUnknownAction
	}
	g.reels = []string{
		slotSymbols[g.rng.Intn(len(slotSymbols))],
		slotSymbols[g.rng.Intn(len(slotSymbols))],
		slotSymbols[g.rng.Intn(len(slotSymbols))],
	}
	g.done = true
	outcome := g.resolve()
	g.log.Debug("спин завершен",
		zap.Strings("reels", g.reels),
		zap.String("outcome", string(outcome)))
	return Result{Done: true, Outcome: outcome}, nil
}

func (g *slots) resolve() models.OutcomeToken {
	a, b, c := g.reels[0], g.reels[1], g.reels[2]
	switch {
	case a == b && b == c && a == slotJackpotSymbol:
		return models.OutcomeJackpot
	case a == b && b == c:
		return models.OutcomeWin
	case a == b || b == c || a == c:
		return models.OutcomePartial
	default:
		return models.OutcomeLose
	}
}

func (g *slots) View() map[string]any {
	return map[string]any{
		"symbols": slotSymbols,
		"reels":   g.reels,
	}
}
