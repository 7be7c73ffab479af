package minigames

import (
	"math/rand"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// pokerWinChance — шанс выиграть раздачу при колле.
const pokerWinChance = 0.6

// poker: упрощенный турнирный стол — колл разыгрывает руку, фолд сразу
// отдает раздачу.
type poker struct {
	log  *zap.Logger
	rng  *rand.Rand
	hand []card
	done bool
}

var _ Minigame = (*poker)(nil)

func newPoker(log *zap.Logger, rng *rand.Rand) *poker {
	deck := newDeck(rng)
	return &poker{
		log:  log.Named("Poker"),
		rng:  rng,
		hand: deck[:2],
	}
}

func (g *poker) Kind() models.MinigameKind { return models.MinigamePoker }

func (g *poker) Act(action Action) (Result, error) {
	if g.done {
		return Result{}, ErrFinished
	}
	switch action {
	case ActionCall:
		g.done = true
		outcome := models.OutcomeLose
		if g.rng.Float64() < pokerWinChance {
			outcome = models.OutcomeWin
		}
		g.log.Debug("раздача разыграна", zap.String("outcome", string(outcome)))
		return Result{Done: true, Outcome: outcome}, nil
	case ActionFold:
		g.done = true
		g.log.Debug("фолд")
		return Result{Done: true, Outcome: models.OutcomeLose}, nil
	default:
		return Result{}, ErrUnknownAction
	}
}

func (g *poker) View() map[string]any {
	return map[string]any{
		"hand": handStrings(g.hand),
	}
}
