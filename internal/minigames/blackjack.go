package minigames

import (
	"math/rand"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// blackjack: игрок добирает карты против дилера, дилер обязан брать до 17.
type blackjack struct {
	log    *zap.Logger
	deck   []card
	player []card
	dealer []card
	done   bool
}

var _ Minigame = (*blackjack)(nil)

func newBlackjack(log *zap.Logger, rng *rand.Rand) *blackjack {
	g := &blackjack{
		log:  log.Named("Blackjack"),
		deck: newDeck(rng),
	}
	g.player = append(g.player, g.draw(), g.draw())
	g.dealer = append(g.dealer, g.draw(), g.draw())
	return g
}

func (g *blackjack) Kind() models.MinigameKind { return models.MinigameBlackjack }

func (g *blackjack) draw() card {
	c := g.deck[0]
	g.deck = g.deck[1:]
	return c
}

func (g *blackjack) Act(action Action) (Result, error) {
	if g.done {
		return Result{}, ErrFinished
	}
	switch action {
	case ActionHit:
		g.player = append(g.player, g.draw())
		if handValue(g.player) > 21 {
			return g.finish(models.OutcomeLose), nil
		}
		return Result{}, nil
	case ActionStand:
		return g.stand(), nil
	default:
		return Result{}, ErrUnknownAction
	}
}

// stand доигрывает руку дилера и сравнивает итоги.
func (g *blackjack) stand() Result {
	for handValue(g.dealer) < 17 {
		g.dealer = append(g.dealer, g.draw())
	}
	pv, dv := handValue(g.player), handValue(g.dealer)
	switch {
	case dv > 21 || pv > dv:
		return g.finish(models.OutcomeWin)
	case pv < dv:
		return g.finish(models.OutcomeLose)
	default:
		return g.finish(models.OutcomeDraw)
	}
}

func (g *blackjack) finish(outcome models.OutcomeToken) Result {
	g.done = true
	g.log.Debug("партия завершена",
		zap.String("outcome", string(outcome)),
		zap.Int("player", handValue(g.player)),
		zap.Int("dealer", handValue(g.dealer)))
	return Result{Done: true, Outcome: outcome}
}

func (g *blackjack) View() map[string]any {
	view := map[string]any{
		"player":       handStrings(g.player),
		"player_value": handValue(g.player),
	}
	if g.done {
		view["dealer"] = handStrings(g.dealer)
		view["dealer_value"] = handValue(g.dealer)
	} else {
		// до вскрытия видна только первая карта дилера
		view["dealer"] = []string{g.dealer[0].String(), "??"}
	}
	return view
}
