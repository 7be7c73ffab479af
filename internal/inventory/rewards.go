package inventory

import (
	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// денежные награды за выигранные мини-игры
var winPayouts = map[models.MinigameKind]map[models.OutcomeToken]int{
	models.MinigameBlackjack: {
		models.OutcomeWin: 500,
	},
	models.MinigameSlots: {
		models.OutcomeJackpot: 1000,
		models.OutcomeWin:     300,
	},
	models.MinigamePoker: {
		models.OutcomeWin: 700,
	},
}

// Rewards credits money for minigame wins. It listens on the engine event
// stream, so the navigator stays unaware of payout rules.
type Rewards struct {
	log *zap.Logger
	inv *Inventory
}

var _ models.EventSink = (*Rewards)(nil)

// NewRewards creates the payout sink on top of an inventory.
func NewRewards(log *zap.Logger, inv *Inventory) *Rewards {
	return &Rewards{
		log: log.Named("Rewards"),
		inv: inv,
	}
}

// EmitEvent реализует models.EventSink.
func (r *Rewards) EmitEvent(name models.EventName, payload map[string]any) {
	if name != models.EventMinigameWon {
		return
	}
	kind, _ := payload["kind"].(string)
	outcome, _ := payload["outcome"].(string)
	amount := winPayouts[models.MinigameKind(kind)][models.OutcomeToken(outcome)]
	if amount == 0 {
		return
	}
	r.inv.Add(models.ResourceMoney, amount)
	r.log.Info("выплата за мини-игру",
		zap.String("kind", kind),
		zap.String("outcome", outcome),
		zap.Int("amount", amount))
}
