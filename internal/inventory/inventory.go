// Package inventory реализует ресурсы игрока: ключи, билеты и деньги.
package inventory

import (
	"sync"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// StartingMoney — стартовый баланс нового игрока.
const StartingMoney = 1000

// Inventory is the in-process resource store backing choice requirements.
// Mutations are synchronous and immediately consistent; the mutex only
// protects against concurrent sessions sharing a player profile.
type Inventory struct {
	mu     sync.Mutex
	log    *zap.Logger
	counts map[models.ResourceKind]int
}

var _ models.ResourceBindings = (*Inventory)(nil)

// New creates an inventory with the starting balance.
func New(log *zap.Logger) *Inventory {
	return &Inventory{
		log: log.Named("Inventory"),
		counts: map[models.ResourceKind]int{
			models.ResourceMoney: StartingMoney,
		},
	}
}

// HasResource reports whether at least one unit is held.
func (inv *Inventory) HasResource(kind models.ResourceKind) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.counts[kind] > 0
}

// ConsumeResource removes exactly one unit; returns false and changes
// nothing when no unit is available.
func (inv *Inventory) ConsumeResource(kind models.ResourceKind) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.counts[kind] <= 0 {
		return false
	}
	inv.counts[kind]--
	inv.log.Debug("ресурс потрачен",
		zap.String("kind", string(kind)),
		zap.Int("left", inv.counts[kind]))
	return true
}

// GetResourceAmount returns the held amount of kind.
func (inv *Inventory) GetResourceAmount(kind models.ResourceKind) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.counts[kind]
}

// Add credits the inventory with n units of kind.
func (inv *Inventory) Add(kind models.ResourceKind, n int) {
	if n <= 0 {
		return
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.counts[kind] += n
	inv.log.Debug("ресурс начислен",
		zap.String("kind", string(kind)),
		zap.Int("amount", n),
		zap.Int("total", inv.counts[kind]))
}

// Counts returns a copy of all balances, for the presentation layer.
func (inv *Inventory) Counts() map[models.ResourceKind]int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make(map[models.ResourceKind]int, len(inv.counts))
	for k, v := range inv.counts {
		out[k] = v
	}
	return out
}
