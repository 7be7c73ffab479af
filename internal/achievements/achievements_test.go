package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lucky-wave-server/internal/inventory"
	"lucky-wave-server/internal/models"
)

type announceRecorder struct {
	names []string
}

func (a *announceRecorder) EmitEvent(_ models.EventName, payload map[string]any) {
	name, _ := payload["achievement"].(string)
	a.names = append(a.names, name)
}

func winEvent(kind models.MinigameKind, outcome models.OutcomeToken) (models.EventName, map[string]any) {
	return models.EventMinigameWon, map[string]any{
		"kind":    string(kind),
		"outcome": string(outcome),
	}
}

func TestTrackerStats(t *testing.T) {
	tr := NewTracker(zap.NewNop(), nil, nil)

	tr.EmitEvent(models.EventSceneVisited, nil)
	tr.EmitEvent(models.EventSceneVisited, nil)
	tr.EmitEvent(models.EventChoiceMade, nil)
	tr.EmitEvent(models.EventMinigameLost, nil)
	tr.EmitEvent(models.EventChapterCompleted, nil)

	stats := tr.Stats()
	assert.Equal(t, 2, stats.ScenesVisited)
	assert.Equal(t, 1, stats.ChoicesMade)
	assert.Equal(t, 1, stats.MinigamesLost)
	assert.Equal(t, 1, stats.ChaptersCompleted)
	assert.Empty(t, tr.Unlocked())
}

func TestTrackerUnlocks(t *testing.T) {
	t.Run("first win", func(t *testing.T) {
		tr := NewTracker(zap.NewNop(), nil, nil)
		tr.EmitEvent(winEvent(models.MinigameSlots, models.OutcomeWin))
		assert.True(t, tr.IsUnlocked(FirstWin))
		assert.False(t, tr.IsUnlocked(SlotsJackpot))
	})

	t.Run("blackjack master needs three wins", func(t *testing.T) {
		tr := NewTracker(zap.NewNop(), nil, nil)
		for i := 0; i < 2; i++ {
			tr.EmitEvent(winEvent(models.MinigameBlackjack, models.OutcomeWin))
		}
		assert.False(t, tr.IsUnlocked(BlackjackMaster))
		tr.EmitEvent(winEvent(models.MinigameBlackjack, models.OutcomeWin))
		assert.True(t, tr.IsUnlocked(BlackjackMaster))
	})

	t.Run("slots jackpot", func(t *testing.T) {
		tr := NewTracker(zap.NewNop(), nil, nil)
		tr.EmitEvent(winEvent(models.MinigameSlots, models.OutcomeWin))
		assert.False(t, tr.IsUnlocked(SlotsJackpot))
		tr.EmitEvent(winEvent(models.MinigameSlots, models.OutcomeJackpot))
		assert.True(t, tr.IsUnlocked(SlotsJackpot))
	})

	t.Run("poker champion", func(t *testing.T) {
		tr := NewTracker(zap.NewNop(), nil, nil)
		tr.EmitEvent(winEvent(models.MinigamePoker, models.OutcomeWin))
		assert.True(t, tr.IsUnlocked(PokerChampion))
	})

	t.Run("balance achievements", func(t *testing.T) {
		inv := inventory.New(zap.NewNop())
		tr := NewTracker(zap.NewNop(), inv, nil)

		tr.EmitEvent(models.EventSceneVisited, nil)
		assert.False(t, tr.IsUnlocked(Rich))

		inv.Add(models.ResourceMoney, 9000)
		inv.Add(models.ResourceKey, 10)
		tr.EmitEvent(models.EventSceneVisited, nil)
		assert.True(t, tr.IsUnlocked(Rich))
		assert.True(t, tr.IsUnlocked(Collector))
	})

	t.Run("announced exactly once", func(t *testing.T) {
		rec := &announceRecorder{}
		tr := NewTracker(zap.NewNop(), nil, rec)
		tr.EmitEvent(winEvent(models.MinigamePoker, models.OutcomeWin))
		tr.EmitEvent(winEvent(models.MinigamePoker, models.OutcomeWin))
		assert.Equal(t, []string{string(FirstWin), string(PokerChampion)}, rec.names)
	})
}
