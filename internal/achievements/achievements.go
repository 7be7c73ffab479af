// Package achievements отслеживает статистику прохождения и открывает
// достижения по событиям движка.
package achievements

import (
	"sync"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// AchievementID идентифицирует достижение.
type AchievementID string

const (
	FirstWin        AchievementID = "first_win"
	BlackjackMaster AchievementID = "blackjack_master"
	SlotsJackpot    AchievementID = "slots_jackpot"
	PokerChampion   AchievementID = "poker_champion"
	Rich            AchievementID = "rich"
	Collector       AchievementID = "collector"
)

const (
	blackjackMasterWins = 3
	richThreshold       = 10000
	collectorThreshold  = 10
)

// Stats — накопленная статистика прохождения.
type Stats struct {
	ScenesVisited     int `json:"scenes_visited"`
	ChoicesMade       int `json:"choices_made"`
	MinigamesWon      int `json:"minigames_won"`
	MinigamesLost     int `json:"minigames_lost"`
	BlackjackWins     int `json:"blackjack_wins"`
	ChaptersCompleted int `json:"chapters_completed"`
}

// Tracker consumes engine events, keeps playthrough stats and unlocks
// achievements. Unlocks are announced once through the optional announce
// sink (toasts, message queue); the tracker never calls back into the
// engine.
type Tracker struct {
	mu       sync.Mutex
	log      *zap.Logger
	res      models.ResourceBindings
	announce models.EventSink

	stats    Stats
	unlocked map[AchievementID]bool
}

var _ models.EventSink = (*Tracker)(nil)

// NewTracker creates a tracker. resources is used for the balance-based
// achievements; announce may be nil.
func NewTracker(log *zap.Logger, resources models.ResourceBindings, announce models.EventSink) *Tracker {
	return &Tracker{
		log:      log.Named("Achievements"),
		res:      resources,
		announce: announce,
		unlocked: make(map[AchievementID]bool),
	}
}

// EmitEvent реализует models.EventSink.
func (t *Tracker) EmitEvent(name models.EventName, payload map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch name {
	case models.EventSceneVisited:
		t.stats.ScenesVisited++
	case models.EventChoiceMade:
		t.stats.ChoicesMade++
	case models.EventMinigameWon:
		t.stats.MinigamesWon++
		t.unlockLocked(FirstWin)
		kind, _ := payload["kind"].(string)
		switch models.MinigameKind(kind) {
		case models.MinigameBlackjack:
			t.stats.BlackjackWins++
			if t.stats.BlackjackWins >= blackjackMasterWins {
				t.unlockLocked(BlackjackMaster)
			}
		case models.MinigameSlots:
			if payload["outcome"] == string(models.OutcomeJackpot) {
				t.unlockLocked(SlotsJackpot)
			}
		case models.MinigamePoker:
			t.unlockLocked(PokerChampion)
		}
	case models.EventMinigameLost:
		t.stats.MinigamesLost++
	case models.EventChapterCompleted:
		t.stats.ChaptersCompleted++
	}

	if t.res != nil {
		if t.res.GetResourceAmount(models.ResourceMoney) >= richThreshold {
			t.unlockLocked(Rich)
		}
		if t.res.GetResourceAmount(models.ResourceKey) >= collectorThreshold {
			t.unlockLocked(Collector)
		}
	}
}

func (t *Tracker) unlockLocked(id AchievementID) {
	if t.unlocked[id] {
		return
	}
	t.unlocked[id] = true
	t.log.Info("достижение открыто", zap.String("achievement", string(id)))
	if t.announce != nil {
		t.announce.EmitEvent(models.EventAchievementUnlocked, map[string]any{
			"achievement": string(id),
		})
	}
}

// Stats returns a copy of the current statistics.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Unlocked returns the ids of unlocked achievements.
func (t *Tracker) Unlocked() []AchievementID {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]AchievementID, 0, len(t.unlocked))
	for id := range t.unlocked {
		out = append(out, id)
	}
	return out
}

// IsUnlocked reports whether the achievement has been earned.
func (t *Tracker) IsUnlocked(id AchievementID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlocked[id]
}
