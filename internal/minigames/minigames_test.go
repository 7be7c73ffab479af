package minigames

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

func seededFactory(seed int64) *Factory {
	return NewFactory(zap.NewNop(), func() *rand.Rand {
		return rand.New(rand.NewSource(seed))
	})
}

func TestFactory(t *testing.T) {
	f := seededFactory(1)

	for _, kind := range []models.MinigameKind{
		models.MinigameBlackjack, models.MinigameSlots, models.MinigamePoker,
	} {
		g, err := f.Launch(kind)
		assert.NoError(t, err)
		assert.Equal(t, kind, g.Kind())
	}

	_, err := f.Launch("roulette")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []card
		want int
	}{
		{"soft ace", []card{{Rank: "A"}, {Rank: "6"}}, 17},
		{"ace demoted after draw", []card{{Rank: "A"}, {Rank: "6"}, {Rank: "10"}}, 17},
		{"two aces", []card{{Rank: "A"}, {Rank: "A"}}, 12},
		{"blackjack", []card{{Rank: "A"}, {Rank: "K"}}, 21},
		{"faces", []card{{Rank: "J"}, {Rank: "Q"}, {Rank: "K"}}, 30},
		{"pips", []card{{Rank: "2"}, {Rank: "9"}}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handValue(tt.hand))
		})
	}
}

func TestBlackjack(t *testing.T) {
	t.Run("stand resolves with one outcome", func(t *testing.T) {
		g, err := seededFactory(7).Launch(models.MinigameBlackjack)
		assert.NoError(t, err)

		res, err := g.Act(ActionStand)
		assert.NoError(t, err)
		assert.True(t, res.Done)
		assert.True(t, models.ValidOutcome(models.MinigameBlackjack, res.Outcome))

		_, err = g.Act(ActionHit)
		assert.ErrorIs(t, err, ErrFinished)
	})

	t.Run("hitting past 21 busts", func(t *testing.T) {
		// добираем до перебора: максимум 19 карт держат руку <= 21
		for seed := int64(0); seed < 20; seed++ {
			g, err := seededFactory(seed).Launch(models.MinigameBlackjack)
			assert.NoError(t, err)
			var res Result
			for i := 0; i < 21 && !res.Done; i++ {
				res, err = g.Act(ActionHit)
				assert.NoError(t, err)
			}
			assert.True(t, res.Done, "seed %d: hand must bust within 21 draws", seed)
			assert.Equal(t, models.OutcomeLose, res.Outcome)
		}
	})

	t.Run("dealer draw terminates", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			bj := newBlackjack(zap.NewNop(), rand.New(rand.NewSource(seed)))
			res := bj.stand()
			assert.True(t, res.Done)
			assert.GreaterOrEqual(t, handValue(bj.dealer), 17, "seed %d", seed)
			assert.LessOrEqual(t, len(bj.dealer), 21, "seed %d", seed)
		}
	})

	t.Run("unknown action rejected", func(t *testing.T) {
		g, err := seededFactory(3).Launch(models.MinigameBlackjack)
		assert.NoError(t, err)
		_, err = g.Act(ActionSpin)
		assert.ErrorIs(t, err, ErrUnknownAction)
	})

	t.Run("view hides dealer hole card until done", func(t *testing.T) {
		g, err := seededFactory(5).Launch(models.MinigameBlackjack)
		assert.NoError(t, err)
		view := g.View()
		assert.Contains(t, view["dealer"].([]string), "??")

		_, err = g.Act(ActionStand)
		assert.NoError(t, err)
		assert.NotContains(t, g.View()["dealer"].([]string), "??")
	})
}

func TestSlots(t *testing.T) {
	t.Run("one spin resolves", func(t *testing.T) {
		g, err := seededFactory(11).Launch(models.MinigameSlots)
		assert.NoError(t, err)

		res, err := g.Act(ActionSpin)
		assert.NoError(t, err)
		assert.True(t, res.Done)
		assert.True(t, models.ValidOutcome(models.MinigameSlots, res.Outcome))

		_, err = g.Act(ActionSpin)
		assert.ErrorIs(t, err, ErrFinished)
	})

	t.Run("outcome mapping", func(t *testing.T) {
		tests := []struct {
			name  string
			reels []string
			want  models.OutcomeToken
		}{
			{"three sevens", []string{"7️⃣", "7️⃣", "7️⃣"}, models.OutcomeJackpot},
			{"three of a kind", []string{"💎", "💎", "💎"}, models.OutcomeWin},
			{"pair left", []string{"🍒", "🍒", "🍋"}, models.OutcomePartial},
			{"pair outer", []string{"🍒", "🍋", "🍒"}, models.OutcomePartial},
			{"nothing", []string{"🍒", "🍋", "🍊"}, models.OutcomeLose},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				g := &slots{log: zap.NewNop(), reels: tt.reels}
				assert.Equal(t, tt.want, g.resolve())
			})
		}
	})

	t.Run("only spin is accepted", func(t *testing.T) {
		g, err := seededFactory(11).Launch(models.MinigameSlots)
		assert.NoError(t, err)
		_, err = g.Act(ActionHit)
		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}

func TestPoker(t *testing.T) {
	t.Run("fold always loses", func(t *testing.T) {
		g, err := seededFactory(13).Launch(models.MinigamePoker)
		assert.NoError(t, err)

		res, err := g.Act(ActionFold)
		assert.NoError(t, err)
		assert.True(t, res.Done)
		assert.Equal(t, models.OutcomeLose, res.Outcome)

		_, err = g.Act(ActionCall)
		assert.ErrorIs(t, err, ErrFinished)
	})

	t.Run("call resolves within vocabulary", func(t *testing.T) {
		won, lost := 0, 0
		for seed := int64(0); seed < 100; seed++ {
			g, err := seededFactory(seed).Launch(models.MinigamePoker)
			assert.NoError(t, err)
			res, err := g.Act(ActionCall)
			assert.NoError(t, err)
			assert.True(t, res.Done)
			switch res.Outcome {
			case models.OutcomeWin:
				won++
			case models.OutcomeLose:
				lost++
			default:
				t.Fatalf("outcome %q outside poker vocabulary", res.Outcome)
			}
		}
		assert.Positive(t, won)
		assert.Positive(t, lost)
	})
}
