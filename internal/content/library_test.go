package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lucky-wave-server/internal/models"
)

func TestNewLibrary(t *testing.T) {
	lib, err := NewLibrary()
	assert.NoError(t, err)
	assert.NotNil(t, lib)

	t.Run("chapter1 is loaded", func(t *testing.T) {
		ch := lib.GetChapter("chapter1")
		assert.NotNil(t, ch)
		assert.Equal(t, "First Wave", ch.Title)
		assert.NotEmpty(t, ch.Scenes)
	})

	t.Run("scene lookup", func(t *testing.T) {
		sc := lib.GetScene("chapter1", "intro")
		assert.NotNil(t, sc)
		assert.Equal(t, models.SceneID("intro"), sc.ID)
		assert.Len(t, sc.Dialogues, 5)

		assert.Nil(t, lib.GetScene("chapter1", "no_such_scene"))
		assert.Nil(t, lib.GetScene("no_such_chapter", "intro"))
	})

	t.Run("minigame scenes carry handlers", func(t *testing.T) {
		sc := lib.GetScene("chapter1", "bar_blackjack")
		assert.NotNil(t, sc)
		assert.NotNil(t, sc.Minigame)
		assert.Equal(t, models.MinigameBlackjack, sc.Minigame.Kind)
		assert.Contains(t, sc.Minigame.Handlers, models.OutcomeWin)
		assert.Contains(t, sc.Minigame.Handlers, models.OutcomeLose)
		assert.Contains(t, sc.Minigame.Handlers, models.OutcomeDraw)
	})

	t.Run("chapters list", func(t *testing.T) {
		assert.Equal(t, []models.ChapterID{"chapter1"}, lib.Chapters())
	})
}

func TestValidate(t *testing.T) {
	scene := func(id models.SceneID, mut func(*models.Scene)) *models.Scene {
		sc := &models.Scene{
			ID:         id,
			Background: "casino_lobby",
			Dialogues: []models.DialogueLine{
				{Speaker: models.SpeakerNarrator, Text: "..."},
			},
		}
		if mut != nil {
			mut(sc)
		}
		return sc
	}
	chapter := func(scenes ...*models.Scene) *models.Chapter {
		return &models.Chapter{ID: "test", Title: "Test", Scenes: scenes}
	}

	t.Run("empty chapter rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter())
		assert.ErrorContains(t, err, "no scenes")
	})

	t.Run("duplicate scene id rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", nil), scene("a", nil)))
		assert.ErrorContains(t, err, "duplicate scene")
	})

	t.Run("duplicate chapter id rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", nil)), chapter(scene("b", nil)))
		assert.ErrorContains(t, err, "duplicate chapter")
	})

	t.Run("choices and minigame are mutually exclusive", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Choices = []models.Choice{{Text: "go", NextScene: "a"}}
			sc.Minigame = &models.MinigameSpec{Kind: models.MinigameSlots}
		})))
		assert.ErrorContains(t, err, "both choices and a minigame")
	})

	t.Run("dangling choice reference rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Choices = []models.Choice{{Text: "go", NextScene: "missing"}}
		})))
		assert.ErrorContains(t, err, "unknown scene")
	})

	t.Run("return-to-menu sentinel is allowed", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Choices = []models.Choice{{Text: "exit", NextScene: models.SceneReturnToMenu}}
		})))
		assert.NoError(t, err)
	})

	t.Run("unknown speaker rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Dialogues = []models.DialogueLine{{Speaker: "ghost", Text: "boo"}}
		})))
		assert.ErrorContains(t, err, "unknown speaker")
	})

	t.Run("empty dialogue text rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Dialogues = []models.DialogueLine{{Speaker: models.SpeakerHero}}
		})))
		assert.ErrorContains(t, err, "empty text")
	})

	t.Run("unknown character placement rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Characters = []models.CharacterPlacement{
				{Name: "ghost", Position: models.PositionLeft, Emotion: "neutral"},
			}
		})))
		assert.ErrorContains(t, err, "unknown character")
	})

	t.Run("unknown emotion rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Characters = []models.CharacterPlacement{
				{Name: models.SpeakerHero, Position: models.PositionLeft, Emotion: "ecstatic"},
			}
		})))
		assert.ErrorContains(t, err, "unknown emotion")
	})

	t.Run("unknown required resource rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Choices = []models.Choice{{Text: "go", NextScene: "a", Required: "gem"}}
		})))
		assert.ErrorContains(t, err, "unknown resource")
	})

	t.Run("outcome outside kind vocabulary rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Minigame = &models.MinigameSpec{
				Kind: models.MinigamePoker,
				Handlers: map[models.OutcomeToken]models.OutcomeHandler{
					models.OutcomeJackpot: {NextScene: "a"},
				},
			}
		})))
		assert.ErrorContains(t, err, "not in poker vocabulary")
	})

	t.Run("handler with dangling next scene rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Minigame = &models.MinigameSpec{
				Kind: models.MinigameSlots,
				Handlers: map[models.OutcomeToken]models.OutcomeHandler{
					models.OutcomeJackpot: {NextScene: "missing"},
				},
			}
		})))
		assert.ErrorContains(t, err, "unknown scene")
	})

	t.Run("unknown minigame kind rejected", func(t *testing.T) {
		_, err := NewLibraryWith(chapter(scene("a", func(sc *models.Scene) {
			sc.Minigame = &models.MinigameSpec{Kind: "roulette"}
		})))
		assert.ErrorContains(t, err, "unknown minigame kind")
	})
}
