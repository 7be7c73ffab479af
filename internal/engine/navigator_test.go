package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lucky-wave-server/internal/content"
	"lucky-wave-server/internal/minigames"
	"lucky-wave-server/internal/models"
)

type fakeResources struct {
	counts map[models.ResourceKind]int
}

func newFakeResources() *fakeResources {
	return &fakeResources{counts: make(map[models.ResourceKind]int)}
}

func (f *fakeResources) HasResource(kind models.ResourceKind) bool { return f.counts[kind] > 0 }

func (f *fakeResources) ConsumeResource(kind models.ResourceKind) bool {
	if f.counts[kind] <= 0 {
		return false
	}
	f.counts[kind]--
	return true
}

func (f *fakeResources) GetResourceAmount(kind models.ResourceKind) int { return f.counts[kind] }

type recordedEvent struct {
	name    models.EventName
	payload map[string]any
}

type recordingSink struct {
	events []recordedEvent
}

func (s *recordingSink) EmitEvent(name models.EventName, payload map[string]any) {
	s.events = append(s.events, recordedEvent{name: name, payload: payload})
}

func (s *recordingSink) names() []models.EventName {
	out := make([]models.EventName, len(s.events))
	for i, e := range s.events {
		out[i] = e.name
	}
	return out
}

// scriptedGame отдает заранее заданные результаты ходов.
type scriptedGame struct {
	kind    models.MinigameKind
	results []minigames.Result
	step    int
}

func (g *scriptedGame) Kind() models.MinigameKind { return g.kind }

func (g *scriptedGame) Act(_ minigames.Action) (minigames.Result, error) {
	if g.step >= len(g.results) {
		return minigames.Result{}, minigames.ErrFinished
	}
	r := g.results[g.step]
	g.step++
	return r, nil
}

func (g *scriptedGame) View() map[string]any { return map[string]any{"step": g.step} }

type scriptedLauncher struct {
	results  []minigames.Result
	launches int
}

func (l *scriptedLauncher) Launch(kind models.MinigameKind) (minigames.Minigame, error) {
	l.launches++
	return &scriptedGame{kind: kind, results: l.results}, nil
}

type navFixture struct {
	nav       *Navigator
	resources *fakeResources
	sink      *recordingSink
	launcher  *scriptedLauncher
}

func newFixture(t *testing.T, lib *content.Library, outcomes ...minigames.Result) *navFixture {
	t.Helper()
	f := &navFixture{
		resources: newFakeResources(),
		sink:      &recordingSink{},
		launcher:  &scriptedLauncher{results: outcomes},
	}
	f.nav = NewNavigator(NavigatorDeps{
		Logger:    zap.NewNop(),
		Library:   lib,
		Playback:  NewPlayback(zap.NewNop(), 0),
		Resources: f.resources,
		Events:    f.sink,
		Minigames: f.launcher,
	})
	return f
}

func storyLibrary(t *testing.T) *content.Library {
	t.Helper()
	lib, err := content.NewLibrary()
	assert.NoError(t, err)
	return lib
}

// advanceAll прокручивает диалог текущей сцены до терминального действия.
func advanceAll(t *testing.T, nav *Navigator) {
	t.Helper()
	for i := 0; nav.Status() == StatusDialogue; i++ {
		assert.NoError(t, nav.Advance())
		if i > 100 {
			t.Fatal("dialogue never exhausts")
		}
	}
}

func TestNavigatorIntroScenario(t *testing.T) {
	f := newFixture(t, storyLibrary(t))

	assert.NoError(t, f.nav.LoadChapter("chapter1"))
	assert.Equal(t, StatusDialogue, f.nav.Status())
	assert.Len(t, f.nav.Scene().Dialogues, 5)

	// пять реплик — пять advance до вариантов
	for i := 0; i < 5; i++ {
		assert.NoError(t, f.nav.Advance())
	}
	assert.Equal(t, StatusAwaitingChoice, f.nav.Status())

	choices := f.nav.Choices()
	assert.Len(t, choices, 1)
	assert.Equal(t, "Enter the casino", choices[0].Text)
	assert.True(t, choices[0].Selectable)

	assert.NoError(t, f.nav.SelectChoice(0))
	assert.Equal(t, models.SceneID("inside"), f.nav.Scene().ID)

	snap := f.nav.Snapshot()
	assert.Contains(t, snap.VisitedScenes, models.SceneID("intro"))
	assert.Contains(t, snap.VisitedScenes, models.SceneID("inside"))
	assert.Equal(t, []models.EventName{
		models.EventSceneVisited,
		models.EventChoiceMade,
		models.EventSceneVisited,
	}, f.sink.names())
}

func TestNavigatorChapterLookup(t *testing.T) {
	f := newFixture(t, storyLibrary(t))
	assert.ErrorIs(t, f.nav.LoadChapter("chapter99"), models.ErrChapterNotFound)
}

func TestNavigatorChoices(t *testing.T) {
	lib := storyLibrary(t)

	t.Run("required resource gates selectability", func(t *testing.T) {
		f := newFixture(t, lib)
		assert.NoError(t, f.nav.LoadChapter("chapter1"))
		advanceAll(t, f.nav)
		assert.NoError(t, f.nav.SelectChoice(0)) // inside
		advanceAll(t, f.nav)

		choices := f.nav.Choices()
		assert.Len(t, choices, 3)
		assert.Equal(t, models.ResourceKey, choices[2].Required)
		assert.False(t, choices[2].Selectable)

		f.resources.counts[models.ResourceKey] = 1
		assert.True(t, f.nav.Choices()[2].Selectable)
	})

	t.Run("selection without resource fails and consumes nothing", func(t *testing.T) {
		f := newFixture(t, lib)
		assert.NoError(t, f.nav.LoadChapter("chapter1"))
		advanceAll(t, f.nav)
		assert.NoError(t, f.nav.SelectChoice(0))
		advanceAll(t, f.nav)

		err := f.nav.SelectChoice(2) // VIP требует ключ
		assert.ErrorIs(t, err, models.ErrInsufficientResource)
		assert.Equal(t, 0, f.resources.GetResourceAmount(models.ResourceKey))
		assert.Empty(t, f.nav.Snapshot().Choices)
		assert.Equal(t, models.SceneID("inside"), f.nav.Scene().ID)
	})

	t.Run("selection consumes exactly one unit", func(t *testing.T) {
		f := newFixture(t, lib)
		f.resources.counts[models.ResourceKey] = 2
		assert.NoError(t, f.nav.LoadChapter("chapter1"))
		advanceAll(t, f.nav)
		assert.NoError(t, f.nav.SelectChoice(0))
		advanceAll(t, f.nav)

		assert.NoError(t, f.nav.SelectChoice(2))
		assert.Equal(t, models.SceneID("vip"), f.nav.Scene().ID)
		assert.Equal(t, 1, f.resources.GetResourceAmount(models.ResourceKey))
	})

	t.Run("index out of range", func(t *testing.T) {
		f := newFixture(t, lib)
		assert.NoError(t, f.nav.LoadChapter("chapter1"))
		advanceAll(t, f.nav)
		assert.ErrorIs(t, f.nav.SelectChoice(5), models.ErrChoiceOutOfRange)
		assert.ErrorIs(t, f.nav.SelectChoice(-1), models.ErrChoiceOutOfRange)
	})

	t.Run("selection during dialogue is rejected", func(t *testing.T) {
		f := newFixture(t, lib)
		assert.NoError(t, f.nav.LoadChapter("chapter1"))
		assert.ErrorIs(t, f.nav.SelectChoice(0), models.ErrNoChoicesPresented)
	})
}

// minigameLibrary собирает минимальную главу со слотами: обработан только
// джекпот, остальные исходы падают в фолбэк.
func minigameLibrary(t *testing.T, handlers map[models.OutcomeToken]models.OutcomeHandler) *content.Library {
	t.Helper()
	lib, err := content.NewLibraryWith(&models.Chapter{
		ID:    "test",
		Title: "Test",
		Scenes: []*models.Scene{
			{
				ID:         "start",
				Background: "casino_tables",
				Dialogues: []models.DialogueLine{
					{Speaker: models.SpeakerNarrator, Text: "The machine waits."},
				},
				Minigame: &models.MinigameSpec{
					Kind:     models.MinigameSlots,
					Handlers: handlers,
				},
			},
			{
				ID:         "slots_success",
				Background: "casino_tables",
				Dialogues: []models.DialogueLine{
					{Speaker: models.SpeakerHero, Text: "Done."},
				},
			},
		},
	})
	assert.NoError(t, err)
	return lib
}

func TestNavigatorMinigame(t *testing.T) {
	jackpotOnly := map[models.OutcomeToken]models.OutcomeHandler{
		models.OutcomeJackpot: {NextScene: "slots_success"},
	}

	t.Run("handled outcome transitions", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, jackpotOnly),
			minigames.Result{Done: true, Outcome: models.OutcomeJackpot})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)
		assert.Equal(t, StatusMinigame, f.nav.Status())

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		assert.Equal(t, models.SceneID("slots_success"), f.nav.Scene().ID)
		assert.Contains(t, f.sink.names(), models.EventMinigameWon)
	})

	t.Run("unhandled outcome falls back without error", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, jackpotOnly),
			minigames.Result{Done: true, Outcome: models.OutcomeWin})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		// сцена без вариантов: фолбэк оставляет терминал главы
		assert.Equal(t, models.SceneID("start"), f.nav.Scene().ID)
		assert.Equal(t, StatusChapterEnd, f.nav.Status())
		assert.Contains(t, f.sink.names(), models.EventChapterCompleted)
	})

	t.Run("minigame is launched lazily exactly once", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, jackpotOnly),
			minigames.Result{}, // первый ход не завершает игру
			minigames.Result{Done: true, Outcome: models.OutcomeJackpot})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)
		assert.Equal(t, 0, f.launcher.launches)

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		_, err = f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		assert.Equal(t, 1, f.launcher.launches)
	})

	t.Run("partial counts toward losses", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, jackpotOnly),
			minigames.Result{Done: true, Outcome: models.OutcomePartial})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		assert.Contains(t, f.sink.names(), models.EventMinigameLost)
		assert.NotContains(t, f.sink.names(), models.EventMinigameWon)
	})

	t.Run("draw counts toward losses", func(t *testing.T) {
		lib, err := content.NewLibraryWith(&models.Chapter{
			ID:    "bj",
			Title: "BJ",
			Scenes: []*models.Scene{{
				ID:         "table",
				Background: "casino_bar",
				Dialogues: []models.DialogueLine{
					{Speaker: models.SpeakerDealer, Text: "Place your bets."},
				},
				Minigame: &models.MinigameSpec{Kind: models.MinigameBlackjack},
			}},
		})
		assert.NoError(t, err)

		f := newFixture(t, lib,
			minigames.Result{Done: true, Outcome: models.OutcomeDraw})
		assert.NoError(t, f.nav.LoadChapter("bj"))
		advanceAll(t, f.nav)

		_, err = f.nav.MinigameAction(minigames.ActionStand)
		assert.NoError(t, err)
		assert.Contains(t, f.sink.names(), models.EventMinigameLost)
		assert.NotContains(t, f.sink.names(), models.EventMinigameWon)
	})

	t.Run("action outside minigame state", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, jackpotOnly))
		assert.NoError(t, f.nav.LoadChapter("test"))
		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.ErrorIs(t, err, models.ErrNoActiveMinigame)
	})

	t.Run("no relaunch after the outcome is consumed", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, jackpotOnly),
			minigames.Result{Done: true, Outcome: models.OutcomeLose})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		_, err = f.nav.MinigameAction(minigames.ActionSpin)
		assert.ErrorIs(t, err, models.ErrNoActiveMinigame)
		assert.Equal(t, 1, f.launcher.launches)
	})

	t.Run("exit discards the instance without an outcome", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, jackpotOnly),
			minigames.Result{}, minigames.Result{})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)

		assert.ErrorIs(t, f.nav.ExitMinigame(), models.ErrNoActiveMinigame)

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		assert.NoError(t, f.nav.ExitMinigame())

		// сцена не изменилась, игру можно запустить заново
		assert.Equal(t, StatusMinigame, f.nav.Status())
		_, err = f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		assert.Equal(t, 2, f.launcher.launches)
	})
}

func TestNavigatorOutcomeOverride(t *testing.T) {
	handlers := map[models.OutcomeToken]models.OutcomeHandler{
		models.OutcomeJackpot: {
			NextScene: "slots_success",
			Dialogues: []models.DialogueLine{
				{Speaker: models.SpeakerNarrator, Text: "JACKPOT!"},
				{Speaker: models.SpeakerHero, Text: "Finally."},
			},
		},
		models.OutcomeLose: {
			Dialogues: []models.DialogueLine{
				{Speaker: models.SpeakerNarrator, Text: "Nothing."},
			},
		},
	}

	t.Run("override plays in the same scene, then transitions", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, handlers),
			minigames.Result{Done: true, Outcome: models.OutcomeJackpot})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)

		// реплики обработчика заменяют диалог сцены, сцена та же
		assert.Equal(t, StatusDialogue, f.nav.Status())
		assert.Equal(t, models.SceneID("start"), f.nav.Scene().ID)
		line, ok := f.nav.Playback().Current()
		assert.True(t, ok)
		assert.Equal(t, "JACKPOT!", line.Text)

		assert.NoError(t, f.nav.Advance())
		assert.NoError(t, f.nav.Advance())
		assert.Equal(t, models.SceneID("slots_success"), f.nav.Scene().ID)
	})

	t.Run("override without next scene ends at the scene terminal", func(t *testing.T) {
		f := newFixture(t, minigameLibrary(t, handlers),
			minigames.Result{Done: true, Outcome: models.OutcomeLose})
		assert.NoError(t, f.nav.LoadChapter("test"))
		advanceAll(t, f.nav)

		_, err := f.nav.MinigameAction(minigames.ActionSpin)
		assert.NoError(t, err)
		assert.Equal(t, StatusDialogue, f.nav.Status())

		assert.NoError(t, f.nav.Advance())
		// исход уже потреблен, мини-игра не предлагается снова
		assert.Equal(t, StatusChapterEnd, f.nav.Status())
	})
}

func TestNavigatorRealPokerFold(t *testing.T) {
	// фолд детерминирован: раздача всегда отдается
	f := newFixture(t, storyLibrary(t))
	f.nav.factory = minigames.NewFactory(zap.NewNop(), func() *rand.Rand {
		return rand.New(rand.NewSource(1))
	})

	assert.NoError(t, f.nav.LoadChapter("chapter1"))
	advanceAll(t, f.nav)
	assert.NoError(t, f.nav.SelectChoice(0)) // inside
	advanceAll(t, f.nav)
	assert.NoError(t, f.nav.SelectChoice(1)) // tables
	advanceAll(t, f.nav)
	assert.NoError(t, f.nav.SelectChoice(1)) // back to bar
	advanceAll(t, f.nav)
	assert.NoError(t, f.nav.SelectChoice(1)) // negotiate
	advanceAll(t, f.nav)
	assert.NoError(t, f.nav.SelectChoice(0)) // poker tournament
	advanceAll(t, f.nav)
	assert.Equal(t, StatusMinigame, f.nav.Status())

	res, err := f.nav.MinigameAction(minigames.ActionFold)
	assert.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, models.OutcomeLose, res.Outcome)

	// override-реплика обработчика проигрыша, затем переход
	assert.Equal(t, StatusDialogue, f.nav.Status())
	advanceAll(t, f.nav)
	assert.Equal(t, models.SceneID("poker_lose"), f.nav.Scene().ID)
	assert.Contains(t, f.sink.names(), models.EventMinigameLost)
}

func TestNavigatorEmptyDialogueTerminal(t *testing.T) {
	// терминальная сцена вообще без реплик завершает главу сразу при загрузке
	lib, err := content.NewLibraryWith(&models.Chapter{
		ID:     "epilogue",
		Title:  "Epilogue",
		Scenes: []*models.Scene{{ID: "only", Background: "casino_lobby"}},
	})
	assert.NoError(t, err)

	f := newFixture(t, lib)
	assert.NoError(t, f.nav.LoadChapter("epilogue"))
	assert.Equal(t, StatusChapterEnd, f.nav.Status())
	assert.Equal(t, []models.EventName{
		models.EventSceneVisited,
		models.EventChapterCompleted,
	}, f.sink.names())
}

func TestNavigatorReturnToMenu(t *testing.T) {
	f := newFixture(t, storyLibrary(t))
	assert.NoError(t, f.nav.LoadChapter("chapter1"))
	assert.NoError(t, f.nav.Restore(&models.SessionState{
		CurrentChapter: "chapter1",
		CurrentScene:   "vip_mission_complete",
		DialogueIndex:  3,
	}))
	assert.Equal(t, StatusAwaitingChoice, f.nav.Status())

	assert.NoError(t, f.nav.SelectChoice(0))
	assert.Equal(t, StatusMainMenu, f.nav.Status())
}

func TestNavigatorSnapshotRoundTrip(t *testing.T) {
	lib := storyLibrary(t)
	f := newFixture(t, lib)
	assert.NoError(t, f.nav.LoadChapter("chapter1"))
	advanceAll(t, f.nav)
	assert.NoError(t, f.nav.SelectChoice(0))
	assert.NoError(t, f.nav.Advance())
	assert.NoError(t, f.nav.Advance())

	snap := f.nav.Snapshot()
	assert.Equal(t, models.SceneID("inside"), snap.CurrentScene)
	assert.Equal(t, 2, snap.DialogueIndex)

	t.Run("restore into a fresh navigator", func(t *testing.T) {
		g := newFixture(t, lib)
		assert.NoError(t, g.nav.Restore(snap))

		restored := g.nav.Snapshot()
		assert.Equal(t, snap.CurrentChapter, restored.CurrentChapter)
		assert.Equal(t, snap.CurrentScene, restored.CurrentScene)
		assert.Equal(t, snap.DialogueIndex, restored.DialogueIndex)
		assert.Equal(t, snap.VisitedScenes, restored.VisitedScenes)
		assert.Equal(t, snap.Choices, restored.Choices)
		assert.Equal(t, StatusDialogue, g.nav.Status())

		line, ok := g.nav.Playback().Current()
		assert.True(t, ok)
		assert.Equal(t, f.nav.Scene().Dialogues[2].Text, line.Text)
	})

	t.Run("snapshot is a deep copy", func(t *testing.T) {
		snap.VisitedScenes[0] = "mutated"
		fresh := f.nav.Snapshot()
		assert.Equal(t, models.SceneID("intro"), fresh.VisitedScenes[0])
	})

	t.Run("restore validates lookups before mutating", func(t *testing.T) {
		g := newFixture(t, lib)
		assert.NoError(t, g.nav.LoadChapter("chapter1"))

		err := g.nav.Restore(&models.SessionState{CurrentChapter: "void", CurrentScene: "intro"})
		assert.ErrorIs(t, err, models.ErrChapterNotFound)
		err = g.nav.Restore(&models.SessionState{CurrentChapter: "chapter1", CurrentScene: "void"})
		assert.ErrorIs(t, err, models.ErrSceneNotFound)

		// позиция не тронута
		assert.Equal(t, models.SceneID("intro"), g.nav.Scene().ID)
	})

	t.Run("dialogue index past scene length clamps", func(t *testing.T) {
		g := newFixture(t, lib)
		assert.NoError(t, g.nav.Restore(&models.SessionState{
			CurrentChapter: "chapter1",
			CurrentScene:   "intro",
			DialogueIndex:  42,
		}))
		assert.Equal(t, StatusAwaitingChoice, g.nav.Status())
	})
}

func TestNavigatorPreview(t *testing.T) {
	f := newFixture(t, storyLibrary(t))
	assert.Empty(t, f.nav.Preview())

	assert.NoError(t, f.nav.LoadChapter("chapter1"))
	assert.Equal(t, "First Wave - intro", f.nav.Preview())
}
