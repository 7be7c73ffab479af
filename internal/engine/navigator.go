package engine

import (
	"fmt"

	"go.uber.org/zap"

	"lucky-wave-server/internal/content"
	"lucky-wave-server/internal/minigames"
	"lucky-wave-server/internal/models"
)

// SceneStatus — чего навигатор ждет от игрока в данный момент.
type SceneStatus string

const (
	// StatusDialogue — идет проигрывание диалога, ждем advance/skip.
	StatusDialogue SceneStatus = "dialogue"
	// StatusAwaitingChoice — диалог исчерпан, сцена предлагает выборы.
	StatusAwaitingChoice SceneStatus = "awaiting_choice"
	// StatusMinigame — сцена ждет действий в мини-игре.
	StatusMinigame SceneStatus = "minigame"
	// StatusChapterEnd — терминальная сцена, ждем внешнее "continue".
	StatusChapterEnd SceneStatus = "chapter_end"
	// StatusMainMenu — проигрывание завершено возвратом в меню.
	StatusMainMenu SceneStatus = "main_menu"
)

// PresentedChoice is one selectable option with its eligibility re-evaluated
// against the current resource counts at presentation time.
type PresentedChoice struct {
	Index      int                 `json:"index"`
	Text       string              `json:"text"`
	NextScene  models.SceneID      `json:"next_scene"`
	Required   models.ResourceKind `json:"required,omitempty"`
	Premium    bool                `json:"premium,omitempty"`
	Selectable bool                `json:"selectable"`
}

// MinigameLauncher creates minigame instances; *minigames.Factory is the
// production implementation.
type MinigameLauncher interface {
	Launch(kind models.MinigameKind) (minigames.Minigame, error)
}

// NavigatorDeps — зависимости навигатора. Images и Events опциональны.
type NavigatorDeps struct {
	Logger    *zap.Logger
	Library   *content.Library
	Playback  *Playback
	Resources models.ResourceBindings
	Images    models.ImageBindings
	Events    models.EventSink
	Minigames MinigameLauncher
}

// Navigator owns the only legal transitions between scenes: it loads
// chapters and scenes, feeds dialogue to playback, presents choices, launches
// minigames and maps their outcomes back into the story. It is not
// goroutine-safe; the session layer serializes all calls.
type Navigator struct {
	log       *zap.Logger
	library   *content.Library
	playback  *Playback
	resources models.ResourceBindings
	images    models.ImageBindings
	events    models.EventSink
	factory   MinigameLauncher

	state *models.SessionState
	scene *models.Scene

	// best-effort визуальные ресурсы текущей сцены
	background *models.ImageRef
	portraits  map[models.SpeakerID]*models.ImageRef

	// состояние мини-игры текущей сцены
	minigame     minigames.Minigame
	minigameDone bool

	// override-диалог обработчика исхода и отложенный переход после него
	overrideActive bool
	deferredNext   models.SceneID

	menuRequested    bool
	chapterCompleted bool
}

// NewNavigator создает навигатор без загруженной главы.
func NewNavigator(deps NavigatorDeps) *Navigator {
	return &Navigator{
		log:       deps.Logger.Named("Navigator"),
		library:   deps.Library,
		playback:  deps.Playback,
		resources: deps.Resources,
		images:    deps.Images,
		events:    deps.Events,
		factory:   deps.Minigames,
	}
}

// LoadChapter resets session state to the start of the chapter and loads its
// first scene.
func (n *Navigator) LoadChapter(id models.ChapterID) error {
	ch := n.library.GetChapter(id)
	if ch == nil {
		return fmt.Errorf("load chapter %q: %w", id, models.ErrChapterNotFound)
	}
	n.state = &models.SessionState{CurrentChapter: id}
	n.menuRequested = false
	n.chapterCompleted = false
	n.log.Info("глава загружена", zap.String("chapter", string(id)))
	return n.loadScene(ch.Scenes[0].ID)
}

// loadScene выполняет переход на сцену. Все проверки идут до первой
// мутации состояния, чтобы ошибка не оставила сессию полуобновленной.
func (n *Navigator) loadScene(id models.SceneID) error {
	sc := n.library.GetScene(n.state.CurrentChapter, id)
	if sc == nil {
		return fmt.Errorf("load scene %q: %w", id, models.ErrSceneNotFound)
	}

	n.scene = sc
	n.state.CurrentScene = id
	n.state.DialogueIndex = 0
	n.state.MarkVisited(id)

	n.minigame = nil
	n.minigameDone = false
	n.overrideActive = false
	n.deferredNext = ""

	n.fetchVisuals(sc)
	n.emit(models.EventSceneVisited, map[string]any{
		"chapter": string(n.state.CurrentChapter),
		"scene":   string(id),
	})

	n.playback.Start(sc.Dialogues)
	// сцена без реплик и терминального действия завершает главу сразу
	if n.Status() == StatusChapterEnd {
		n.noteChapterEnd()
	}
	n.log.Debug("сцена загружена",
		zap.String("scene", string(id)),
		zap.Int("dialogues", len(sc.Dialogues)))
	return nil
}

// fetchVisuals запрашивает фон и портреты. Отказ не блокирует сюжет:
// сцена играется без картинки.
func (n *Navigator) fetchVisuals(sc *models.Scene) {
	n.background = nil
	n.portraits = make(map[models.SpeakerID]*models.ImageRef, len(sc.Characters))
	if n.images == nil {
		return
	}
	if n.background = n.images.GetBackground(sc.Background); n.background == nil {
		n.log.Warn("фон не найден", zap.String("background", sc.Background))
	}
	for _, cp := range sc.Characters {
		if ref := n.images.GetCharacterImage(cp.Name); ref != nil {
			n.portraits[cp.Name] = ref
		} else {
			n.log.Warn("портрет не найден", zap.String("character", string(cp.Name)))
		}
	}
}

// Status derives what the navigator currently waits for.
func (n *Navigator) Status() SceneStatus {
	if n.menuRequested {
		return StatusMainMenu
	}
	if n.scene == nil {
		return StatusMainMenu
	}
	if n.playback.Status() != PlaybackExhausted {
		return StatusDialogue
	}
	if n.scene.Minigame != nil && !n.minigameDone {
		return StatusMinigame
	}
	if len(n.scene.Choices) > 0 {
		return StatusAwaitingChoice
	}
	return StatusChapterEnd
}

// Advance moves dialogue forward one line. Outside of dialogue playback the
// call is a benign no-op.
func (n *Navigator) Advance() error {
	if !n.playback.Advance() {
		return nil
	}
	n.state.DialogueIndex = n.playback.Index()
	if n.playback.Status() == PlaybackExhausted {
		return n.resolveTerminal()
	}
	return nil
}

// Skip completes the current line's reveal without changing position.
func (n *Navigator) Skip() { n.playback.Skip() }

// resolveTerminal разбирает, что делать после исчерпания диалога.
func (n *Navigator) resolveTerminal() error {
	if n.overrideActive {
		n.overrideActive = false
		next := n.deferredNext
		n.deferredNext = ""
		if next == models.SceneReturnToMenu {
			n.menuRequested = true
			return nil
		}
		if next != "" {
			return n.loadScene(next)
		}
		// без перехода терминальным действием остается сама сцена
		// (minigameDone уже выставлен, повторного запуска не будет)
	}
	if n.Status() == StatusChapterEnd {
		n.noteChapterEnd()
	}
	return nil
}

func (n *Navigator) noteChapterEnd() {
	if n.chapterCompleted {
		return
	}
	n.chapterCompleted = true
	n.emit(models.EventChapterCompleted, map[string]any{
		"chapter": string(n.state.CurrentChapter),
		"scene":   string(n.state.CurrentScene),
	})
	n.log.Info("глава пройдена", zap.String("chapter", string(n.state.CurrentChapter)))
}

// Choices returns the scene's options with per-call eligibility checks;
// counts are never cached since resources change between presentations.
func (n *Navigator) Choices() []PresentedChoice {
	if n.Status() != StatusAwaitingChoice {
		return nil
	}
	out := make([]PresentedChoice, len(n.scene.Choices))
	for i, c := range n.scene.Choices {
		out[i] = PresentedChoice{
			Index:      i,
			Text:       c.Text,
			NextScene:  c.NextScene,
			Required:   c.Required,
			Premium:    c.Premium,
			Selectable: c.Required == models.ResourceNone || n.resources.HasResource(c.Required),
		}
	}
	return out
}

// SelectChoice resolves the choice at index: consumes the required resource,
// records history and transitions. Resource consumption is re-validated here
// even though presentation pre-filters, to guard the race between
// presentation and selection.
func (n *Navigator) SelectChoice(index int) error {
	if n.Status() != StatusAwaitingChoice {
		return models.ErrNoChoicesPresented
	}
	if index < 0 || index >= len(n.scene.Choices) {
		return fmt.Errorf("choice %d of %d: %w", index, len(n.scene.Choices), models.ErrChoiceOutOfRange)
	}
	c := n.scene.Choices[index]
	if c.Required != models.ResourceNone {
		if !n.resources.ConsumeResource(c.Required) {
			return fmt.Errorf("choice %q needs %s: %w", c.Text, c.Required, models.ErrInsufficientResource)
		}
	}
	n.state.Choices = append(n.state.Choices, models.ChoiceRecord{
		SceneID:     n.scene.ID,
		ChoiceIndex: index,
		Text:        c.Text,
	})
	n.emit(models.EventChoiceMade, map[string]any{
		"scene":  string(n.scene.ID),
		"index":  index,
		"text":   c.Text,
		"target": string(c.NextScene),
	})
	if c.NextScene == models.SceneReturnToMenu {
		n.menuRequested = true
		n.playback.Stop()
		return nil
	}
	return n.loadScene(c.NextScene)
}

// MinigameAction feeds one player action into the scene's minigame, lazily
// launching the single allowed instance on first use. When the action
// produces the outcome, it is resolved into the story immediately.
func (n *Navigator) MinigameAction(action minigames.Action) (minigames.Result, error) {
	if n.Status() != StatusMinigame {
		return minigames.Result{}, models.ErrNoActiveMinigame
	}
	if n.minigame == nil {
		g, err := n.factory.Launch(n.scene.Minigame.Kind)
		if err != nil {
			return minigames.Result{}, fmt.Errorf("launch %s: %w", n.scene.Minigame.Kind, err)
		}
		n.minigame = g
		n.log.Debug("мини-игра запущена", zap.String("kind", string(g.Kind())))
	}
	res, err := n.minigame.Act(action)
	if err != nil {
		return minigames.Result{}, err
	}
	if res.Done {
		if err := n.resolveOutcome(res.Outcome); err != nil {
			return res, err
		}
	}
	return res, nil
}

// MinigameView returns the active instance's table state, or nil when no
// instance is launched.
func (n *Navigator) MinigameView() map[string]any {
	if n.minigame == nil {
		return nil
	}
	return n.minigame.View()
}

// MinigameKind returns the pending scene minigame kind, or "" if none.
func (n *Navigator) MinigameKind() models.MinigameKind {
	if n.scene == nil || n.scene.Minigame == nil {
		return ""
	}
	return n.scene.Minigame.Kind
}

// ExitMinigame discards the launched instance without an outcome and returns
// to the pre-launch scene state; the minigame may be launched again.
func (n *Navigator) ExitMinigame() error {
	if n.minigame == nil {
		return models.ErrNoActiveMinigame
	}
	n.minigame = nil
	n.log.Debug("мини-игра сброшена без исхода")
	return nil
}

// resolveOutcome maps the outcome token to authored follow-up content. A
// token with no handler intentionally falls back to the scene's own choices
// (or the chapter-terminal signal) as if no minigame had been specified.
func (n *Navigator) resolveOutcome(token models.OutcomeToken) error {
	kind := n.scene.Minigame.Kind
	n.minigame = nil
	n.minigameDone = true

	// победой считаются только win и jackpot; partial и draw идут в
	// статистику поражений вместе с lose
	event := models.EventMinigameLost
	if token == models.OutcomeWin || token == models.OutcomeJackpot {
		event = models.EventMinigameWon
	}
	n.emit(event, map[string]any{
		"kind":    string(kind),
		"outcome": string(token),
		"scene":   string(n.scene.ID),
	})

	handler, ok := n.scene.Minigame.Handlers[token]
	if !ok {
		n.log.Debug("исход без обработчика, остаются варианты сцены",
			zap.String("outcome", string(token)))
		if n.Status() == StatusChapterEnd {
			n.noteChapterEnd()
		}
		return nil
	}

	if len(handler.Dialogues) > 0 {
		// override: реплики обработчика заменяют диалог сцены, переход
		// откладывается до их исчерпания
		n.overrideActive = true
		n.deferredNext = handler.NextScene
		n.state.DialogueIndex = 0
		n.playback.Start(handler.Dialogues)
		return nil
	}
	if handler.NextScene == models.SceneReturnToMenu {
		n.menuRequested = true
		return nil
	}
	if handler.NextScene != "" {
		return n.loadScene(handler.NextScene)
	}
	if n.Status() == StatusChapterEnd {
		n.noteChapterEnd()
	}
	return nil
}

// Continue acknowledges a chapter-terminal scene and returns to the menu.
func (n *Navigator) Continue() error {
	if n.Status() != StatusChapterEnd {
		return nil
	}
	n.menuRequested = true
	n.playback.Stop()
	return nil
}

// Scene returns the current scene (nil before the first LoadChapter).
func (n *Navigator) Scene() *models.Scene { return n.scene }

// Background returns the resolved background image, possibly nil.
func (n *Navigator) Background() *models.ImageRef { return n.background }

// Portraits returns the resolved character portraits by name.
func (n *Navigator) Portraits() map[models.SpeakerID]*models.ImageRef { return n.portraits }

// Playback exposes the dialogue playback for read access.
func (n *Navigator) Playback() *Playback { return n.playback }

func (n *Navigator) emit(name models.EventName, payload map[string]any) {
	if n.events == nil {
		return
	}
	n.events.EmitEvent(name, payload)
}
