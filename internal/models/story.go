package models

// ChapterID идентифицирует главу истории.
type ChapterID string

// SceneID идентифицирует сцену внутри главы.
type SceneID string

// SceneReturnToMenu is a sentinel scene reference: selecting a choice that
// points here ends the playthrough and returns the player to the main menu.
const SceneReturnToMenu SceneID = "main_menu"

// SpeakerID определяет, кто произносит реплику. Закрытый словарь,
// проверяется при загрузке контента.
type SpeakerID string

const (
	SpeakerNarrator  SpeakerID = "narrator"
	SpeakerHero      SpeakerID = "hero"
	SpeakerBartender SpeakerID = "bartender"
	SpeakerDealer    SpeakerID = "dealer"
	SpeakerTarget    SpeakerID = "target"
	SpeakerEmployee  SpeakerID = "employee"
)

// KnownSpeakers перечисляет допустимые значения SpeakerID.
var KnownSpeakers = map[SpeakerID]struct{}{
	SpeakerNarrator:  {},
	SpeakerHero:      {},
	SpeakerBartender: {},
	SpeakerDealer:    {},
	SpeakerTarget:    {},
	SpeakerEmployee:  {},
}

// DisplayName returns the name shown for a speaker in the dialogue box.
// The narrator speaks without a name.
func (s SpeakerID) DisplayName() string {
	switch s {
	case SpeakerNarrator:
		return ""
	case SpeakerHero:
		return "You"
	case SpeakerBartender:
		return "Bartender"
	case SpeakerDealer:
		return "Dealer"
	case SpeakerTarget:
		return "Target"
	case SpeakerEmployee:
		return "Employee"
	default:
		return string(s)
	}
}

// Position определяет положение персонажа на экране.
type Position string

const (
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
)

// KnownPositions перечисляет допустимые значения Position.
var KnownPositions = map[Position]struct{}{
	PositionLeft:   {},
	PositionCenter: {},
	PositionRight:  {},
}

// Emotion is authored character-state metadata. Image selection always uses
// the character's base portrait (see ImageBindings); emotion is surfaced to
// the presentation layer as-is.
type Emotion string

// KnownEmotions перечисляет эмоции, встречающиеся в контенте.
var KnownEmotions = map[Emotion]struct{}{
	"neutral": {}, "confident": {}, "observant": {}, "focused": {},
	"satisfied": {}, "impressed": {}, "cautious": {}, "determined": {},
	"triumphant": {},
}

// ResourceKind определяет вид ресурса, который может требоваться для выбора.
type ResourceKind string

const (
	ResourceNone   ResourceKind = ""
	ResourceKey    ResourceKind = "key"
	ResourceTicket ResourceKind = "ticket"
	ResourceMoney  ResourceKind = "money" // не используется в выборах, только в инвентаре
)

// MinigameKind определяет тип мини-игры, встроенной в сцену.
type MinigameKind string

const (
	MinigameBlackjack MinigameKind = "blackjack"
	MinigameSlots     MinigameKind = "slots"
	MinigamePoker     MinigameKind = "poker"
)

// OutcomeToken is the single result signal a minigame emits per launch.
// Each kind has its own closed vocabulary, see OutcomesFor.
type OutcomeToken string

const (
	OutcomeWin     OutcomeToken = "win"
	OutcomeLose    OutcomeToken = "lose"
	OutcomeDraw    OutcomeToken = "draw"
	OutcomeJackpot OutcomeToken = "jackpot"
	OutcomePartial OutcomeToken = "partial"
)

// OutcomesFor returns the closed outcome vocabulary for a minigame kind.
func OutcomesFor(kind MinigameKind) []OutcomeToken {
	switch kind {
	case MinigameBlackjack:
		return []OutcomeToken{OutcomeWin, OutcomeLose, OutcomeDraw}
	case MinigameSlots:
		return []OutcomeToken{OutcomeJackpot, OutcomeWin, OutcomePartial, OutcomeLose}
	case MinigamePoker:
		return []OutcomeToken{OutcomeWin, OutcomeLose}
	default:
		return nil
	}
}

// ValidOutcome reports whether token belongs to the kind's vocabulary.
func ValidOutcome(kind MinigameKind, token OutcomeToken) bool {
	for _, t := range OutcomesFor(kind) {
		if t == token {
			return true
		}
	}
	return false
}

// Chapter — неизменяемая авторская глава. Создается при загрузке контента
// и никогда не мутируется движком.
type Chapter struct {
	ID          ChapterID `json:"chapter_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Scenes      []*Scene  `json:"scenes"`
}

// CharacterPlacement describes one character visible in a scene.
type CharacterPlacement struct {
	Name     SpeakerID `json:"name"`
	Position Position  `json:"position"`
	Emotion  Emotion   `json:"emotion"`
}

// DialogueLine is a single line of scene dialogue.
type DialogueLine struct {
	Speaker SpeakerID `json:"speaker"`
	Text    string    `json:"text"`
}

// Choice is one selectable option at the end of a scene's dialogue.
// If Required is set, the choice is selectable only while the player holds
// at least one unit of that resource; selecting it consumes exactly one.
type Choice struct {
	Text      string       `json:"text"`
	NextScene SceneID      `json:"next_scene"`
	Required  ResourceKind `json:"required,omitempty"`
	Premium   bool         `json:"premium,omitempty"`
}

// OutcomeHandler maps a minigame outcome to follow-up content: an optional
// dialogue override played inside the same scene and/or a next scene.
type OutcomeHandler struct {
	NextScene SceneID        `json:"scene_id,omitempty"`
	Dialogues []DialogueLine `json:"dialogues,omitempty"`
}

// MinigameSpec embeds a minigame as a scene's terminal action.
type MinigameSpec struct {
	Kind     MinigameKind                    `json:"kind"`
	Handlers map[OutcomeToken]OutcomeHandler `json:"on_complete,omitempty"`
}

// Scene — атомарная единица контента. Инвариант: у сцены не может быть
// одновременно непустых Choices и Minigame; если нет ни того ни другого,
// сцена завершает главу.
type Scene struct {
	ID         SceneID              `json:"scene_id"`
	Background string               `json:"background"`
	Characters []CharacterPlacement `json:"characters,omitempty"`
	Dialogues  []DialogueLine       `json:"dialogues,omitempty"`
	Choices    []Choice             `json:"choices,omitempty"`
	Minigame   *MinigameSpec        `json:"minigame,omitempty"`
}
