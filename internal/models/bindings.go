package models

// ResourceBindings is the navigator's view of the player's inventory.
// Mutations are synchronous and immediately consistent (in-process).
type ResourceBindings interface {
	// HasResource reports whether at least one unit of kind is held.
	HasResource(kind ResourceKind) bool
	// ConsumeResource removes one unit of kind. Returns false (and leaves
	// the amount unchanged) if no unit is available.
	ConsumeResource(kind ResourceKind) bool
	// GetResourceAmount returns the held amount of kind.
	GetResourceAmount(kind ResourceKind) int
}

// ImageRef указывает на подготовленное изображение. Получение и кеширование
// картинок — забота внешнего коллаборатора, движку важна только ссылка.
type ImageRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ImageBindings resolves visual resources for scenes. A nil result is valid
// and non-fatal: the scene plays without the visual.
//
// Character lookup is by name only — the base portrait is always used,
// regardless of CharacterPlacement.Emotion (the original rendering behaved
// this way; made explicit here).
type ImageBindings interface {
	GetBackground(sceneName string) *ImageRef
	GetCharacterImage(name SpeakerID) *ImageRef
}

// EventName типизирует имена игровых событий.
type EventName string

const (
	EventSceneVisited        EventName = "scene_visited"
	EventChoiceMade          EventName = "choice_made"
	EventMinigameWon         EventName = "minigame_won"
	EventMinigameLost        EventName = "minigame_lost"
	EventChapterCompleted    EventName = "chapter_completed"
	EventAchievementUnlocked EventName = "achievement_unlocked"
)

// EventSink receives engine events (achievement channel, metrics, message
// queue fan-out). Implementations must not call back into the engine.
type EventSink interface {
	EmitEvent(name EventName, payload map[string]any)
}
