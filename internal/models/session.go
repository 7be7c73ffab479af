package models

import "time"

// ChoiceRecord фиксирует один сделанный игроком выбор.
type ChoiceRecord struct {
	SceneID     SceneID `json:"scene_id"`
	ChoiceIndex int     `json:"choice_index"`
	Text        string  `json:"text"`
}

// SessionState is the mutable cursor defining "where the player is".
// It is owned by the navigator, captured wholesale for persistence and
// replaced wholesale on load — never partially merged.
type SessionState struct {
	CurrentChapter ChapterID      `json:"current_chapter"`
	CurrentScene   SceneID        `json:"current_scene"`
	DialogueIndex  int            `json:"current_dialogue_index"`
	VisitedScenes  []SceneID      `json:"visited_scenes"`
	Choices        []ChoiceRecord `json:"choices"`
}

// HasVisited reports whether the scene id is already in the visited set.
func (s *SessionState) HasVisited(id SceneID) bool {
	for _, v := range s.VisitedScenes {
		if v == id {
			return true
		}
	}
	return false
}

// MarkVisited добавляет сцену в множество посещенных (идемпотентно).
func (s *SessionState) MarkVisited(id SceneID) {
	if !s.HasVisited(id) {
		s.VisitedScenes = append(s.VisitedScenes, id)
	}
}

// Clone returns a deep copy, used both for snapshots handed to persistence
// and for restoring without aliasing the stored record.
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	cp := &SessionState{
		CurrentChapter: s.CurrentChapter,
		CurrentScene:   s.CurrentScene,
		DialogueIndex:  s.DialogueIndex,
		VisitedScenes:  make([]SceneID, len(s.VisitedScenes)),
		Choices:        make([]ChoiceRecord, len(s.Choices)),
	}
	copy(cp.VisitedScenes, s.VisitedScenes)
	copy(cp.Choices, s.Choices)
	return cp
}

// SaveRecord — одна запись в слоте сохранения. Слот 0 зарезервирован под
// быстрое сохранение, в остальном это обычный слот.
type SaveRecord struct {
	Slot      int           `json:"slot"`
	Timestamp time.Time     `json:"timestamp"`
	Preview   string        `json:"preview"`
	State     *SessionState `json:"game_state"`
}

// SaveSummary is the listing view of a save record (no full state).
type SaveSummary struct {
	Slot      int       `json:"slot"`
	Timestamp time.Time `json:"timestamp"`
	Preview   string    `json:"preview"`
}

// QuickSaveSlot — слот автосохранения.
const QuickSaveSlot = 0
