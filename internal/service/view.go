package service

import (
	"lucky-wave-server/internal/achievements"
	"lucky-wave-server/internal/engine"
	"lucky-wave-server/internal/models"
)

// CharacterView — персонаж сцены с разрешенным портретом.
type CharacterView struct {
	Name     models.SpeakerID `json:"name"`
	Display  string           `json:"display_name"`
	Position models.Position  `json:"position"`
	Emotion  models.Emotion   `json:"emotion"`
	Image    *models.ImageRef `json:"image,omitempty"`
}

// DialogueView — текущая реплика вместе с прогрессом раскрытия.
type DialogueView struct {
	Speaker  models.SpeakerID `json:"speaker"`
	Display  string           `json:"display_name"`
	Text     string           `json:"text"`
	Revealed string           `json:"revealed"`
	Index    int              `json:"index"`
	Total    int              `json:"total"`
}

// MinigameView — состояние мини-игры сцены.
type MinigameView struct {
	Kind  models.MinigameKind `json:"kind"`
	Table map[string]any      `json:"table,omitempty"`
}

// SessionView is the full presentation snapshot handed to the HTTP layer;
// it never exposes engine internals.
type SessionView struct {
	SessionID    string                       `json:"session_id"`
	PlayerID     string                       `json:"player_id"`
	Chapter      models.ChapterID             `json:"chapter"`
	ChapterTitle string                       `json:"chapter_title"`
	Scene        models.SceneID               `json:"scene"`
	Status       engine.SceneStatus           `json:"status"`
	Background   *models.ImageRef             `json:"background,omitempty"`
	Characters   []CharacterView              `json:"characters,omitempty"`
	Dialogue     *DialogueView                `json:"dialogue,omitempty"`
	Choices      []engine.PresentedChoice     `json:"choices,omitempty"`
	Minigame     *MinigameView                `json:"minigame,omitempty"`
	Resources    map[models.ResourceKind]int  `json:"resources"`
	Stats        achievements.Stats           `json:"stats"`
	Achievements []achievements.AchievementID `json:"achievements"`
}

// viewLocked собирает вид; вызывается под мьютексом сессии.
func (s *SessionService) viewLocked(sess *Session) *SessionView {
	nav := sess.nav
	view := &SessionView{
		SessionID:    sess.ID.String(),
		PlayerID:     sess.PlayerID,
		Status:       nav.Status(),
		Resources:    sess.inv.Counts(),
		Stats:        sess.tracker.Stats(),
		Achievements: sess.tracker.Unlocked(),
	}

	snap := nav.Snapshot()
	if snap != nil {
		view.Chapter = snap.CurrentChapter
		if ch := s.library.GetChapter(snap.CurrentChapter); ch != nil {
			view.ChapterTitle = ch.Title
		}
		view.Scene = snap.CurrentScene
	}

	sc := nav.Scene()
	if sc == nil {
		return view
	}

	view.Background = nav.Background()
	portraits := nav.Portraits()
	for _, cp := range sc.Characters {
		view.Characters = append(view.Characters, CharacterView{
			Name:     cp.Name,
			Display:  cp.Name.DisplayName(),
			Position: cp.Position,
			Emotion:  cp.Emotion,
			Image:    portraits[cp.Name],
		})
	}

	playback := nav.Playback()
	if line, ok := playback.Current(); ok {
		view.Dialogue = &DialogueView{
			Speaker:  line.Speaker,
			Display:  line.Speaker.DisplayName(),
			Text:     line.Text,
			Revealed: playback.RevealedText(),
			Index:    playback.Index(),
			Total:    playback.Count(),
		}
	}

	view.Choices = nav.Choices()
	if view.Status == engine.StatusMinigame {
		view.Minigame = &MinigameView{
			Kind:  nav.MinigameKind(),
			Table: nav.MinigameView(),
		}
	}
	return view
}
