package content

import (
	"fmt"

	"lucky-wave-server/internal/models"
)

// validate fails fast on an unknown scene reference, unknown speaker,
// unknown outcome token or a broken terminal-action invariant, so that
// playback never hits a dangling reference at runtime.
func (l *Library) validate() error {
	for chID, ch := range l.chapters {
		if len(ch.Scenes) == 0 {
			return fmt.Errorf("content: chapter %q has no scenes", chID)
		}
		index := l.scenes[chID]
		for _, sc := range ch.Scenes {
			if err := l.validateScene(chID, index, sc); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Library) validateScene(chID models.ChapterID, index map[models.SceneID]*models.Scene, sc *models.Scene) error {
	where := fmt.Sprintf("content: chapter %q, scene %q", chID, sc.ID)

	// Терминальное действие: либо выборы, либо мини-игра, либо ничего.
	if len(sc.Choices) > 0 && sc.Minigame != nil {
		return fmt.Errorf("%s: has both choices and a minigame", where)
	}

	for _, cp := range sc.Characters {
		if _, ok := models.KnownSpeakers[cp.Name]; !ok {
			return fmt.Errorf("%s: unknown character %q", where, cp.Name)
		}
		if _, ok := models.KnownPositions[cp.Position]; !ok {
			return fmt.Errorf("%s: unknown position %q for %q", where, cp.Position, cp.Name)
		}
		if _, ok := models.KnownEmotions[cp.Emotion]; !ok {
			return fmt.Errorf("%s: unknown emotion %q for %q", where, cp.Emotion, cp.Name)
		}
	}

	if err := validateDialogues(where, sc.Dialogues); err != nil {
		return err
	}

	for i, choice := range sc.Choices {
		if err := validateSceneRef(where, index, choice.NextScene); err != nil {
			return fmt.Errorf("choice %d: %w", i, err)
		}
		switch choice.Required {
		case models.ResourceNone, models.ResourceKey, models.ResourceTicket:
		default:
			return fmt.Errorf("%s: choice %d requires unknown resource %q", where, i, choice.Required)
		}
	}

	if mg := sc.Minigame; mg != nil {
		if len(models.OutcomesFor(mg.Kind)) == 0 {
			return fmt.Errorf("%s: unknown minigame kind %q", where, mg.Kind)
		}
		for token, handler := range mg.Handlers {
			if !models.ValidOutcome(mg.Kind, token) {
				return fmt.Errorf("%s: outcome %q is not in %s vocabulary", where, token, mg.Kind)
			}
			if handler.NextScene != "" {
				if err := validateSceneRef(where, index, handler.NextScene); err != nil {
					return fmt.Errorf("outcome %q: %w", token, err)
				}
			}
			if err := validateDialogues(where, handler.Dialogues); err != nil {
				return fmt.Errorf("outcome %q: %w", token, err)
			}
		}
	}
	return nil
}

func validateDialogues(where string, lines []models.DialogueLine) error {
	for i, line := range lines {
		if _, ok := models.KnownSpeakers[line.Speaker]; !ok {
			return fmt.Errorf("%s: dialogue %d has unknown speaker %q", where, i, line.Speaker)
		}
		if line.Text == "" {
			return fmt.Errorf("%s: dialogue %d has empty text", where, i)
		}
	}
	return nil
}

func validateSceneRef(where string, index map[models.SceneID]*models.Scene, id models.SceneID) error {
	if id == models.SceneReturnToMenu {
		return nil // сентинел возврата в меню — не сцена
	}
	if _, ok := index[id]; !ok {
		return fmt.Errorf("%s: references unknown scene %q", where, id)
	}
	return nil
}
