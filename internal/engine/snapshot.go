package engine

import (
	"fmt"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// Snapshot captures the full session position as a deep copy, suitable for
// persistence. The dialogue index reflects the playback cursor at call time.
func (n *Navigator) Snapshot() *models.SessionState {
	if n.state == nil {
		return nil
	}
	snap := n.state.Clone()
	snap.DialogueIndex = n.playback.Index()
	return snap
}

// Restore replaces the session position wholesale from a snapshot — never a
// partial merge. All lookups happen before the first mutation, so a bad
// snapshot leaves the current position untouched.
//
// The scene's own dialogue set is replayed from the saved index; a snapshot
// taken mid-override (the index may exceed the scene's line count) clamps to
// the end of the scene's dialogue. Reveal restarts from character 0, a
// mid-reveal position is not resumable.
func (n *Navigator) Restore(snap *models.SessionState) error {
	if snap == nil {
		return fmt.Errorf("restore: %w", models.ErrInvalidScene)
	}
	ch := n.library.GetChapter(snap.CurrentChapter)
	if ch == nil {
		return fmt.Errorf("restore chapter %q: %w", snap.CurrentChapter, models.ErrChapterNotFound)
	}
	sc := n.library.GetScene(snap.CurrentChapter, snap.CurrentScene)
	if sc == nil {
		return fmt.Errorf("restore scene %q: %w", snap.CurrentScene, models.ErrSceneNotFound)
	}

	n.state = snap.Clone()
	n.scene = sc
	n.menuRequested = false
	n.chapterCompleted = false
	n.minigame = nil
	n.minigameDone = false
	n.overrideActive = false
	n.deferredNext = ""

	n.fetchVisuals(sc)

	index := snap.DialogueIndex
	if index > len(sc.Dialogues) {
		index = len(sc.Dialogues)
	}
	n.state.DialogueIndex = index
	n.playback.StartAt(sc.Dialogues, index)

	n.log.Info("состояние восстановлено",
		zap.String("chapter", string(snap.CurrentChapter)),
		zap.String("scene", string(snap.CurrentScene)),
		zap.Int("dialogue", index))
	return nil
}

// Preview derives the human-readable save caption: "chapter title - scene".
func (n *Navigator) Preview() string {
	if n.state == nil {
		return ""
	}
	title := string(n.state.CurrentChapter)
	if ch := n.library.GetChapter(n.state.CurrentChapter); ch != nil {
		title = ch.Title
	}
	return fmt.Sprintf("%s - %s", title, n.state.CurrentScene)
}
