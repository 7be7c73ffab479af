// Package content holds the authored story data and its load-time
// validation. The structures are static and trusted: the engine treats them
// as read-only, and every cross-reference (scene ids, speakers, outcome
// tokens) is checked once here instead of failing mid-playback.
package content

import (
	"fmt"

	"lucky-wave-server/internal/models"
)

// Library is the immutable chapter/scene catalogue.
type Library struct {
	chapters map[models.ChapterID]*models.Chapter
	// индекс сцен по (глава, сцена) для O(1) поиска
	scenes map[models.ChapterID]map[models.SceneID]*models.Scene
}

// NewLibrary assembles the built-in story and runs the validation pass.
func NewLibrary() (*Library, error) {
	return NewLibraryWith(chapter1())
}

// NewLibraryWith assembles a library from the given chapters and validates
// every cross-reference.
func NewLibraryWith(chapters ...*models.Chapter) (*Library, error) {
	lib := &Library{
		chapters: make(map[models.ChapterID]*models.Chapter, len(chapters)),
		scenes:   make(map[models.ChapterID]map[models.SceneID]*models.Scene, len(chapters)),
	}
	for _, ch := range chapters {
		if _, dup := lib.chapters[ch.ID]; dup {
			return nil, fmt.Errorf("content: duplicate chapter %q", ch.ID)
		}
		lib.chapters[ch.ID] = ch
		index := make(map[models.SceneID]*models.Scene, len(ch.Scenes))
		for _, sc := range ch.Scenes {
			if _, dup := index[sc.ID]; dup {
				return nil, fmt.Errorf("content: chapter %q: duplicate scene %q", ch.ID, sc.ID)
			}
			index[sc.ID] = sc
		}
		lib.scenes[ch.ID] = index
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// GetChapter returns a chapter by id, or nil if absent.
func (l *Library) GetChapter(id models.ChapterID) *models.Chapter {
	return l.chapters[id]
}

// GetScene returns a scene by (chapter, scene) id, or nil if absent.
func (l *Library) GetScene(chapterID models.ChapterID, sceneID models.SceneID) *models.Scene {
	return l.scenes[chapterID][sceneID]
}

// Chapters returns the ids of all loaded chapters.
func (l *Library) Chapters() []models.ChapterID {
	ids := make([]models.ChapterID, 0, len(l.chapters))
	for id := range l.chapters {
		ids = append(ids, id)
	}
	return ids
}
