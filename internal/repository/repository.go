// Package repository содержит хранилища сохранений игры.
package repository

import (
	"context"

	"lucky-wave-server/internal/models"
)

// SaveRepository is the persistence boundary for save slots. Slot bounds are
// validated by the service layer; repositories only store and retrieve.
// A missing record is reported as models.ErrSaveNotFound.
type SaveRepository interface {
	SaveGame(ctx context.Context, playerID string, record *models.SaveRecord) error
	LoadGame(ctx context.Context, playerID string, slot int) (*models.SaveRecord, error)
	ListSaves(ctx context.Context, playerID string) ([]models.SaveSummary, error)
	DeleteSave(ctx context.Context, playerID string, slot int) error
}
