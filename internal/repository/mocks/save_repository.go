// Package mocks содержит моки хранилищ для тестов.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lucky-wave-server/internal/models"
	"lucky-wave-server/internal/repository"
)

// SaveRepository is a testify mock of repository.SaveRepository.
type SaveRepository struct {
	mock.Mock
}

var _ repository.SaveRepository = (*SaveRepository)(nil)

func (m *SaveRepository) SaveGame(ctx context.Context, playerID string, record *models.SaveRecord) error {
	args := m.Called(ctx, playerID, record)
	return args.Error(0)
}

func (m *SaveRepository) LoadGame(ctx context.Context, playerID string, slot int) (*models.SaveRecord, error) {
	args := m.Called(ctx, playerID, slot)
	if rec := args.Get(0); rec != nil {
		return rec.(*models.SaveRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SaveRepository) ListSaves(ctx context.Context, playerID string) ([]models.SaveSummary, error) {
	args := m.Called(ctx, playerID)
	if list := args.Get(0); list != nil {
		return list.([]models.SaveSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SaveRepository) DeleteSave(ctx context.Context, playerID string, slot int) error {
	args := m.Called(ctx, playerID, slot)
	return args.Error(0)
}
