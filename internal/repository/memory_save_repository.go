package repository

import (
	"context"
	"sort"
	"sync"

	"lucky-wave-server/internal/models"
)

// Compile-time check to ensure memorySaveRepository implements SaveRepository
var _ SaveRepository = (*memorySaveRepository)(nil)

// memorySaveRepository — встроенное хранилище для тестов и локального
// запуска без Redis.
type memorySaveRepository struct {
	mu    sync.RWMutex
	saves map[string]map[int]*models.SaveRecord
}

// NewMemorySaveRepository creates an in-memory SaveRepository.
func NewMemorySaveRepository() SaveRepository {
	return &memorySaveRepository{
		saves: make(map[string]map[int]*models.SaveRecord),
	}
}

func (r *memorySaveRepository) SaveGame(_ context.Context, playerID string, record *models.SaveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saves[playerID] == nil {
		r.saves[playerID] = make(map[int]*models.SaveRecord)
	}
	cp := *record
	cp.State = record.State.Clone()
	r.saves[playerID][record.Slot] = &cp
	return nil
}

func (r *memorySaveRepository) LoadGame(_ context.Context, playerID string, slot int) (*models.SaveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.saves[playerID][slot]
	if !ok {
		return nil, models.ErrSaveNotFound
	}
	cp := *record
	cp.State = record.State.Clone()
	return &cp, nil
}

func (r *memorySaveRepository) ListSaves(_ context.Context, playerID string) ([]models.SaveSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summaries := make([]models.SaveSummary, 0, len(r.saves[playerID]))
	for _, record := range r.saves[playerID] {
		summaries = append(summaries, models.SaveSummary{
			Slot:      record.Slot,
			Timestamp: record.Timestamp,
			Preview:   record.Preview,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Slot < summaries[j].Slot })
	return summaries, nil
}

func (r *memorySaveRepository) DeleteSave(_ context.Context, playerID string, slot int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.saves[playerID][slot]; !ok {
		return models.ErrSaveNotFound
	}
	delete(r.saves[playerID], slot)
	return nil
}
