package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// Compile-time check to ensure redisSaveRepository implements SaveRepository
var _ SaveRepository = (*redisSaveRepository)(nil)

type redisSaveRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisSaveRepository creates a Redis-backed SaveRepository.
//
// Layout: each slot lives at save:{playerID}:{slot} as a JSON document, and
// the player's occupied slots are tracked in a set save_slots:{playerID}, so
// listing does not need a KEYS scan.
func NewRedisSaveRepository(client *redis.Client, logger *zap.Logger) SaveRepository {
	return &redisSaveRepository{
		client: client,
		logger: logger.Named("RedisSaveRepo"),
	}
}

func saveKey(playerID string, slot int) string {
	return fmt.Sprintf("save:%s:%d", playerID, slot)
}

func slotSetKey(playerID string) string {
	return fmt.Sprintf("save_slots:%s", playerID)
}

func (r *redisSaveRepository) SaveGame(ctx context.Context, playerID string, record *models.SaveRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal save record: %w", err)
	}

	// Пишем запись и отмечаем слот занятым одним пайплайном.
	pipe := r.client.Pipeline()
	pipe.Set(ctx, saveKey(playerID, record.Slot), data, 0)
	pipe.SAdd(ctx, slotSetKey(playerID), record.Slot)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Не удалось записать сохранение",
			zap.Error(err),
			zap.String("playerID", playerID),
			zap.Int("slot", record.Slot))
		return fmt.Errorf("failed to write save to redis: %w", err)
	}

	r.logger.Debug("Сохранение записано",
		zap.String("playerID", playerID),
		zap.Int("slot", record.Slot),
		zap.String("preview", record.Preview))
	return nil
}

func (r *redisSaveRepository) LoadGame(ctx context.Context, playerID string, slot int) (*models.SaveRecord, error) {
	data, err := r.client.Get(ctx, saveKey(playerID, slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, models.ErrSaveNotFound
	}
	if err != nil {
		r.logger.Error("Не удалось прочитать сохранение",
			zap.Error(err),
			zap.String("playerID", playerID),
			zap.Int("slot", slot))
		return nil, fmt.Errorf("failed to read save from redis: %w", err)
	}

	var record models.SaveRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save record: %w", err)
	}
	return &record, nil
}

func (r *redisSaveRepository) ListSaves(ctx context.Context, playerID string) ([]models.SaveSummary, error) {
	slots, err := r.client.SMembers(ctx, slotSetKey(playerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}
	if len(slots) == 0 {
		return []models.SaveSummary{}, nil
	}

	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = fmt.Sprintf("save:%s:%s", playerID, s)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch save records: %w", err)
	}

	summaries := make([]models.SaveSummary, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// слот числится занятым, но записи нет — чистим указатель
			r.logger.Warn("Осиротевший слот в наборе сохранений",
				zap.String("playerID", playerID),
				zap.String("slot", slots[i]))
			r.client.SRem(ctx, slotSetKey(playerID), slots[i])
			continue
		}
		var record models.SaveRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			r.logger.Error("Битая запись сохранения",
				zap.Error(err),
				zap.String("playerID", playerID),
				zap.String("slot", slots[i]))
			continue
		}
		summaries = append(summaries, models.SaveSummary{
			Slot:      record.Slot,
			Timestamp: record.Timestamp,
			Preview:   record.Preview,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Slot < summaries[j].Slot })
	return summaries, nil
}

func (r *redisSaveRepository) DeleteSave(ctx context.Context, playerID string, slot int) error {
	pipe := r.client.Pipeline()
	delCmd := pipe.Del(ctx, saveKey(playerID, slot))
	pipe.SRem(ctx, slotSetKey(playerID), slot)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete save from redis: %w", err)
	}
	if delCmd.Val() == 0 {
		return models.ErrSaveNotFound
	}
	r.logger.Debug("Сохранение удалено",
		zap.String("playerID", playerID),
		zap.Int("slot", slot))
	return nil
}
