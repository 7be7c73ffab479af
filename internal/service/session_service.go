// Package service владеет игровыми сессиями: по одной паре
// навигатор+инвентарь на игрока, сериализация всех обращений и работа с
// хранилищем сохранений.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lucky-wave-server/internal/achievements"
	"lucky-wave-server/internal/content"
	"lucky-wave-server/internal/engine"
	"lucky-wave-server/internal/inventory"
	"lucky-wave-server/internal/minigames"
	"lucky-wave-server/internal/models"
	"lucky-wave-server/internal/repository"
)

// Session — одна игровая сессия. Мьютекс обеспечивает run-to-completion:
// каждое внешнее событие полностью обрабатывается до следующего.
type Session struct {
	mu sync.Mutex

	ID       uuid.UUID
	PlayerID string

	nav     *engine.Navigator
	inv     *inventory.Inventory
	tracker *achievements.Tracker

	createdAt  time.Time
	lastActive time.Time
}

// SessionServiceDeps — зависимости сервиса. Images, Events и Launcher
// опциональны: без Launcher собирается обычная фабрика мини-игр.
type SessionServiceDeps struct {
	Logger   *zap.Logger
	Library  *content.Library
	Saves    repository.SaveRepository
	Images   models.ImageBindings
	Events   models.EventSink
	Launcher engine.MinigameLauncher

	TypingInterval time.Duration
	SaveSlots      int
}

// SessionService is the application facade consumed by the HTTP layer.
type SessionService struct {
	log      *zap.Logger
	library  *content.Library
	saves    repository.SaveRepository
	images   models.ImageBindings
	events   models.EventSink
	launcher engine.MinigameLauncher

	typingInterval time.Duration
	saveSlots      int

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionService создает сервис сессий.
func NewSessionService(deps SessionServiceDeps) *SessionService {
	launcher := deps.Launcher
	if launcher == nil {
		launcher = minigames.NewFactory(deps.Logger, nil)
	}
	return &SessionService{
		log:            deps.Logger.Named("SessionService"),
		library:        deps.Library,
		saves:          deps.Saves,
		images:         deps.Images,
		events:         deps.Events,
		launcher:       launcher,
		typingInterval: deps.TypingInterval,
		saveSlots:      deps.SaveSlots,
		sessions:       make(map[uuid.UUID]*Session),
	}
}

// CreateSession starts a fresh playthrough of the chapter for the player.
func (s *SessionService) CreateSession(playerID string, chapterID models.ChapterID) (*SessionView, error) {
	sess := &Session{
		ID:        uuid.New(),
		PlayerID:  playerID,
		inv:       inventory.New(s.log),
		createdAt: time.Now(),
	}
	sess.lastActive = sess.createdAt
	sess.tracker = achievements.NewTracker(s.log, sess.inv, s.events)

	// события движка веером: выплаты, достижения, внешние приемники
	sinks := engine.FanOutSink{
		inventory.NewRewards(s.log, sess.inv),
		sess.tracker,
	}
	if s.events != nil {
		sinks = append(sinks, s.events)
	}

	sess.nav = engine.NewNavigator(engine.NavigatorDeps{
		Logger:    s.log,
		Library:   s.library,
		Playback:  engine.NewPlayback(s.log, s.typingInterval),
		Resources: sess.inv,
		Images:    s.images,
		Events:    sinks,
		Minigames: s.launcher,
	})
	if err := sess.nav.LoadChapter(chapterID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Info("сессия создана",
		zap.String("sessionID", sess.ID.String()),
		zap.String("playerID", playerID),
		zap.String("chapter", string(chapterID)))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.viewLocked(sess), nil
}

func (s *SessionService) session(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, models.ErrSessionNotFound)
	}
	return sess, nil
}

// withSession выполняет fn под мьютексом сессии и возвращает свежий вид.
func (s *SessionService) withSession(id uuid.UUID, fn func(*Session) error) (*SessionView, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = time.Now()
	if err := fn(sess); err != nil {
		return nil, err
	}
	return s.viewLocked(sess), nil
}

// GetView returns the current presentation state of the session.
func (s *SessionService) GetView(id uuid.UUID) (*SessionView, error) {
	return s.withSession(id, func(*Session) error { return nil })
}

// Advance moves the dialogue forward one line.
func (s *SessionService) Advance(id uuid.UUID) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.nav.Advance() })
}

// Skip completes the current line's reveal.
func (s *SessionService) Skip(id uuid.UUID) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error {
		sess.nav.Skip()
		return nil
	})
}

// SelectChoice resolves the presented choice at index.
func (s *SessionService) SelectChoice(id uuid.UUID, index int) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.nav.SelectChoice(index) })
}

// MinigameAction feeds one action into the scene's minigame.
func (s *SessionService) MinigameAction(id uuid.UUID, action minigames.Action) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error {
		_, err := sess.nav.MinigameAction(action)
		return err
	})
}

// ExitMinigame discards the running minigame without an outcome.
func (s *SessionService) ExitMinigame(id uuid.UUID) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.nav.ExitMinigame() })
}

// Continue acknowledges a chapter-terminal scene.
func (s *SessionService) Continue(id uuid.UUID) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.nav.Continue() })
}

// Save captures the session position into the slot. A failed write surfaces
// the error and leaves the in-memory session untouched.
func (s *SessionService) Save(ctx context.Context, id uuid.UUID, slot int) (*models.SaveSummary, error) {
	if err := s.checkSlot(slot); err != nil {
		return nil, err
	}
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	record := &models.SaveRecord{
		Slot:      slot,
		Timestamp: time.Now(),
		Preview:   sess.nav.Preview(),
		State:     sess.nav.Snapshot(),
	}
	if record.State == nil {
		return nil, fmt.Errorf("save slot %d: %w", slot, models.ErrInvalidScene)
	}
	if err := s.saves.SaveGame(ctx, sess.PlayerID, record); err != nil {
		return nil, fmt.Errorf("save slot %d: %w", slot, err)
	}
	s.log.Info("игра сохранена",
		zap.String("sessionID", id.String()),
		zap.Int("slot", slot),
		zap.String("preview", record.Preview))
	return &models.SaveSummary{
		Slot:      record.Slot,
		Timestamp: record.Timestamp,
		Preview:   record.Preview,
	}, nil
}

// Load replaces the session position with the slot's snapshot.
func (s *SessionService) Load(ctx context.Context, id uuid.UUID, slot int) (*SessionView, error) {
	if err := s.checkSlot(slot); err != nil {
		return nil, err
	}
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	record, err := s.saves.LoadGame(ctx, sess.PlayerID, slot)
	if err != nil {
		return nil, fmt.Errorf("load slot %d: %w", slot, err)
	}
	if err := sess.nav.Restore(record.State); err != nil {
		return nil, fmt.Errorf("load slot %d: %w", slot, err)
	}
	s.log.Info("игра загружена",
		zap.String("sessionID", id.String()),
		zap.Int("slot", slot))
	return s.viewLocked(sess), nil
}

// QuickSave stores the session into the reserved quick slot.
func (s *SessionService) QuickSave(ctx context.Context, id uuid.UUID) (*models.SaveSummary, error) {
	return s.Save(ctx, id, models.QuickSaveSlot)
}

// QuickLoad restores the session from the reserved quick slot.
func (s *SessionService) QuickLoad(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	return s.Load(ctx, id, models.QuickSaveSlot)
}

// ListSaves returns the player's occupied slots.
func (s *SessionService) ListSaves(ctx context.Context, id uuid.UUID) ([]models.SaveSummary, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	return s.saves.ListSaves(ctx, sess.PlayerID)
}

// DeleteSave removes the slot's record.
func (s *SessionService) DeleteSave(ctx context.Context, id uuid.UUID, slot int) error {
	if err := s.checkSlot(slot); err != nil {
		return err
	}
	sess, err := s.session(id)
	if err != nil {
		return err
	}
	return s.saves.DeleteSave(ctx, sess.PlayerID, slot)
}

// EndSession quick-saves (best effort) and drops the session from memory.
func (s *SessionService) EndSession(ctx context.Context, id uuid.UUID) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}
	if _, err := s.QuickSave(ctx, id); err != nil {
		s.log.Warn("автосохранение при выходе не удалось",
			zap.Error(err),
			zap.String("sessionID", id.String()))
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	s.log.Info("сессия завершена",
		zap.String("sessionID", id.String()),
		zap.String("playerID", sess.PlayerID))
	return nil
}

// SessionCount returns the number of live sessions.
func (s *SessionService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) checkSlot(slot int) error {
	if slot < 0 || slot >= s.saveSlots {
		return fmt.Errorf("slot %d of %d: %w", slot, s.saveSlots, models.ErrSlotOutOfRange)
	}
	return nil
}
