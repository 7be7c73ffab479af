package models

import "errors"

var (
	// ErrChapterNotFound — запрошенная глава отсутствует в контенте.
	ErrChapterNotFound = errors.New("chapter not found")
	// ErrSceneNotFound — запрошенная сцена отсутствует в текущей главе.
	ErrSceneNotFound = errors.New("scene not found")
	// ErrInvalidScene — движку передана пустая сцена.
	ErrInvalidScene = errors.New("invalid scene")
	// ErrInsufficientResource — выбор требует ресурс, которого нет.
	ErrInsufficientResource = errors.New("insufficient resource for choice")
	// ErrChoiceOutOfRange — индекс выбора вне списка вариантов сцены.
	ErrChoiceOutOfRange = errors.New("choice index out of range")
	// ErrNoChoicesPresented — выбор сделан, когда сцена его не предлагает.
	ErrNoChoicesPresented = errors.New("no choices presented")
	// ErrMinigameActive — одновременно может идти только одна мини-игра.
	ErrMinigameActive = errors.New("a minigame is already active")
	// ErrNoActiveMinigame — действие мини-игры без запущенной игры.
	ErrNoActiveMinigame = errors.New("no active minigame")
	// ErrMinigameFinished — мини-игра уже выдала свой исход.
	ErrMinigameFinished = errors.New("minigame already finished")
	// ErrSaveNotFound — в слоте нет сохранения.
	ErrSaveNotFound = errors.New("save not found")
	// ErrSlotOutOfRange — индекс слота вне настроенного диапазона.
	ErrSlotOutOfRange = errors.New("save slot out of range")
	// ErrSessionNotFound — сессия с таким ID не зарегистрирована.
	ErrSessionNotFound = errors.New("session not found")
)
