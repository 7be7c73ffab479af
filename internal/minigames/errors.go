package minigames

import "errors"

var (
	// ErrUnknownKind — фабрику попросили о неизвестной игре.
	ErrUnknownKind = errors.New("unknown minigame kind")
	// ErrUnknownAction — действие не входит в набор ходов этой игры.
	ErrUnknownAction = errors.New("unknown minigame action")
	// ErrFinished — экземпляр уже выдал свой исход.
	ErrFinished = errors.New("minigame already finished")
)
