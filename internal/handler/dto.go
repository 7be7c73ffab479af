package handler

// CreateSessionRequest — тело запроса на создание сессии.
type CreateSessionRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Chapter  string `json:"chapter" binding:"required"`
}

// ChoiceRequest — выбор варианта в сцене.
type ChoiceRequest struct {
	Index *int `json:"index" binding:"required"`
}

// MinigameActionRequest — ход в мини-игре.
type MinigameActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// ErrorResponse — единый формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChapterResponse — элемент каталога глав.
type ChapterResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Scenes      int    `json:"scenes"`
}
