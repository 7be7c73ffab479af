package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"lucky-wave-server/internal/models"
)

// MetricsSink считает игровые события в Prometheus.
type MetricsSink struct {
	events   *prometheus.CounterVec
	outcomes *prometheus.CounterVec
}

var _ models.EventSink = (*MetricsSink)(nil)

// NewMetricsSink регистрирует счетчики и возвращает приемник событий.
func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	s := &MetricsSink{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "game_events_total",
			Help: "Количество игровых событий по типам.",
		}, []string{"event"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "minigame_outcomes_total",
			Help: "Исходы мини-игр по виду игры и токену.",
		}, []string{"kind", "outcome"}),
	}
	reg.MustRegister(s.events, s.outcomes)
	return s
}

// EmitEvent реализует models.EventSink.
func (s *MetricsSink) EmitEvent(name models.EventName, payload map[string]any) {
	s.events.WithLabelValues(string(name)).Inc()
	if name == models.EventMinigameWon || name == models.EventMinigameLost {
		kind, _ := payload["kind"].(string)
		outcome, _ := payload["outcome"].(string)
		s.outcomes.WithLabelValues(kind, outcome).Inc()
	}
}
