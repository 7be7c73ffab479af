package engine

import "lucky-wave-server/internal/models"

// FanOutSink рассылает событие всем приемникам по порядку.
type FanOutSink []models.EventSink

var _ models.EventSink = (FanOutSink)(nil)

// EmitEvent реализует models.EventSink.
func (s FanOutSink) EmitEvent(name models.EventName, payload map[string]any) {
	for _, sink := range s {
		if sink != nil {
			sink.EmitEvent(name, payload)
		}
	}
}
