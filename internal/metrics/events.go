package metrics

import (
	"log/slog"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// EventMetricsCollector turns published state snapshots into gauges
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// EventTypes lists the event types the collector consumes
func (e *EventMetricsCollector) EventTypes() []string {
	return []string{
		domain.EventTypePlayerUpdated,
		domain.EventTypeGardenUpdated,
		domain.EventTypeLeaderboardUpdated,
		domain.EventTypeLevelUp,
	}
}

// HandleEvent records metrics for one published event
func (e *EventMetricsCollector) HandleEvent(eventType string, payload any) {
	switch eventType {
	case domain.EventTypePlayerUpdated:
		p, ok := payload.(*domain.Player)
		if !ok {
			slog.Debug(LogMsgUnexpectedPayload, "type", eventType)
			return
		}
		PlayerLevel.Set(float64(p.Level))

	case domain.EventTypeGardenUpdated:
		g, ok := payload.(*domain.Garden)
		if !ok {
			slog.Debug(LogMsgUnexpectedPayload, "type", eventType)
			return
		}
		growing, ready := 0, 0
		for _, p := range g.Plants {
			if p.IsReady {
				ready++
			} else {
				growing++
			}
		}
		PlantsGrowing.Set(float64(growing))
		PlantsReady.Set(float64(ready))

	case domain.EventTypeLeaderboardUpdated:
		entries, ok := payload.([]domain.LeaderboardEntry)
		if !ok {
			slog.Debug(LogMsgUnexpectedPayload, "type", eventType)
			return
		}
		LeaderboardEntries.Set(float64(len(entries)))

	case domain.EventTypeLevelUp:
		lu, ok := payload.(domain.LevelUpPayload)
		if !ok {
			slog.Debug(LogMsgUnexpectedPayload, "type", eventType)
			return
		}
		LevelUps.Add(float64(lu.NewLevel - lu.OldLevel))
	}
}
