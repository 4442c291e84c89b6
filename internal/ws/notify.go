package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventMatchesUpdated = "matches_updated"

// MatchesUpdatedEvent tells dashboards to reload the match listing of a job.
type MatchesUpdatedEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"job_id"`
	RunID     uuid.UUID `json:"run_id"`
	Written   int       `json:"written"`
	Timestamp string    `json:"timestamp"`
}

func (h *Hub) NotifyMatchesUpdated(jobID uuid.UUID, runID uuid.UUID, written int) {
	if h == nil {
		return
	}

	evt := MatchesUpdatedEvent{
		Type:      EventMatchesUpdated,
		JobID:     jobID,
		RunID:     runID,
		Written:   written,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("marshal event", zap.Error(err))
		return
	}

	h.Broadcast(b)
}
