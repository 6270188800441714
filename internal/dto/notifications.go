package dto

import (
	"encoding/json"
	"time"
)

type NotificationResponseDTO struct {
	ID        int             `json:"id" example:"21"`
	Type      string          `json:"type" example:"achievement_unlocked"`
	Title     string          `json:"title" example:"Achievement unlocked: Helping Hand"`
	Message   string          `json:"message" example:"Answer 25 questions"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Read      bool            `json:"read" example:"false"`
	CreatedAt time.Time       `json:"created_at" example:"2025-03-12T16:09:57+03:00"`
}
