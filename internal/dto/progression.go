package dto

import (
	"encoding/json"
	"time"
)

type ProgressionResponseDTO struct {
	XP            int        `json:"xp" example:"1300"`
	Level         int        `json:"level" example:"2"`
	Coins         int        `json:"coins" example:"85"`
	StreakDays    int        `json:"streak_days" example:"3"`
	XPToNextLevel int        `json:"xp_to_next_level" example:"700"`
	LastActivity  *time.Time `json:"last_activity,omitempty"`
}

type UnlockDTO struct {
	ID            int       `json:"id" example:"12"`
	AchievementID int       `json:"achievement_id" example:"3"`
	UnlockedAt    time.Time `json:"unlocked_at" example:"2025-03-12T16:09:57+03:00"`
}

type CheckUnlocksResponseDTO struct {
	Success       bool        `json:"success" example:"true"`
	NewlyUnlocked []UnlockDTO `json:"newlyUnlocked"`
	Count         int         `json:"count" example:"1"`
}

type RecordActivityRequestDTO struct {
	Type     string          `json:"type" example:"post_created"`
	Surface  string          `json:"surface" example:"feed"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}
