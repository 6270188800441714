package dto

import "time"

type AchievementResponseDTO struct {
	ID          int        `json:"id" example:"3"`
	Code        string     `json:"code" example:"helping_hand"`
	Name        string     `json:"name" example:"Helping Hand"`
	Description string     `json:"description" example:"Answer 25 questions"`
	Rarity      string     `json:"rarity" example:"rare"`
	Metric      string     `json:"metric" example:"answers_given"`
	Threshold   int        `json:"threshold" example:"25"`
	Period      string     `json:"period,omitempty" example:"weekly"`
	RewardCoins int        `json:"reward_coins" example:"50"`
	RewardXP    int        `json:"reward_xp" example:"250"`
	Unlocked    bool       `json:"unlocked" example:"true"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}
