package dto

import "time"

type WalletResponseDTO struct {
	Coins  int `json:"coins" example:"85"`
	Earned int `json:"earned" example:"135"`
}

type WalletHistoryResponseDTO struct {
	Amount    int       `json:"amount" example:"50"`
	Reason    string    `json:"reason" example:"achievement_reward"`
	Reference string    `json:"reference" example:"helping_hand"`
	CreatedAt time.Time `json:"created_at" example:"2025-03-12T16:09:57+03:00"`
}
