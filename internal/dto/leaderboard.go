package dto

type LeaderboardEntryDTO struct {
	Rank        int    `json:"rank" example:"1"`
	UserID      int    `json:"user_id" example:"7"`
	Login       string `json:"login" example:"mmeyer"`
	DisplayName string `json:"display_name" example:"Max Meyer"`
	Level       int    `json:"level" example:"4"`
	XP          int    `json:"xp" example:"3250"`
	StreakDays  int    `json:"streak_days" example:"12"`
	Score       int    `json:"score" example:"3250"`
}

type LeaderboardResponseDTO struct {
	Period  string                `json:"period" example:"weekly"`
	Entries []LeaderboardEntryDTO `json:"entries"`
}
