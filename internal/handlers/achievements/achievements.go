package achievements

import (
	"context"
	"net/http"

	"github.com/campushub/progression/internal/dto"
	"github.com/campushub/progression/internal/service/unlockservice"
	"github.com/campushub/progression/pkg/auth"
	"github.com/campushub/progression/pkg/utils"
)

type Service interface {
	ListAchievements(ctx context.Context, userID int) ([]unlockservice.AchievementStatus, error)
}

type AchievementsHandler struct {
	unlockService Service
}

func New(unlockService Service) *AchievementsHandler {
	return &AchievementsHandler{
		unlockService: unlockService,
	}
}

// ListAchievements godoc
//
//	@Summary		List the achievement catalog
//	@Description	Return every achievement with the user's unlock state.
//	@Tags			Achievements
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AchievementResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/achievements [get]
func (h *AchievementsHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	statuses, err := h.unlockService.ListAchievements(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AchievementResponseDTO, 0, len(statuses))
	for _, s := range statuses {
		a := s.Achievement
		response = append(response, dto.AchievementResponseDTO{
			ID:          a.ID,
			Code:        a.Code,
			Name:        a.Name,
			Description: a.Description,
			Rarity:      a.Rarity,
			Metric:      string(a.Metric),
			Threshold:   a.Threshold,
			Period:      string(a.Period),
			RewardCoins: a.RewardCoins,
			RewardXP:    a.RewardXP,
			Unlocked:    s.Unlocked,
			UnlockedAt:  s.UnlockedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
