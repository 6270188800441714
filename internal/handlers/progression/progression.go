package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/dto"
	"github.com/campushub/progression/internal/service/rewardservice"
	"github.com/campushub/progression/internal/service/unlockservice"
	"github.com/campushub/progression/pkg/auth"
	"github.com/campushub/progression/pkg/utils"
)

type UnlockService interface {
	CheckAndUnlock(ctx context.Context, userID int) ([]domain.Unlock, error)
	RecordActivity(ctx context.Context, userID int, activityType, surface, metadata string) ([]domain.Unlock, error)
}

type RewardService interface {
	GetProgression(ctx context.Context, userID int) (*domain.User, int, error)
}

type ProgressionHandler struct {
	unlockService UnlockService
	rewardService RewardService
}

func New(unlockService UnlockService, rewardService RewardService) *ProgressionHandler {
	return &ProgressionHandler{
		unlockService: unlockService,
		rewardService: rewardService,
	}
}

// CheckUnlocks godoc
//
//	@Summary		Evaluate achievements for the current user
//	@Description	Run the unlock check over every achievement the user has not unlocked yet and return the newly unlocked ones.
//	@Tags			Progression
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CheckUnlocksResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/progression/check [post]
func (h *ProgressionHandler) CheckUnlocks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	unlocked, err := h.unlockService.CheckAndUnlock(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, unlockservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toCheckUnlocksResponse(unlocked))
}

// RecordActivity godoc
//
//	@Summary		Record a user activity event
//	@Description	Store an activity reported by a platform surface and immediately re-evaluate achievements.
//	@Tags			Progression
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordActivityRequestDTO	true	"Activity payload"
//	@Success		200		{object}	dto.CheckUnlocksResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/activity [post]
func (h *ProgressionHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RecordActivityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Type == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Activity type is required")
		return
	}

	unlocked, err := h.unlockService.RecordActivity(r.Context(), userID, req.Type, req.Surface, string(req.Metadata))
	if err != nil {
		switch {
		case errors.Is(err, unlockservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toCheckUnlocksResponse(unlocked))
}

// GetProgression godoc
//
//	@Summary		Get current progression state
//	@Description	Return the user's XP, level, coin balance, streak and XP still needed for the next level.
//	@Tags			Progression
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProgressionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/progression [get]
func (h *ProgressionHandler) GetProgression(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, xpToNext, err := h.rewardService.GetProgression(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProgressionResponseDTO{
		XP:            user.XP,
		Level:         user.Level,
		Coins:         user.Coins,
		StreakDays:    user.StreakDays,
		XPToNextLevel: xpToNext,
		LastActivity:  user.LastActivityAt,
	})
}

func toCheckUnlocksResponse(unlocked []domain.Unlock) dto.CheckUnlocksResponseDTO {
	response := dto.CheckUnlocksResponseDTO{
		Success:       true,
		NewlyUnlocked: make([]dto.UnlockDTO, 0, len(unlocked)),
		Count:         len(unlocked),
	}
	for _, u := range unlocked {
		response.NewlyUnlocked = append(response.NewlyUnlocked, dto.UnlockDTO{
			ID:            u.ID,
			AchievementID: u.AchievementID,
			UnlockedAt:    u.UnlockedAt,
		})
	}
	return response
}
