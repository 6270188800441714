package leaderboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/dto"
	"github.com/campushub/progression/internal/service/leaderboardservice"
	"github.com/campushub/progression/pkg/utils"
)

type Service interface {
	GetLeaderboard(ctx context.Context, period domain.Period) ([]domain.LeaderboardRow, error)
}

type LeaderboardHandler struct {
	leaderboardService Service
}

func New(leaderboardService Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard godoc
//
//	@Summary		Get the leaderboard
//	@Description	Return ranked users for the requested period. The all-time board ranks by total XP, period boards by activity volume.
//	@Tags			Leaderboard
//	@Produce		json
//	@Param			period	query		string	false	"weekly, monthly or all (default all)"
//	@Success		200		{object}	dto.LeaderboardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid period"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	period, ok := parsePeriod(r.URL.Query().Get("period"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid period")
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, leaderboardservice.ErrInvalidPeriod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.LeaderboardResponseDTO{
		Period:  periodLabel(period),
		Entries: make([]dto.LeaderboardEntryDTO, 0, len(board)),
	}
	for i, row := range board {
		response.Entries = append(response.Entries, dto.LeaderboardEntryDTO{
			Rank:        i + 1,
			UserID:      row.UserID,
			Login:       row.Login,
			DisplayName: row.DisplayName,
			Level:       row.Level,
			XP:          row.XP,
			StreakDays:  row.StreakDays,
			Score:       row.Score,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parsePeriod(raw string) (domain.Period, bool) {
	switch raw {
	case "", "all":
		return domain.PeriodAllTime, true
	case "weekly":
		return domain.PeriodWeekly, true
	case "monthly":
		return domain.PeriodMonthly, true
	default:
		return domain.PeriodAllTime, false
	}
}

func periodLabel(period domain.Period) string {
	if period == domain.PeriodAllTime {
		return "all"
	}
	return string(period)
}
