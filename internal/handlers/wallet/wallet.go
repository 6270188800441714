package wallet

import (
	"context"
	"errors"
	"net/http"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/dto"
	"github.com/campushub/progression/internal/service/rewardservice"
	"github.com/campushub/progression/pkg/auth"
	"github.com/campushub/progression/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.User, int, error)
	GetHistory(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type WalletHandler struct {
	rewardService Service
}

func New(rewardService Service) *WalletHandler {
	return &WalletHandler{
		rewardService: rewardService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current coin balance
//	@Description	Retrieve the spendable coin balance and the total coins earned for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current balance and earned total"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, earned, err := h.rewardService.GetWallet(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Coins:  user.Coins,
		Earned: earned,
	})
}

// GetHistory godoc
//
//	@Summary		Get coin ledger history
//	@Description	Get the coin ledger for the authenticated user sorted by creation date
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletHistoryResponseDTO	"Ledger history"
//	@Success		204	{object}	utils.Response					"No ledger entries"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/wallet/history [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.rewardService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger history")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No ledger entries")
		return
	}

	response := make([]dto.WalletHistoryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.WalletHistoryResponseDTO{
			Amount:    e.Amount,
			Reason:    e.Reason,
			Reference: e.Reference,
			CreatedAt: e.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
