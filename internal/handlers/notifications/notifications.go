package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/campushub/progression/internal/domain"
	"github.com/campushub/progression/internal/dto"
	"github.com/campushub/progression/pkg/auth"
	"github.com/campushub/progression/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int) error
}

type NotificationsHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationsHandler {
	return &NotificationsHandler{
		notificationService: notificationService,
	}
}

// List godoc
//
//	@Summary		List recent notifications
//	@Description	Return the most recent notifications for the authenticated user, newest first.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NotificationResponseDTO
//	@Success		204	{object}	utils.Response	"No notifications"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/notifications [get]
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	notifications, err := h.notificationService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(notifications) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No notifications")
		return
	}

	response := make([]dto.NotificationResponseDTO, len(notifications))
	for i, n := range notifications {
		response[i] = dto.NotificationResponseDTO{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Metadata:  json.RawMessage(n.Metadata),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Notification id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid notification id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/notifications/{id}/read [post]
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	notificationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), userID, notificationID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "notification marked read"})
}
