package handlers

import (
	"net/http"

	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotification godoc
//	@Summary		Get a sent notification
//	@Tags			Notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Notification ID"
//	@Success		200	{object}	models.Notification		"Notification"
//	@Failure		403	{object}	response.ErrorResponse	"Admin only"
//	@Failure		404	{object}	response.ErrorResponse	"Not found"
//	@Router			/admin/notifications/{id} [get]
func (h *NotificationHandler) GetNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		notification, err := h.notificationService.GetNotification(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, notification)
	}
}
