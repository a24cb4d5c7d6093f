package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type NewsletterHandler struct {
	newsletterService service.NewsletterService
	validator         *validator.Validate
}

func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		validator:         validator.New(),
	}
}

// Subscribe godoc
//	@Summary		Subscribe to the newsletter
//	@Description	New subscribers receive a welcome email. Subscribing twice is not an error.
//	@Tags			Newsletter
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.SubscribeRequest	true	"Email and locale"
//	@Success		200		{object}	models.Subscriber		"Subscriber"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid input"
//	@Failure		429		{object}	response.ErrorResponse	"Rate limit exceeded"
//	@Router			/newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SubscribeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		subscriber, err := h.newsletterService.Subscribe(r.Context(), &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Newsletter subscription failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, subscriber)
	}
}

// Unsubscribe godoc
//	@Summary		Unsubscribe from the newsletter
//	@Tags			Newsletter
//	@Accept			json
//	@Produce		json
//	@Param			request	body	models.UnsubscribeRequest	true	"Email"
//	@Success		204		"Unsubscribed"
//	@Failure		404		{object}	response.ErrorResponse	"Not subscribed"
//	@Router			/newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UnsubscribeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.newsletterService.Unsubscribe(r.Context(), req.Email); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Contact godoc
//	@Summary		Send a contact form message
//	@Description	Markup is stripped before the message is emailed to the shop inbox.
//	@Tags			Newsletter
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ContactRequest		true	"Message"
//	@Success		202		{object}	models.NotificationResponse	"Accepted"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid input"
//	@Failure		429		{object}	response.ErrorResponse		"Rate limit exceeded"
//	@Router			/contact [post]
func (h *NewsletterHandler) Contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.newsletterService.Contact(r.Context(), &req)
		if err != nil {
			logger.Error("Contact message failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Contact message sent", slog.String("notificationId", resp.ID.String()))
		response.Success(w, http.StatusAccepted, resp)
	}
}
