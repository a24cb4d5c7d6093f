package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
)

const (
	maxWebhookBody = 64 << 10

	StripeSignatureHeader   = "Stripe-Signature"
	ProviderSignatureHeader = "X-Provider-Signature"
)

// WebhookHandler receives the payment and fulfillment callbacks. Bodies are
// passed through unparsed so signatures are checked over the exact bytes.
type WebhookHandler struct {
	orderService       service.OrderService
	fulfillmentService service.FulfillmentService
}

func NewWebhookHandler(orderService service.OrderService, fulfillmentService service.FulfillmentService) *WebhookHandler {
	return &WebhookHandler{orderService: orderService, fulfillmentService: fulfillmentService}
}

// Stripe godoc
//	@Summary		Stripe webhook
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string					true	"Stripe signature"
//	@Success		200					{object}	models.WebhookResult	"Processed, ignored or duplicate"
//	@Failure		401					{object}	response.ErrorResponse	"Invalid signature"
//	@Failure		404					{object}	response.ErrorResponse	"Unknown order"
//	@Router			/webhooks/stripe [post]
func (h *WebhookHandler) Stripe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		payload, ok := readWebhookBody(w, r)
		if !ok {
			return
		}

		result, err := h.orderService.HandleStripeWebhook(r.Context(), payload, r.Header.Get(StripeSignatureHeader))
		if err != nil {
			logger.Warn("Stripe webhook rejected", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Stripe webhook handled",
			slog.String("eventType", result.EventType),
			slog.String("outcome", string(result.Outcome)),
		)
		response.Success(w, http.StatusOK, result)
	}
}

// Fulfillment godoc
//	@Summary		Print provider webhook
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Provider-Signature	header		string					true	"Shared webhook secret"
//	@Success		200						{object}	models.WebhookResult	"Processed, ignored or duplicate"
//	@Failure		400						{object}	response.ErrorResponse	"Malformed payload"
//	@Failure		401						{object}	response.ErrorResponse	"Invalid signature"
//	@Failure		404						{object}	response.ErrorResponse	"Unknown order"
//	@Router			/webhooks/fulfillment [post]
func (h *WebhookHandler) Fulfillment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		payload, ok := readWebhookBody(w, r)
		if !ok {
			return
		}

		result, err := h.fulfillmentService.HandleWebhook(r.Context(), payload, r.Header.Get(ProviderSignatureHeader))
		if err != nil {
			logger.Warn("Fulfillment webhook rejected", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Fulfillment webhook handled",
			slog.String("eventType", result.EventType),
			slog.String("outcome", string(result.Outcome)),
		)
		response.Success(w, http.StatusOK, result)
	}
}

func readWebhookBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		response.Error(w, errors.BadRequestError("Unable to read request body").WithError(err))
		return nil, false
	}

	return payload, true
}
