package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService       service.OrderService
	fulfillmentService service.FulfillmentService
	validator          *validator.Validate
}

func NewOrderHandler(orderService service.OrderService, fulfillmentService service.FulfillmentService) *OrderHandler {
	return &OrderHandler{
		orderService:       orderService,
		fulfillmentService: fulfillmentService,
		validator:          validator.New(),
	}
}

// Checkout godoc
//	@Summary		Start a checkout
//	@Description	Prices the items for the shipping country, stores a pending order and returns the hosted payment page URL. Works for guests and signed-in customers.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Cart-Session	header		string					false	"Guest cart session id"
//	@Param			request			body		models.CheckoutRequest	true	"Items and shipping details"
//	@Success		201				{object}	models.CheckoutResponse	"Checkout session"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid input"
//	@Failure		404				{object}	response.ErrorResponse	"Variant not found"
//	@Failure		500				{object}	response.ErrorResponse	"Payment provider error"
//	@Router			/checkout [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		owner := cartOwner(r)

		resp, err := h.orderService.CreateCheckout(r.Context(), owner, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.String("owner", owner.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Checkout session created", slog.String("orderId", resp.OrderID.String()))
		response.Success(w, http.StatusCreated, resp)
	}
}

// ListOrders godoc
//	@Summary		List the customer's orders
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page		query		int												false	"Page number (default 1)"
//	@Param			pageSize	query		int												false	"Items per page (default 10, max 10)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Order}	"Orders"
//	@Failure		401			{object}	response.ErrorResponse							"Authentication required"
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, pageSize := pagination(r, 10)

		orders, err := h.orderService.ListOrders(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// GetOrder godoc
//	@Summary		Get one of the customer's orders
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.Order			"Order"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id, claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// Lookup godoc
//	@Summary		Look up an order as a guest
//	@Description	Returns the order when both its id and the checkout email match.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.OrderLookupRequest	true	"Order id and email"
//	@Success		200		{object}	models.Order				"Order"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid input"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Router			/orders/lookup [post]
func (h *OrderHandler) Lookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.OrderLookupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.LookupOrder(r.Context(), req.ID, req.Email)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// RetryFulfillment godoc
//	@Summary		Submit an order to the print provider again
//	@Description	Allowed for paid orders and orders in the error state.
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Order ID"
//	@Success		200	{object}	models.FulfillmentResponse	"Submitted"
//	@Failure		403	{object}	response.ErrorResponse		"Admin only"
//	@Failure		404	{object}	response.ErrorResponse		"Order not found"
//	@Failure		409	{object}	response.ErrorResponse		"Order not in a submittable state"
//	@Router			/admin/orders/{id}/fulfillment [post]
func (h *OrderHandler) RetryFulfillment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		resp, err := h.fulfillmentService.Submit(r.Context(), id)
		if err != nil {
			logger.Error("Fulfillment retry failed", slog.String("orderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Fulfillment retried", slog.String("orderId", id.String()), slog.String("providerOrderId", resp.ProviderOrderID))
		response.Success(w, http.StatusOK, resp)
	}
}
