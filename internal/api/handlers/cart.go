package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// CartHandler serves both the authenticated cart and the guest cart. The
// owner is resolved per request from the JWT or the session header.
type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// GetCart godoc
//	@Summary		Get the current cart
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Cart-Session	header		string					false	"Guest cart session id"
//	@Success		200				{object}	models.CartResponse		"Cart"
//	@Failure		400				{object}	response.ErrorResponse	"No cart owner"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := cartOwner(r)

		cart, err := h.cartService.GetCart(r.Context(), owner)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to get cart",
				slog.String("owner", owner.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCartResponse(cart))
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds the quantity to an existing line for the same variant or appends a new line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Cart-Session	header		string					false	"Guest cart session id"
//	@Param			request			body		models.AddItemRequest	true	"Variant and quantity"
//	@Success		200				{object}	models.CartResponse		"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid input"
//	@Failure		404				{object}	response.ErrorResponse	"Variant not found"
//	@Failure		409				{object}	response.ErrorResponse	"Concurrent update"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		owner := cartOwner(r)

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), owner, &req)
		if err != nil {
			logger.Warn("Failed to add cart item",
				slog.String("owner", owner.String()),
				slog.Int64("variantId", req.VariantID),
				slog.String("error", err.Error()),
			)
			response.Error(w, err)

			return
		}

		logger.Info("Cart item added", slog.String("owner", owner.String()), slog.Int64("variantId", req.VariantID))
		response.Success(w, http.StatusOK, models.NewCartResponse(cart))
	}
}

// UpdateQuantity godoc
//	@Summary		Set the quantity of a cart line
//	@Description	A quantity of zero or less removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Cart-Session	header		string							false	"Guest cart session id"
//	@Param			request			body		models.UpdateQuantityRequest	true	"Variant and quantity"
//	@Success		200				{object}	models.CartResponse				"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse			"Invalid input"
//	@Failure		404				{object}	response.ErrorResponse			"Line not found"
//	@Router			/cart/items [patch]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), cartOwner(r), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewCartResponse(cart))
	}
}

// RemoveOrClear godoc
//	@Summary		Remove a line or clear the cart
//	@Description	With variantId removes that line, without it empties the cart.
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Cart-Session	header		string					false	"Guest cart session id"
//	@Param			variantId		query		int						false	"Variant to remove"
//	@Success		200				{object}	models.CartResponse		"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid variant id"
//	@Router			/cart/items [delete]
func (h *CartHandler) RemoveOrClear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := cartOwner(r)

		raw := r.URL.Query().Get("variantId")
		if raw == "" {
			if err := h.cartService.ClearCart(r.Context(), owner); err != nil {
				response.Error(w, err)
				return
			}

			response.Success(w, http.StatusOK, models.NewCartResponse(&models.Cart{UserID: owner.UserID, SessionID: owner.SessionID, Items: []models.CartItem{}}))

			return
		}

		variantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || variantID < 1 {
			response.Error(w, errors.BadRequestError("Invalid variantId"))
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), owner, variantID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewCartResponse(cart))
	}
}

// Merge godoc
//	@Summary		Merge the guest cart into the user's cart
//	@Description	Called after login with the guest session header still set.
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Cart-Session	header		string					true	"Guest cart session id"
//	@Success		200				{object}	models.CartResponse		"Merged cart"
//	@Failure		400				{object}	response.ErrorResponse	"Missing session"
//	@Failure		401				{object}	response.ErrorResponse	"Authentication required"
//	@Router			/cart/merge [post]
func (h *CartHandler) Merge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		sessionID := r.Header.Get(CartSessionHeader)

		cart, err := h.cartService.MergeGuestCart(r.Context(), claims.UserID, sessionID)
		if err != nil {
			logger.Warn("Failed to merge guest cart", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Guest cart merged", slog.Int("items", len(cart.Items)))
		response.Success(w, http.StatusOK, models.NewCartResponse(cart))
	}
}
