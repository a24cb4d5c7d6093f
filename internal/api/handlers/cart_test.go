package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/pod-storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartAddItem(t *testing.T) {
	guest := models.CartOwner{SessionID: "sess-1"}

	t.Run("Success - Guest cart keyed by the session header", func(t *testing.T) {
		// Arrange
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)

		cart := &models.Cart{SessionID: "sess-1", Items: []models.CartItem{{VariantID: 11, Quantity: 2, UnitPrice: 20}}}
		svc.On("AddItem", mock.Anything, guest, &models.AddItemRequest{VariantID: 11, Quantity: 2}).Return(cart, nil).Once()

		req := testutils.CreateGuestRequest(http.MethodPost, "/api/guest-cart/items",
			jsonBody(t, models.AddItemRequest{VariantID: 11, Quantity: 2}), "sess-1", nil)
		rr := httptest.NewRecorder()

		// Act
		h.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.CartResponse
		decodeData(t, rr, &resp)
		assert.Equal(t, 2, resp.TotalItems)
		assert.InDelta(t, 40, resp.TotalPrice, 0.001)
	})

	t.Run("Success - Authenticated user wins over the session", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		userID := uuid.New()

		svc.On("AddItem", mock.Anything, mock.MatchedBy(func(o models.CartOwner) bool {
			return o.Authenticated() && *o.UserID == userID
		}), mock.Anything).Return(&models.Cart{UserID: &userID, Items: []models.CartItem{}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/items",
			jsonBody(t, models.AddItemRequest{VariantID: 11, Quantity: 1}), userID, nil)
		req.Header.Set(handlers.CartSessionHeader, "sess-1")
		rr := httptest.NewRecorder()

		h.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Validation", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/guest-cart/items",
			jsonBody(t, map[string]any{"variant_id": 11, "quantity": 0}), nil)
		rr := httptest.NewRecorder()

		h.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Concurrent update", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		svc.On("AddItem", mock.Anything, guest, mock.Anything).Return(nil, appErrors.ConflictError("Cart was modified concurrently")).Once()

		req := testutils.CreateGuestRequest(http.MethodPost, "/api/guest-cart/items",
			jsonBody(t, models.AddItemRequest{VariantID: 11, Quantity: 1}), "sess-1", nil)
		rr := httptest.NewRecorder()

		h.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestCartGetAndRemove(t *testing.T) {
	guest := models.CartOwner{SessionID: "sess-1"}

	t.Run("Success - Get", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		svc.On("GetCart", mock.Anything, guest).Return(&models.Cart{SessionID: "sess-1", Items: []models.CartItem{}}, nil).Once()

		req := testutils.CreateGuestRequest(http.MethodGet, "/api/guest-cart", nil, " sess-1 ", nil)
		rr := httptest.NewRecorder()

		h.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Get without owner", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		svc.On("GetCart", mock.Anything, models.CartOwner{}).Return(nil, appErrors.BadRequestError("Cart owner is required")).Once()

		rr := httptest.NewRecorder()
		h.GetCart().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/guest-cart", nil, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Success - Delete with variantId removes one line", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		svc.On("RemoveItem", mock.Anything, guest, int64(11)).Return(&models.Cart{Items: []models.CartItem{}}, nil).Once()

		req := testutils.CreateGuestRequest(http.MethodDelete, "/api/guest-cart/items?variantId=11", nil, "sess-1", nil)
		rr := httptest.NewRecorder()

		h.RemoveOrClear().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		svc.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
	})

	t.Run("Success - Delete without variantId clears the cart", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		svc.On("ClearCart", mock.Anything, guest).Return(nil).Once()

		req := testutils.CreateGuestRequest(http.MethodDelete, "/api/guest-cart/items", nil, "sess-1", nil)
		rr := httptest.NewRecorder()

		h.RemoveOrClear().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.CartResponse
		decodeData(t, rr, &resp)
		assert.Zero(t, resp.TotalItems)
	})

	t.Run("Failure - Invalid variantId", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)

		rr := httptest.NewRecorder()
		h.RemoveOrClear().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/guest-cart/items?variantId=x", nil, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Success - Update quantity", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		svc.On("UpdateQuantity", mock.Anything, guest, &models.UpdateQuantityRequest{VariantID: 11, Quantity: 0}).
			Return(&models.Cart{Items: []models.CartItem{}}, nil).Once()

		req := testutils.CreateGuestRequest(http.MethodPatch, "/api/guest-cart/items",
			jsonBody(t, models.UpdateQuantityRequest{VariantID: 11, Quantity: 0}), "sess-1", nil)
		rr := httptest.NewRecorder()

		h.UpdateQuantity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestCartMerge(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		userID := uuid.New()

		svc.On("MergeGuestCart", mock.Anything, userID, "sess-1").
			Return(&models.Cart{UserID: &userID, Items: []models.CartItem{{VariantID: 11, Quantity: 1}}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/cart/merge", nil, userID, nil)
		req.Header.Set(handlers.CartSessionHeader, "sess-1")
		rr := httptest.NewRecorder()

		h.Merge().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Unauthenticated", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)

		req := testutils.CreateGuestRequest(http.MethodPost, "/api/cart/merge", nil, "sess-1", nil)
		rr := httptest.NewRecorder()

		h.Merge().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		svc.AssertNotCalled(t, "MergeGuestCart", mock.Anything, mock.Anything, mock.Anything)
	})
}
