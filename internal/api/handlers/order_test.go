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

func checkoutBody() models.CheckoutRequest {
	return models.CheckoutRequest{
		Items: []models.CheckoutItem{{VariantID: 11, Quantity: 2}},
		ShippingInfo: models.ShippingInfo{
			Name:        "Jane Doe",
			Address1:    "Vinohradska 1",
			City:        "Praha",
			CountryCode: "CZ",
			Zip:         "12000",
			Email:       "jane@example.com",
		},
		Currency: "CZK",
	}
}

func newOrderHandler(t *testing.T) (*handlers.OrderHandler, *mocks.OrderService, *mocks.FulfillmentService) {
	t.Helper()

	orders := mocks.NewOrderService(t)
	fulfillment := mocks.NewFulfillmentService(t)

	return handlers.NewOrderHandler(orders, fulfillment), orders, fulfillment
}

func TestCheckout(t *testing.T) {
	t.Run("Success - Guest checkout", func(t *testing.T) {
		// Arrange
		h, orders, _ := newOrderHandler(t)
		orderID := uuid.New()

		orders.On("CreateCheckout", mock.Anything, models.CartOwner{SessionID: "sess-1"}, mock.MatchedBy(func(req *models.CheckoutRequest) bool {
			return req.Currency == "CZK" && req.Items[0].VariantID == 11 && req.ShippingInfo.CountryCode == "CZ"
		})).Return(&models.CheckoutResponse{URL: "https://checkout.stripe.test/c/pay/cs_1", OrderID: orderID}, nil).Once()

		req := testutils.CreateGuestRequest(http.MethodPost, "/api/checkout", jsonBody(t, checkoutBody()), "sess-1", nil)
		rr := httptest.NewRecorder()

		// Act
		h.Checkout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp models.CheckoutResponse
		decodeData(t, rr, &resp)
		assert.Equal(t, orderID, resp.OrderID)
		assert.Contains(t, rr.Body.String(), `"url":"https://checkout.stripe.test/c/pay/cs_1"`)
	})

	t.Run("Failure - Missing shipping details", func(t *testing.T) {
		h, orders, _ := newOrderHandler(t)
		body := checkoutBody()
		body.ShippingInfo.Email = ""

		rr := httptest.NewRecorder()
		h.Checkout().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/checkout", jsonBody(t, body), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		orders.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Payment provider error", func(t *testing.T) {
		h, orders, _ := newOrderHandler(t)
		orders.On("CreateCheckout", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.ThirdPartyError("Failed to create checkout session")).Once()

		rr := httptest.NewRecorder()
		h.Checkout().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/checkout", jsonBody(t, checkoutBody()), nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, decodeError(t, rr).Code)
	})
}

func TestOrderReads(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("Success - List own orders", func(t *testing.T) {
		h, orders, _ := newOrderHandler(t)
		orders.On("ListOrders", mock.Anything, userID, 1, 10).
			Return(&models.PaginatedResponse{Data: []*models.Order{}, Page: 1, PageSize: 10}, nil).Once()

		rr := httptest.NewRecorder()
		h.ListOrders().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/orders", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - List without auth", func(t *testing.T) {
		h, orders, _ := newOrderHandler(t)

		rr := httptest.NewRecorder()
		h.ListOrders().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/orders", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		orders.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Get own order", func(t *testing.T) {
		h, orders, _ := newOrderHandler(t)
		orders.On("GetOrder", mock.Anything, orderID, userID).Return(&models.Order{ID: orderID, Status: models.OrderStatusPaid}, nil).Once()

		rr := httptest.NewRecorder()
		h.GetOrder().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/orders/"+orderID.String(), nil, userID,
			map[string]string{"id": orderID.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var order models.Order
		decodeData(t, rr, &order)
		assert.Equal(t, models.OrderStatusPaid, order.Status)
	})

	t.Run("Failure - Malformed id", func(t *testing.T) {
		h, _, _ := newOrderHandler(t)

		rr := httptest.NewRecorder()
		h.GetOrder().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/orders/abc", nil, userID,
			map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Success - Guest lookup", func(t *testing.T) {
		h, orders, _ := newOrderHandler(t)
		orders.On("LookupOrder", mock.Anything, orderID, "jane@example.com").Return(&models.Order{ID: orderID}, nil).Once()

		body := jsonBody(t, models.OrderLookupRequest{ID: orderID, Email: "jane@example.com"})
		rr := httptest.NewRecorder()
		h.Lookup().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/orders/lookup", body, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Lookup with the wrong email", func(t *testing.T) {
		h, orders, _ := newOrderHandler(t)
		orders.On("LookupOrder", mock.Anything, orderID, "other@example.com").Return(nil, appErrors.NotFoundError("Order not found")).Once()

		body := jsonBody(t, models.OrderLookupRequest{ID: orderID, Email: "other@example.com"})
		rr := httptest.NewRecorder()
		h.Lookup().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/orders/lookup", body, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRetryFulfillment(t *testing.T) {
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		h, _, fulfillment := newOrderHandler(t)
		fulfillment.On("Submit", mock.Anything, orderID).
			Return(&models.FulfillmentResponse{OrderID: orderID, ProviderOrderID: "4242", Status: models.OrderStatusProcessing}, nil).Once()

		rr := httptest.NewRecorder()
		h.RetryFulfillment().ServeHTTP(rr, testutils.CreateAdminRequest(http.MethodPost, "/api/admin/orders/"+orderID.String()+"/fulfillment", nil, map[string]string{"id": orderID.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.FulfillmentResponse
		decodeData(t, rr, &resp)
		assert.Equal(t, "4242", resp.ProviderOrderID)
	})

	t.Run("Failure - Order not submittable", func(t *testing.T) {
		h, _, fulfillment := newOrderHandler(t)
		fulfillment.On("Submit", mock.Anything, orderID).Return(nil, appErrors.ConflictError("Order is pending")).Once()

		rr := httptest.NewRecorder()
		h.RetryFulfillment().ServeHTTP(rr, testutils.CreateAdminRequest(http.MethodPost, "/api/admin/orders/"+orderID.String()+"/fulfillment", nil, map[string]string{"id": orderID.String()}))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
