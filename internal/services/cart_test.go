package service_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	repoMocks "github.com/aaravmahajanofficial/pod-storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	svc          service.CartService
	userCarts    *repoMocks.CartStore
	sessionCarts *repoMocks.CartStore
	products     *repoMocks.ProductRepository
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	f := &cartFixture{
		userCarts:    repoMocks.NewCartStore(t),
		sessionCarts: repoMocks.NewCartStore(t),
		products:     repoMocks.NewProductRepository(t),
	}
	f.svc = service.NewCartService(f.userCarts, f.sessionCarts, f.products)

	return f
}

func TestCartAddItem(t *testing.T) {
	userID := uuid.New()
	user := models.CartOwner{UserID: &userID}
	guest := models.CartOwner{SessionID: "sess-1"}

	t.Run("Success - Authenticated cart snapshots the variant", func(t *testing.T) {
		// Arrange
		f := newCartFixture(t)
		f.products.On("GetVariant", mock.Anything, int64(11)).Return(teeVariant(), nil).Once()

		expected := &models.Cart{UserID: &userID, Items: []models.CartItem{{VariantID: 11, Quantity: 2}}}
		f.userCarts.On("AddItem", mock.Anything, user, mock.MatchedBy(func(item models.CartItem) bool {
			return item.VariantID == 11 && item.ProductID == 1 && item.Quantity == 2 &&
				item.Name == "Classic Tee / M" && item.UnitPrice == 20 && !item.AddedAt.IsZero()
		})).Return(expected, nil).Once()

		// Act
		cart, err := f.svc.AddItem(t.Context(), user, &models.AddItemRequest{VariantID: 11, Quantity: 2})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, cart)
		f.sessionCarts.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Guest cart goes to the session store", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.On("GetVariant", mock.Anything, int64(11)).Return(teeVariant(), nil).Once()
		f.sessionCarts.On("AddItem", mock.Anything, guest, mock.Anything).Return(&models.Cart{SessionID: "sess-1"}, nil).Once()

		cart, err := f.svc.AddItem(t.Context(), guest, &models.AddItemRequest{VariantID: 11, Quantity: 1})

		require.NoError(t, err)
		assert.Equal(t, "sess-1", cart.SessionID)
	})

	t.Run("Failure - No owner", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.svc.AddItem(t.Context(), models.CartOwner{}, &models.AddItemRequest{VariantID: 11, Quantity: 1})

		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Failure - Quantity below one", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.svc.AddItem(t.Context(), guest, &models.AddItemRequest{VariantID: 11, Quantity: 0})

		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Failure - Variant not found", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.On("GetVariant", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.AddItem(t.Context(), guest, &models.AddItemRequest{VariantID: 99, Quantity: 1})

		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("Failure - Inactive variant", func(t *testing.T) {
		f := newCartFixture(t)
		variant := teeVariant()
		variant.Active = false
		f.products.On("GetVariant", mock.Anything, int64(11)).Return(variant, nil).Once()

		_, err := f.svc.AddItem(t.Context(), guest, &models.AddItemRequest{VariantID: 11, Quantity: 1})

		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Failure - Contention maps to conflict", func(t *testing.T) {
		f := newCartFixture(t)
		f.products.On("GetVariant", mock.Anything, int64(11)).Return(teeVariant(), nil).Once()
		f.sessionCarts.On("AddItem", mock.Anything, guest, mock.Anything).Return(nil, repository.ErrCartContention).Once()

		_, err := f.svc.AddItem(t.Context(), guest, &models.AddItemRequest{VariantID: 11, Quantity: 1})

		requireAppError(t, err, http.StatusConflict)
	})
}

func TestCartMutations(t *testing.T) {
	guest := models.CartOwner{SessionID: "sess-1"}

	t.Run("Success - Update quantity", func(t *testing.T) {
		f := newCartFixture(t)
		f.sessionCarts.On("UpdateQuantity", mock.Anything, guest, int64(11), 0).Return(&models.Cart{Items: []models.CartItem{}}, nil).Once()

		cart, err := f.svc.UpdateQuantity(t.Context(), guest, &models.UpdateQuantityRequest{VariantID: 11, Quantity: 0})

		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("Success - Remove item", func(t *testing.T) {
		f := newCartFixture(t)
		f.sessionCarts.On("RemoveItem", mock.Anything, guest, int64(11)).Return(&models.Cart{}, nil).Once()

		_, err := f.svc.RemoveItem(t.Context(), guest, 11)

		require.NoError(t, err)
	})

	t.Run("Failure - Clear surfaces database errors", func(t *testing.T) {
		f := newCartFixture(t)
		f.sessionCarts.On("ClearCart", mock.Anything, guest).Return(errors.New("redis down")).Once()

		err := f.svc.ClearCart(t.Context(), guest)

		requireAppError(t, err, http.StatusInternalServerError)
	})

	t.Run("Failure - Get without owner", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.svc.GetCart(t.Context(), models.CartOwner{})

		requireAppError(t, err, http.StatusBadRequest)
	})
}

func TestMergeGuestCart(t *testing.T) {
	userID := uuid.New()
	user := models.CartOwner{UserID: &userID}
	guest := models.CartOwner{SessionID: "sess-1"}

	t.Run("Success - Lines move into the user cart and the guest cart is emptied", func(t *testing.T) {
		// Arrange
		f := newCartFixture(t)
		lines := []models.CartItem{{VariantID: 11, Quantity: 1}, {VariantID: 12, Quantity: 3}}
		f.sessionCarts.On("GetCart", mock.Anything, guest).Return(&models.Cart{SessionID: "sess-1", Items: lines}, nil).Once()
		f.userCarts.On("AddItem", mock.Anything, user, lines[0]).Return(&models.Cart{Items: lines[:1]}, nil).Once()
		f.userCarts.On("AddItem", mock.Anything, user, lines[1]).Return(&models.Cart{Items: lines}, nil).Once()
		f.sessionCarts.On("ClearCart", mock.Anything, guest).Return(nil).Once()

		// Act
		cart, err := f.svc.MergeGuestCart(t.Context(), userID, "sess-1")

		// Assert
		require.NoError(t, err)
		assert.Len(t, cart.Items, 2)
	})

	t.Run("Success - Empty guest cart returns the user cart", func(t *testing.T) {
		f := newCartFixture(t)
		f.sessionCarts.On("GetCart", mock.Anything, guest).Return(&models.Cart{SessionID: "sess-1", Items: []models.CartItem{}}, nil).Once()
		f.userCarts.On("GetCart", mock.Anything, user).Return(&models.Cart{UserID: &userID}, nil).Once()

		cart, err := f.svc.MergeGuestCart(t.Context(), userID, "sess-1")

		require.NoError(t, err)
		assert.Equal(t, &userID, cart.UserID)
	})

	t.Run("Success - Guest cart clear failure does not fail the merge", func(t *testing.T) {
		f := newCartFixture(t)
		lines := []models.CartItem{{VariantID: 11, Quantity: 1}}
		f.sessionCarts.On("GetCart", mock.Anything, guest).Return(&models.Cart{Items: lines}, nil).Once()
		f.userCarts.On("AddItem", mock.Anything, user, lines[0]).Return(&models.Cart{Items: lines}, nil).Once()
		f.sessionCarts.On("ClearCart", mock.Anything, guest).Return(errors.New("redis down")).Once()

		_, err := f.svc.MergeGuestCart(t.Context(), userID, "sess-1")

		require.NoError(t, err)
	})

	t.Run("Failure - Session id is required", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.svc.MergeGuestCart(t.Context(), userID, "")

		requireAppError(t, err, http.StatusBadRequest)
	})
}
