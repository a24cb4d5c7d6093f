package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error)
	AddItem(ctx context.Context, owner models.CartOwner, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, owner models.CartOwner, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, owner models.CartOwner, variantID int64) (*models.Cart, error)
	ClearCart(ctx context.Context, owner models.CartOwner) error
	// MergeGuestCart moves every line of the session cart into the user's cart
	// and empties the session cart.
	MergeGuestCart(ctx context.Context, userID uuid.UUID, sessionID string) (*models.Cart, error)
}

type cartService struct {
	userCarts    repository.CartStore
	sessionCarts repository.CartStore
	products     repository.ProductRepository
	now          func() time.Time
}

func NewCartService(userCarts, sessionCarts repository.CartStore, products repository.ProductRepository) CartService {
	return &cartService{userCarts: userCarts, sessionCarts: sessionCarts, products: products, now: time.Now}
}

func (s *cartService) storeFor(owner models.CartOwner) (repository.CartStore, error) {
	switch {
	case owner.UserID != nil:
		return s.userCarts, nil
	case owner.SessionID != "":
		return s.sessionCarts, nil
	default:
		return nil, appErrors.BadRequestError("Cart session is required")
	}
}

func cartStoreError(err error, message string) error {
	if errors.Is(err, repository.ErrCartContention) {
		return appErrors.ConflictError("Cart was modified concurrently, please retry").WithError(err)
	}

	if errors.Is(err, repository.ErrMissingCartOwner) {
		return appErrors.BadRequestError("Cart session is required").WithError(err)
	}

	return appErrors.DatabaseError(message).WithError(err)
}

func (s *cartService) GetCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error) {
	store, err := s.storeFor(owner)
	if err != nil {
		return nil, err
	}

	cart, err := store.GetCart(ctx, owner)
	if err != nil {
		return nil, cartStoreError(err, "Failed to load cart")
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, owner models.CartOwner, req *models.AddItemRequest) (*models.Cart, error) {
	store, err := s.storeFor(owner)
	if err != nil {
		return nil, err
	}

	if req.Quantity < 1 {
		return nil, appErrors.BadRequestError("Quantity must be at least 1")
	}

	item, err := s.snapshot(ctx, req.VariantID, req.Quantity)
	if err != nil {
		return nil, err
	}

	cart, err := store.AddItem(ctx, owner, item)
	if err != nil {
		return nil, cartStoreError(err, "Failed to add item to cart")
	}

	middleware.LoggerFromContext(ctx).Info("Cart item added",
		slog.String("owner", owner.String()),
		slog.Int64("variantId", req.VariantID),
		slog.Int("quantity", req.Quantity),
	)

	return cart, nil
}

// snapshot captures the variant's name and base price as they are now.
func (s *cartService) snapshot(ctx context.Context, variantID int64, quantity int) (models.CartItem, error) {
	variant, err := s.products.GetVariant(ctx, variantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.CartItem{}, appErrors.NotFoundError("Variant not found").WithError(err)
		}

		return models.CartItem{}, appErrors.DatabaseError("Failed to get variant").WithError(err)
	}

	if !variant.Active {
		return models.CartItem{}, appErrors.BadRequestError("Variant is not available")
	}

	return models.CartItem{
		VariantID: variant.ID,
		ProductID: variant.ProductID,
		Quantity:  quantity,
		Name:      variant.Name,
		UnitPrice: variant.BasePrice,
		ImageURL:  variant.ImageURL,
		AddedAt:   s.now().UTC(),
	}, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, owner models.CartOwner, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	store, err := s.storeFor(owner)
	if err != nil {
		return nil, err
	}

	cart, err := store.UpdateQuantity(ctx, owner, req.VariantID, req.Quantity)
	if err != nil {
		return nil, cartStoreError(err, "Failed to update cart")
	}

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, owner models.CartOwner, variantID int64) (*models.Cart, error) {
	store, err := s.storeFor(owner)
	if err != nil {
		return nil, err
	}

	cart, err := store.RemoveItem(ctx, owner, variantID)
	if err != nil {
		return nil, cartStoreError(err, "Failed to remove cart item")
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, owner models.CartOwner) error {
	store, err := s.storeFor(owner)
	if err != nil {
		return err
	}

	if err := store.ClearCart(ctx, owner); err != nil {
		return cartStoreError(err, "Failed to clear cart")
	}

	return nil
}

func (s *cartService) MergeGuestCart(ctx context.Context, userID uuid.UUID, sessionID string) (*models.Cart, error) {
	if sessionID == "" {
		return nil, appErrors.BadRequestError("Cart session is required")
	}

	guest := models.CartOwner{SessionID: sessionID}
	user := models.CartOwner{UserID: &userID}

	guestCart, err := s.sessionCarts.GetCart(ctx, guest)
	if err != nil {
		return nil, cartStoreError(err, "Failed to load guest cart")
	}

	if len(guestCart.Items) == 0 {
		return s.GetCart(ctx, user)
	}

	var cart *models.Cart

	for _, item := range guestCart.Items {
		cart, err = s.userCarts.AddItem(ctx, user, item)
		if err != nil {
			return nil, cartStoreError(err, "Failed to merge cart")
		}
	}

	if err := s.sessionCarts.ClearCart(ctx, guest); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Guest cart could not be cleared after merge",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)
	}

	return cart, nil
}
