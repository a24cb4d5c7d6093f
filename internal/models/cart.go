package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	VariantID int64     `json:"variant_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	ImageURL  string    `json:"image_url,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart belongs either to a user (server side) or to an anonymous session.
// Items keep insertion order and hold at most one line per variant.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	SessionID string     `json:"session_id,omitempty"`
	Items     []CartItem `json:"items"`
	Version   int64      `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Add merges the quantity into an existing line for the same variant, keeping the
// original snapshot, or appends the item.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		return
	}

	for i := range c.Items {
		if c.Items[i].VariantID == item.VariantID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}

	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity directly; qty <= 0 removes the line.
func (c *Cart) UpdateQuantity(variantID int64, qty int) bool {
	if qty <= 0 {
		return c.Remove(variantID)
	}

	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			c.Items[i].Quantity = qty
			return true
		}
	}

	return false
}

func (c *Cart) Remove(variantID int64) bool {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}

	return false
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) Item(variantID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.VariantID == variantID {
			return item, true
		}
	}

	return CartItem{}, false
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

func (c *Cart) TotalPrice() float64 {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2).InexactFloat64()
}

// CartOwner identifies whose cart a request is about. UserID wins over SessionID.
type CartOwner struct {
	UserID    *uuid.UUID
	SessionID string
}

func (o CartOwner) Authenticated() bool {
	return o.UserID != nil
}

func (o CartOwner) String() string {
	if o.UserID != nil {
		return "user:" + o.UserID.String()
	}

	return "session:" + o.SessionID
}

type CartResponse struct {
	Cart       *Cart   `json:"cart"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

func NewCartResponse(cart *Cart) *CartResponse {
	return &CartResponse{Cart: cart, TotalItems: cart.TotalItems(), TotalPrice: cart.TotalPrice()}
}

type AddItemRequest struct {
	VariantID int64 `json:"variant_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"required,min=1"`
}

// Quantity may be zero or negative, which removes the line.
type UpdateQuantityRequest struct {
	VariantID int64 `json:"variant_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

type RemoveItemRequest struct {
	VariantID int64 `json:"variant_id" validate:"required,gt=0"`
}
