package models

import "time"

type Variant struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	Name       string    `json:"name"`
	Size       string    `json:"size,omitempty"`
	Color      string    `json:"color,omitempty"`
	BasePrice  float64   `json:"base_price"`
	Active     bool      `json:"active"`
	ExternalID string    `json:"external_id"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	Variants    []Variant `json:"variants,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LocalizedPrice struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
	Zone      string  `json:"zone"`
}

type LocalizedVariant struct {
	Variant
	Price LocalizedPrice `json:"price"`
}

type LocalizedProduct struct {
	Product
	Variants []LocalizedVariant `json:"variants"`
}

type PriceQuery struct {
	VariantID int64  `json:"variant_id" validate:"required,gt=0"`
	Country   string `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	Currency  string `json:"currency" validate:"omitempty,len=3,alpha"`
}

// PriceContext selects the zone and currency prices are shown in. Empty values use the defaults.
type PriceContext struct {
	Country  string
	Currency string
}
