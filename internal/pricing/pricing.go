package pricing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/pod-storefront/internal/config"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultZone  = "default"
	BaseCurrency = "EUR"
)

// RoundingPolicy controls how a converted amount is rounded for display.
type RoundingPolicy string

const (
	// RoundCharm rounds up to the next .99 (48.50 -> 48.99).
	RoundCharm RoundingPolicy = "charm"
	// RoundWhole rounds to the nearest unit below 1000 and floors to a multiple of 10 above.
	RoundWhole RoundingPolicy = "whole"
	RoundNone  RoundingPolicy = "none"
)

type Zone struct {
	Name       string
	Multiplier float64
}

var symbols = map[string]string{
	"EUR": "€",
	"GBP": "£",
	"USD": "$",
	"CZK": "Kč",
	"PLN": "zł",
	"CHF": "CHF",
}

type Engine struct {
	zones           map[string]Zone
	rounding        map[string]RoundingPolicy
	defaultCurrency string
	shippingFeeEUR  float64
}

func NewEngine(cfg config.Pricing) *Engine {
	e := &Engine{
		zones:           make(map[string]Zone),
		rounding:        make(map[string]RoundingPolicy),
		defaultCurrency: strings.ToUpper(cfg.DefaultCurrency),
		shippingFeeEUR:  cfg.ShippingFeeEUR,
	}

	if e.defaultCurrency == "" {
		e.defaultCurrency = BaseCurrency
	}

	for _, z := range cfg.Zones {
		for _, country := range z.Countries {
			e.zones[strings.ToUpper(country)] = Zone{Name: z.Name, Multiplier: z.Multiplier}
		}
	}

	for currency, policy := range cfg.Rounding {
		e.rounding[strings.ToUpper(currency)] = RoundingPolicy(strings.ToLower(policy))
	}

	return e
}

func (e *Engine) DefaultCurrency() string {
	return e.defaultCurrency
}

// ZoneFor returns the zone for an ISO country code; unknown codes get the default zone.
func (e *Engine) ZoneFor(countryCode string) Zone {
	if z, ok := e.zones[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return z
	}

	return Zone{Name: DefaultZone, Multiplier: 1.0}
}

// Convert turns an EUR amount into the target currency. A currency missing from
// rates passes through at 1:1.
func (e *Engine) Convert(amountEUR float64, currency string, rates models.Rates) float64 {
	currency = e.normalizeCurrency(currency)
	if currency == BaseCurrency {
		return amountEUR
	}

	rate, ok := rates[currency]
	if !ok || rate <= 0 {
		slog.Warn("No exchange rate for currency, using 1:1", slog.String("currency", currency))
		return amountEUR
	}

	return decimal.NewFromFloat(amountEUR).Mul(decimal.NewFromFloat(rate)).InexactFloat64()
}

func (e *Engine) Policy(currency string) RoundingPolicy {
	if p, ok := e.rounding[e.normalizeCurrency(currency)]; ok {
		return p
	}

	return RoundCharm
}

func (e *Engine) Round(amount float64, currency string) float64 {
	return Round(amount, e.Policy(currency))
}

// Round applies a rounding policy. Non-positive amounts are returned as-is.
func Round(amount float64, policy RoundingPolicy) float64 {
	if amount <= 0 {
		return amount
	}

	d := decimal.NewFromFloat(amount)

	switch policy {
	case RoundCharm:
		charm := d.Floor().Add(decimal.RequireFromString("0.99"))
		if charm.LessThan(d) {
			charm = charm.Add(decimal.NewFromInt(1))
		}

		return charm.InexactFloat64()
	case RoundWhole:
		if d.LessThan(decimal.NewFromInt(1000)) {
			return d.Round(0).InexactFloat64()
		}

		ten := decimal.NewFromInt(10)

		return d.Div(ten).Floor().Mul(ten).InexactFloat64()
	default:
		return d.Round(2).InexactFloat64()
	}
}

// PriceFor applies the zone multiplier, converts and rounds a base EUR price.
func (e *Engine) PriceFor(basePriceEUR float64, countryCode, currency string, rates models.Rates) models.LocalizedPrice {
	currency = e.normalizeCurrency(currency)
	zone := e.ZoneFor(countryCode)

	regional := decimal.NewFromFloat(basePriceEUR).Mul(decimal.NewFromFloat(zone.Multiplier)).InexactFloat64()
	amount := e.Round(e.Convert(regional, currency, rates), currency)

	return models.LocalizedPrice{
		Amount:    amount,
		Currency:  currency,
		Formatted: e.Format(amount, currency),
		Zone:      zone.Name,
	}
}

// ShippingFee is the flat shipping fee converted to the target currency.
func (e *Engine) ShippingFee(currency string, rates models.Rates) float64 {
	return e.Round(e.Convert(e.shippingFeeEUR, currency, rates), currency)
}

// Format renders an amount with its currency symbol. Currencies rounded to whole
// units are printed without decimals.
func (e *Engine) Format(amount float64, currency string) string {
	currency = e.normalizeCurrency(currency)

	decimals := int32(2)
	if e.Policy(currency) == RoundWhole {
		decimals = 0
	}

	value := decimal.NewFromFloat(amount).StringFixed(decimals)

	symbol, ok := symbols[currency]
	if !ok {
		return fmt.Sprintf("%s %s", value, currency)
	}

	switch currency {
	case "CZK", "PLN":
		return fmt.Sprintf("%s %s", value, symbol)
	case "CHF":
		return fmt.Sprintf("%s %s", symbol, value)
	default:
		return symbol + value
	}
}

func (e *Engine) normalizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return e.defaultCurrency
	}

	return currency
}
