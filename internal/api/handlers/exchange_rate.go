package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
)

type ExchangeRateHandler struct {
	rates service.ExchangeRateService
}

func NewExchangeRateHandler(rates service.ExchangeRateService) *ExchangeRateHandler {
	return &ExchangeRateHandler{rates: rates}
}

// GetRates godoc
//	@Summary		Current exchange rates
//	@Description	Returns units per 1 EUR. Served from cache within the TTL; falls back to a static table with success=false when every source fails.
//	@Tags			Exchange rates
//	@Produce		json
//	@Success		200	{object}	models.RatesResult	"Rate table"
//	@Router			/exchange-rates [get]
func (h *ExchangeRateHandler) GetRates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := h.rates.GetRates(r.Context())

		if !result.Success {
			middleware.LoggerFromContext(r.Context()).Warn("Serving fallback exchange rates")
		}

		response.Success(w, http.StatusOK, result)
	}
}

// RefreshRates godoc
//	@Summary		Refresh exchange rates
//	@Description	Drops the cached table and fetches again.
//	@Tags			Exchange rates
//	@Produce		json
//	@Success		200	{object}	models.RatesResult	"Fresh rate table"
//	@Router			/exchange-rates [post]
func (h *ExchangeRateHandler) RefreshRates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := h.rates.Refresh(r.Context())

		middleware.LoggerFromContext(r.Context()).Info("Exchange rates refreshed",
			slog.Bool("success", result.Success),
			slog.String("source", result.Source),
		)

		response.Success(w, http.StatusOK, result)
	}
}
