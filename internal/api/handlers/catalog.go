package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Lists active products with every variant priced for the given country and currency.
//	@Tags			Catalog
//	@Produce		json
//	@Param			page		query		int														false	"Page number (default 1)"
//	@Param			pageSize	query		int														false	"Items per page (default 20, max 50)"
//	@Param			country		query		string													false	"ISO 3166-1 alpha-2 shipping country"
//	@Param			currency	query		string													false	"ISO 4217 currency (default EUR)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.LocalizedProduct}	"Products"
//	@Failure		500			{object}	response.ErrorResponse									"Internal server error"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := pagination(r, 20)

		products, err := h.catalogService.ListProducts(r.Context(), page, pageSize, priceContext(r))
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Tags			Catalog
//	@Produce		json
//	@Param			id			path		int						true	"Product ID"
//	@Param			country		query		string					false	"ISO 3166-1 alpha-2 shipping country"
//	@Param			currency	query		string					false	"ISO 4217 currency"
//	@Success		200			{object}	models.LocalizedProduct	"Product"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id < 1 {
			response.Error(w, errors.BadRequestError("Invalid product ID"))
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id, priceContext(r))
		if err != nil {
			logger.Warn("Failed to get product", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// GetPrice godoc
//	@Summary		Price a variant
//	@Description	Applies the zone multiplier, converts from EUR and rounds for display.
//	@Tags			Catalog
//	@Produce		json
//	@Param			variantId	query		int						true	"Variant ID"
//	@Param			country		query		string					false	"ISO 3166-1 alpha-2 shipping country"
//	@Param			currency	query		string					false	"ISO 4217 currency"
//	@Success		200			{object}	models.LocalizedPrice	"Price"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid query"
//	@Failure		404			{object}	response.ErrorResponse	"Variant not found"
//	@Router			/prices [get]
func (h *CatalogHandler) GetPrice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pc := priceContext(r)

		variantID, err := strconv.ParseInt(r.URL.Query().Get("variantId"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("variantId is required"))
			return
		}

		query := &models.PriceQuery{VariantID: variantID, Country: pc.Country, Currency: pc.Currency}
		if err := h.validator.Struct(query); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, errors.BadRequestError("Invalid price query"))

			return
		}

		price, err := h.catalogService.GetPrice(r.Context(), query)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, price)
	}
}
