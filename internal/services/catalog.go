package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/cache"
	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"golang.org/x/sync/errgroup"
)

const catalogFanOut = 8

type CatalogService interface {
	ListProducts(ctx context.Context, page, size int, pc models.PriceContext) (*models.PaginatedResponse, error)
	GetProduct(ctx context.Context, id int64, pc models.PriceContext) (*models.LocalizedProduct, error)
	GetPrice(ctx context.Context, query *models.PriceQuery) (*models.LocalizedPrice, error)
}

type catalogService struct {
	products repository.ProductRepository
	rates    ExchangeRateService
	engine   *pricing.Engine
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewCatalogService returns a catalog priced in the caller's zone and currency.
// productCache may be nil.
func NewCatalogService(products repository.ProductRepository, rates ExchangeRateService, engine *pricing.Engine, productCache cache.Cache, cacheTTL time.Duration) CatalogService {
	return &catalogService{products: products, rates: rates, engine: engine, cache: productCache, cacheTTL: cacheTTL}
}

type productPage struct {
	Products []*models.Product `json:"products"`
	Total    int               `json:"total"`
}

func (s *catalogService) ListProducts(ctx context.Context, page, size int, pc models.PriceContext) (*models.PaginatedResponse, error) {
	page, size = models.NormalizePage(page, size, 20, 50)

	key := cache.Key(cache.CatalogKeyPrefix, fmt.Sprintf("%d:%d", page, size))

	var cached productPage
	if s.cacheGet(ctx, key, &cached) {
		return s.localizePage(ctx, cached, page, size, pc)
	}

	products, total, err := s.products.ListProducts(ctx, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	result := productPage{Products: products, Total: total}
	s.cacheSet(ctx, key, result)

	return s.localizePage(ctx, result, page, size, pc)
}

func (s *catalogService) localizePage(ctx context.Context, p productPage, page, size int, pc models.PriceContext) (*models.PaginatedResponse, error) {
	localized, err := s.localizeAll(ctx, p.Products, pc)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedResponse{Data: localized, Total: p.Total, Page: page, PageSize: size}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64, pc models.PriceContext) (*models.LocalizedProduct, error) {
	key := cache.Key(cache.ProductKeyPrefix, fmt.Sprintf("%d", id))

	var product *models.Product

	var cached models.Product
	if s.cacheGet(ctx, key, &cached) {
		product = &cached
	} else {
		p, err := s.products.GetProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, appErrors.NotFoundError("Product not found").WithError(err)
			}

			return nil, appErrors.DatabaseError("Failed to get product").WithError(err)
		}

		product = p
		s.cacheSet(ctx, key, product)
	}

	localized, err := s.localizeAll(ctx, []*models.Product{product}, pc)
	if err != nil {
		return nil, err
	}

	return &localized[0], nil
}

func (s *catalogService) GetPrice(ctx context.Context, query *models.PriceQuery) (*models.LocalizedPrice, error) {
	variant, err := s.products.GetVariant(ctx, query.VariantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Variant not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to get variant").WithError(err)
	}

	if !variant.Active {
		return nil, appErrors.BadRequestError("Variant is not available")
	}

	rates := s.rates.GetRates(ctx)
	price := s.engine.PriceFor(variant.BasePrice, query.Country, query.Currency, rates.Rates)

	return &price, nil
}

// localizeAll prices every product's variants with one rate table, fanning out per product.
func (s *catalogService) localizeAll(ctx context.Context, products []*models.Product, pc models.PriceContext) ([]models.LocalizedProduct, error) {
	rates := s.rates.GetRates(ctx).Rates
	country := strings.ToUpper(pc.Country)

	out := make([]models.LocalizedProduct, len(products))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(catalogFanOut)

	for i, p := range products {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			lp := models.LocalizedProduct{Product: *p, Variants: make([]models.LocalizedVariant, 0, len(p.Variants))}
			lp.Product.Variants = nil

			for _, v := range p.Variants {
				lp.Variants = append(lp.Variants, models.LocalizedVariant{
					Variant: v,
					Price:   s.engine.PriceFor(v.BasePrice, country, pc.Currency, rates),
				})
			}

			out[i] = lp

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, appErrors.InternalError("Failed to price products").WithError(err)
	}

	return out, nil
}

func (s *catalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}

	return found
}

func (s *catalogService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		slog.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
