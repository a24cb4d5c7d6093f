package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetVariant(ctx context.Context, id int64) (*models.Variant, error)
	GetVariantsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Variant, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const variantColumns = `v.id, v.product_id, v.name, v.size, v.color, v.base_price, v.active, v.external_id, v.image_url, v.created_at, v.updated_at`

func scanVariant(row interface{ Scan(...any) error }) (*models.Variant, error) {
	v := &models.Variant{}

	err := row.Scan(&v.ID, &v.ProductID, &v.Name, &v.Size, &v.Color, &v.BasePrice, &v.Active, &v.ExternalID, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (r *productRepository) ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products WHERE active`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT id, name, slug, description, image_url, active, created_at, updated_at
		FROM products
		WHERE active
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	byID := make(map[int64]*models.Product)
	ids := []int64{}

	for rows.Next() {
		p := &models.Product{}

		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, p)
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	if len(ids) == 0 {
		return products, total, nil
	}

	variants, err := r.variantsForProducts(dbCtx, ids)
	if err != nil {
		return nil, 0, err
	}

	for _, v := range variants {
		if p, ok := byID[v.ProductID]; ok {
			p.Variants = append(p.Variants, *v)
		}
	}

	return products, total, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, slug, description, image_url, active, created_at, updated_at
		FROM products
		WHERE id = $1 AND active
	`

	p := &models.Product{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	variants, err := r.variantsForProducts(dbCtx, []int64{id})
	if err != nil {
		return nil, err
	}

	for _, v := range variants {
		p.Variants = append(p.Variants, *v)
	}

	return p, nil
}

func (r *productRepository) GetVariant(ctx context.Context, id int64) (*models.Variant, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + variantColumns + ` FROM variants v WHERE v.id = $1`

	v, err := scanVariant(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get variant: %w", err)
	}

	return v, nil
}

func (r *productRepository) GetVariantsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Variant, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + variantColumns + ` FROM variants v WHERE v.id = ANY($1)`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]*models.Variant, len(ids))

	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}

		result[v.ID] = v
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return result, nil
}

func (r *productRepository) variantsForProducts(ctx context.Context, productIDs []int64) ([]*models.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants v WHERE v.product_id = ANY($1) AND v.active ORDER BY v.product_id, v.id`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	variants := []*models.Variant{}

	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}

		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return variants, nil
}
