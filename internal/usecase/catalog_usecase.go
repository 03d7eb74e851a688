package usecase

import (
	"context"
	"fmt"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/infrastructure/woocommerce"
	"pharmaplus-backend/pkg/cache"
)

type CatalogUsecase struct {
	store woocommerce.StoreAPI
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(store woocommerce.StoreAPI, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// ListProducts returns one catalog page. Search results bypass the
// cache; browse pages are cached per page/category.
func (u *CatalogUsecase) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 || filter.PerPage > 100 {
		filter.PerPage = 24
	}

	key := ""
	if filter.Search == "" {
		key = fmt.Sprintf("catalog:products:%s:%d:%d", filter.Category, filter.Page, filter.PerPage)
		if val, found := u.cache.Get(key); found {
			return val.([]domain.Product), nil
		}
	}

	raw, err := u.store.ListProducts(ctx, filter.Page, filter.PerPage, filter.Search, filter.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, woocommerce.ToProduct(p))
	}

	if key != "" {
		u.cache.Set(key, products, u.cfg.CacheCatalogTTL)
	}
	return products, nil
}

func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	key := fmt.Sprintf("catalog:product:slug:%s", slug)
	if val, found := u.cache.Get(key); found {
		product := val.(domain.Product)
		return &product, nil
	}

	raw, err := u.store.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	product := woocommerce.ToProduct(*raw)
	u.cache.Set(key, product, u.cfg.CacheCatalogTTL)
	return &product, nil
}

func (u *CatalogUsecase) GetCategories(ctx context.Context) ([]domain.Category, error) {
	key := "catalog:categories"
	if val, found := u.cache.Get(key); found {
		return val.([]domain.Category), nil
	}

	raw, err := u.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(raw))
	for _, c := range raw {
		categories = append(categories, woocommerce.ToCategory(c))
	}

	u.cache.Set(key, categories, u.cfg.CacheCatalogTTL)
	return categories, nil
}
