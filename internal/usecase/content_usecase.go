package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/infrastructure/woocommerce"
	"pharmaplus-backend/pkg/cache"
)

// ContentUsecase serves WordPress pages (quiénes somos, políticas,
// preguntas frecuentes) through the same cache layer as the catalog.
// Pages change rarely so the window is long.
type ContentUsecase struct {
	store    woocommerce.StoreAPI
	memCache cache.CacheService
	cfg      *config.Config
}

func NewContentUsecase(store woocommerce.StoreAPI, memCache cache.CacheService, cfg *config.Config) *ContentUsecase {
	return &ContentUsecase{
		store:    store,
		memCache: memCache,
		cfg:      cfg,
	}
}

func (u *ContentUsecase) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	cacheKey := fmt.Sprintf("content:page:%s", slug)
	if cached, found := u.memCache.Get(cacheKey); found {
		if page, ok := cached.(*domain.Page); ok {
			return page, nil
		}
	}

	raw, err := u.store.GetPageBySlug(ctx, slug)
	if err != nil {
		slog.Error("Usecase: GetPage - upstream fetch failed", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	if raw == nil {
		return nil, domain.ErrPageNotFound
	}

	page := woocommerce.ToPage(*raw)
	u.memCache.Set(cacheKey, &page, u.cfg.CacheContentTTL)
	return &page, nil
}
