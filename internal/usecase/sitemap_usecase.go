package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/infrastructure/woocommerce"
	"pharmaplus-backend/pkg/cache"
)

const sitemapCacheKey = "sitemap:xml"

// sitemapPageSize is the per-page batch used when walking the catalog.
const sitemapPageSize = 100

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// staticPaths are the storefront routes that exist regardless of
// catalog contents.
var staticPaths = []string{"/", "/productos", "/quienes-somos", "/contacto"}

// SitemapUsecase renders the storefront sitemap from the static routes
// plus every product slug in the live catalog. The rendered XML is
// cached whole; crawlers tolerate hours of staleness.
type SitemapUsecase struct {
	store    woocommerce.StoreAPI
	memCache cache.CacheService
	cfg      *config.Config
}

func NewSitemapUsecase(store woocommerce.StoreAPI, memCache cache.CacheService, cfg *config.Config) *SitemapUsecase {
	return &SitemapUsecase{
		store:    store,
		memCache: memCache,
		cfg:      cfg,
	}
}

// GetSitemapXML returns the rendered sitemap document.
func (u *SitemapUsecase) GetSitemapXML(ctx context.Context) ([]byte, error) {
	if cached, found := u.memCache.Get(sitemapCacheKey); found {
		if body, ok := cached.([]byte); ok {
			return body, nil
		}
	}

	today := time.Now().Format("2006-01-02")
	urls := make([]sitemapURL, 0, len(staticPaths)+sitemapPageSize)
	for _, path := range staticPaths {
		urls = append(urls, sitemapURL{
			Loc:        u.cfg.FrontendURL + path,
			ChangeFreq: "weekly",
		})
	}

	for page := 1; ; page++ {
		products, err := u.store.ListProducts(ctx, page, sitemapPageSize, "", "")
		if err != nil {
			slog.Error("Usecase: GetSitemapXML - catalog walk failed", "page", page, "error", err)
			return nil, fmt.Errorf("failed to build sitemap: %w", err)
		}
		for _, p := range products {
			urls = append(urls, sitemapURL{
				Loc:        fmt.Sprintf("%s/productos/%s", u.cfg.FrontendURL, p.Slug),
				LastMod:    today,
				ChangeFreq: "daily",
			})
		}
		if len(products) < sitemapPageSize {
			break
		}
	}

	doc := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}
	body = append([]byte(xml.Header), body...)

	u.memCache.Set(sitemapCacheKey, body, u.cfg.CacheSitemapTTL)
	return body, nil
}
