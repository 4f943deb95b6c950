package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gother/internal/model/store"
	"gother/internal/pkg/cache"
	"gother/internal/pkg/id"
	storeRepo "gother/internal/repository/store"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidProduct   = errors.New("invalid product")
)

// CatalogService owns products, categories, banners and the storefront
// settings singleton. Hot read paths go through Redis; every mutation
// invalidates the affected keys.
type CatalogService struct {
	productRepo  *storeRepo.ProductRepo
	categoryRepo *storeRepo.CategoryRepo
	bannerRepo   *storeRepo.BannerRepo
	settingsRepo *storeRepo.SettingsRepo
	cache        *cache.RedisCache
}

// NewCatalogService creates the catalog service
func NewCatalogService(
	productRepo *storeRepo.ProductRepo,
	categoryRepo *storeRepo.CategoryRepo,
	bannerRepo *storeRepo.BannerRepo,
	settingsRepo *storeRepo.SettingsRepo,
	redisCache *cache.RedisCache,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		bannerRepo:   bannerRepo,
		settingsRepo: settingsRepo,
		cache:        redisCache,
	}
}

// ListProducts returns the catalog, optionally narrowed to a category.
// The unfiltered list is cached; category views hit the store directly.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]*store.Product, error) {
	if category == "" && s.cache != nil {
		var cached []*store.Product
		if err := s.cache.Get(ctx, cache.ProductListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	if category == "" && s.cache != nil {
		if err := s.cache.Set(ctx, cache.ProductListCacheKey, products, cache.CatalogCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache product list")
		}
	}
	return products, nil
}

// GetProduct loads one product
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*store.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct adds a catalog item
func (s *CatalogService) CreateProduct(ctx context.Context, product *store.Product) error {
	if product.Name == "" || product.Price < 0 {
		return ErrInvalidProduct
	}
	for _, f := range product.Formats {
		if !f.IsValid() {
			return ErrInvalidProduct
		}
	}
	if product.ID == "" {
		product.ID = id.New()
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx, cache.ProductListCacheKey)
	return nil
}

// UpdateProduct edits a catalog item. Order snapshots are not touched.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, update bson.M) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Update(ctx, productID, update); err != nil {
		return err
	}
	s.invalidate(ctx, cache.ProductListCacheKey)
	return nil
}

// DeleteProduct removes a catalog item
func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	s.invalidate(ctx, cache.ProductListCacheKey)
	return nil
}

// ListCategories returns every catalog section
func (s *CatalogService) ListCategories(ctx context.Context) ([]*store.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory adds a catalog section keyed by a slug of its name
func (s *CatalogService) CreateCategory(ctx context.Context, category *store.Category) error {
	if category.Name == "" {
		return errors.New("category name required")
	}
	if category.ID == "" {
		category.ID = slugify(category.Name)
	}
	return s.categoryRepo.Create(ctx, category)
}

// UpdateCategory edits a catalog section's display fields
func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID string, update bson.M) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Update(ctx, categoryID, update)
}

// DeleteCategory removes a catalog section; its products keep the slug
// and surface as uncategorized.
func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.categoryRepo.Delete(ctx, categoryID)
}

// ListBanners returns the promotional banners
func (s *CatalogService) ListBanners(ctx context.Context) ([]*store.Banner, error) {
	return s.bannerRepo.List(ctx)
}

// CreateBanner adds a banner
func (s *CatalogService) CreateBanner(ctx context.Context, banner *store.Banner) error {
	if banner.URL == "" {
		return errors.New("banner url required")
	}
	if banner.ID == "" {
		banner.ID = id.New()
	}
	return s.bannerRepo.Create(ctx, banner)
}

// DeleteBanner removes a banner
func (s *CatalogService) DeleteBanner(ctx context.Context, bannerID string) error {
	return s.bannerRepo.Delete(ctx, bannerID)
}

// GetSettings loads the storefront settings, an empty document when unset
func (s *CatalogService) GetSettings(ctx context.Context) (*store.Settings, error) {
	if s.cache != nil {
		var cached store.Settings
		if err := s.cache.Get(ctx, cache.SettingsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &store.Settings{}, nil
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.SettingsCacheKey, settings, cache.CatalogCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache settings")
		}
	}
	return settings, nil
}

// UpdateSettings replaces the storefront settings
func (s *CatalogService) UpdateSettings(ctx context.Context, settings *store.Settings) error {
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return err
	}
	s.invalidate(ctx, cache.SettingsCacheKey)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("failed to invalidate cache")
	}
}

// slugify lowercases and hyphenates a category name into a stable key
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
