package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

var (
	// ErrProductNotFound mahsulot katalogda topilmadi
	ErrProductNotFound = errors.New("product not found")

	// ErrAttributeNotFound mahsulotda so'ralgan xususiyat yo'q
	ErrAttributeNotFound = errors.New("attribute not found")
)

// ProductUseCase mahsulot katalogi bilan bog'liq business logic
type ProductUseCase interface {
	// GetAttribute mahsulot xususiyatini to'g'ridan-to'g'ri olish (AI siz)
	GetAttribute(ctx context.Context, productName, attributeName string) (*entity.ProductDetails, error)

	// FindSimilar o'xshash mahsulot nomlarini olish
	FindSimilar(ctx context.Context, productName string, limit int) ([]string, error)

	// UploadCatalog Excel fayldan katalogni yangilash
	UploadCatalog(ctx context.Context, fileData []byte, filename string) (int, error)

	// CatalogInfo katalog haqida ma'lumot
	CatalogInfo(ctx context.Context) (*entity.CatalogInfo, error)

	// RecentQueries oxirgi qayta ishlangan so'rovlar (admin audit)
	RecentQueries(ctx context.Context, limit int) ([]entity.QueryLogEntry, error)
}

type productUseCase struct {
	productRepo repository.ProductRepository
	excelParser repository.CatalogParser
	cache       repository.CacheRepository
	queryLog    repository.QueryLogRepository // nil bo'lishi mumkin
	log         *logrus.Logger
}

// NewProductUseCase yangi ProductUseCase yaratish
func NewProductUseCase(
	productRepo repository.ProductRepository,
	excelParser repository.CatalogParser,
	cache repository.CacheRepository,
	queryLog repository.QueryLogRepository,
	log *logrus.Logger,
) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		excelParser: excelParser,
		cache:       cache,
		queryLog:    queryLog,
		log:         log,
	}
}

// GetAttribute mahsulot xususiyatini to'g'ridan-to'g'ri olish
func (u *productUseCase) GetAttribute(ctx context.Context, productName, attributeName string) (*entity.ProductDetails, error) {
	name, err := entity.NewProductName(productName)
	if err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	attr, ok := product.Attribute(attributeName)
	if !ok {
		return nil, ErrAttributeNotFound
	}

	return &entity.ProductDetails{
		ProductName:   product.Name().Value(),
		Attribute:     attr.Name(),
		Value:         attr.Value(),
		Unit:          attr.Unit(),
		AllAttributes: product.FormattedAttributes(),
	}, nil
}

// FindSimilar o'xshash mahsulot nomlarini olish
func (u *productUseCase) FindSimilar(ctx context.Context, productName string, limit int) ([]string, error) {
	name, err := entity.NewProductName(productName)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = maxSuggestions
	}

	similar, err := u.productRepo.FindSimilar(ctx, name, limit)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(similar))
	for _, s := range similar {
		names = append(names, s.Value())
	}
	return names, nil
}

// UploadCatalog Excel fayldan katalogni yangilash
func (u *productUseCase) UploadCatalog(ctx context.Context, fileData []byte, filename string) (int, error) {
	products, err := u.excelParser.ParseProductsFromBytes(ctx, fileData, filename)
	if err != nil {
		return 0, fmt.Errorf("excel parse qilinmadi: %w", err)
	}

	if len(products) == 0 {
		return 0, fmt.Errorf("excel faylda mahsulot topilmadi")
	}

	if err := u.productRepo.ReplaceCatalog(ctx, products, filename); err != nil {
		return 0, fmt.Errorf("katalogni yangilab bo'lmadi: %w", err)
	}

	// Eski katalogga asoslangan javoblar endi noto'g'ri
	u.cache.InvalidateByPrefix(ctx, QueryCachePrefix)

	u.log.WithFields(logrus.Fields{
		"count":  len(products),
		"source": filename,
	}).Info("katalog yuklandi")

	return len(products), nil
}

// CatalogInfo katalog haqida ma'lumot
func (u *productUseCase) CatalogInfo(ctx context.Context) (*entity.CatalogInfo, error) {
	return u.productRepo.CatalogInfo(ctx)
}

// RecentQueries oxirgi qayta ishlangan so'rovlar
func (u *productUseCase) RecentQueries(ctx context.Context, limit int) ([]entity.QueryLogEntry, error) {
	if u.queryLog == nil {
		return nil, nil
	}
	return u.queryLog.Recent(ctx, limit)
}
