package repository

import (
	"context"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

// ProductRepository mahsulot katalogi bilan ishlash uchun interface
type ProductRepository interface {
	// GetByName nom bo'yicha mahsulotni olish (noaniq moslik bilan).
	// Topilmasa (nil, nil) qaytaradi.
	GetByName(ctx context.Context, name entity.ProductName) (*entity.Product, error)

	// Exists mahsulot katalogda borligini tekshirish
	Exists(ctx context.Context, name entity.ProductName) (bool, error)

	// GetAll barcha mahsulotlarni olish
	GetAll(ctx context.Context) ([]*entity.Product, error)

	// GetAllNames barcha mahsulot nomlarini olish
	GetAllNames(ctx context.Context) ([]entity.ProductName, error)

	// FindSimilar o'xshash mahsulot nomlarini olish (o'xshashlik bo'yicha tartiblangan)
	FindSimilar(ctx context.Context, name entity.ProductName, limit int) ([]entity.ProductName, error)

	// ReplaceCatalog katalogni butunlay yangilash (admin upload)
	ReplaceCatalog(ctx context.Context, products []*entity.Product, source string) error

	// CatalogInfo katalog haqida ma'lumot olish
	CatalogInfo(ctx context.Context) (*entity.CatalogInfo, error)
}
