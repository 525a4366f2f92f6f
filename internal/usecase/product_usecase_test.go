package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

// fakeParser testlar uchun oldindan tayyorlangan natija qaytaradi
type fakeParser struct {
	products []*entity.Product
	err      error
}

func (f *fakeParser) ParseProducts(ctx context.Context, filePath string) ([]*entity.Product, error) {
	return f.products, f.err
}

func (f *fakeParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]*entity.Product, error) {
	return f.products, f.err
}

func TestGetAttributeDirect(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(bearing6205()), &fakeParser{}, newFakeCache(), nil, testLogger())

	details, err := uc.GetAttribute(context.Background(), "6205", "WIDTH")
	if err != nil {
		t.Fatalf("GetAttribute xato qaytardi: %v", err)
	}
	if details.Value != "15" || details.Unit != "mm" {
		t.Errorf("kutilgan 15/mm, olingan %s/%s", details.Value, details.Unit)
	}
	if len(details.AllAttributes) != 3 {
		t.Errorf("kutilgan 3 ta xususiyat, olingan %d", len(details.AllAttributes))
	}
}

func TestGetAttributeErrors(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(bearing6205()), &fakeParser{}, newFakeCache(), nil, testLogger())
	ctx := context.Background()

	if _, err := uc.GetAttribute(ctx, "9999", "width"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("kutilgan ErrProductNotFound, olingan %v", err)
	}

	if _, err := uc.GetAttribute(ctx, "6205", "color"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("kutilgan ErrAttributeNotFound, olingan %v", err)
	}

	if _, err := uc.GetAttribute(ctx, "   ", "width"); err == nil {
		t.Error("bo'sh nom uchun xato kutilgan edi")
	}
}

func TestUploadCatalogInvalidatesQueryCache(t *testing.T) {
	repo := newFakeProductRepo(bearing6205())
	cache := newFakeCache()
	ctx := context.Background()

	// Eski katalogga asoslangan keshlangan javoblar
	cache.Set(ctx, QueryCachePrefix+"abc:conv-1", []byte("stale"), time.Hour)
	cache.Set(ctx, "conversation:conv-1", []byte("keep"), time.Hour)

	name, _ := entity.NewProductName("6305")
	parser := &fakeParser{products: []*entity.Product{entity.NewProduct(name, nil)}}

	uc := NewProductUseCase(repo, parser, cache, nil, testLogger())

	count, err := uc.UploadCatalog(ctx, []byte("xlsx-bytes"), "catalog.xlsx")
	if err != nil {
		t.Fatalf("UploadCatalog xato qaytardi: %v", err)
	}
	if count != 1 {
		t.Errorf("kutilgan 1 ta mahsulot, olingan %d", count)
	}

	if _, ok := cache.Get(ctx, QueryCachePrefix+"abc:conv-1"); ok {
		t.Error("so'rov keshlari yangilashdan keyin o'chirilishi kerak")
	}
	if _, ok := cache.Get(ctx, "conversation:conv-1"); !ok {
		t.Error("suhbatlar yangilashdan ta'sirlanmasligi kerak")
	}

	// Katalog haqiqatan almashgan
	newName, _ := entity.NewProductName("6305")
	if product, _ := repo.GetByName(ctx, newName); product == nil {
		t.Error("yangi katalog mahsuloti topilishi kerak")
	}
}

func TestUploadCatalogRejectsEmpty(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(), &fakeParser{}, newFakeCache(), nil, testLogger())

	if _, err := uc.UploadCatalog(context.Background(), []byte("xlsx-bytes"), "empty.xlsx"); err == nil {
		t.Error("bo'sh katalog uchun xato kutilgan edi")
	}
}

func TestRecentQueriesWithoutAuditLog(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(), &fakeParser{}, newFakeCache(), nil, testLogger())

	entries, err := uc.RecentQueries(context.Background(), 10)
	if err != nil {
		t.Fatalf("audit log siz RecentQueries xato qaytarmasligi kerak: %v", err)
	}
	if entries != nil {
		t.Error("audit log siz bo'sh natija kutilgan")
	}
}
