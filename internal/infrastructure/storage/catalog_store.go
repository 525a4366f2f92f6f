package storage

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

// catalogSnapshot yuklangandan keyin o'zgarmaydigan katalog holati
type catalogSnapshot struct {
	products []*entity.Product
	info     entity.CatalogInfo
}

type catalogStore struct {
	mu       sync.Mutex // faqat yuklash/almashtirish yo'lida ushlanadi
	snapshot atomic.Pointer[catalogSnapshot]
	dataPath string
	parser   repository.CatalogParser
	log      *logrus.Logger
}

// NewCatalogStore datasheet fayllardan lazy yuklanadigan katalog store yaratish.
// Birinchi o'qish yuklashni boshlaydi, qolganlari natijani kutadi.
func NewCatalogStore(dataPath string, parser repository.CatalogParser, log *logrus.Logger) repository.ProductRepository {
	return &catalogStore{
		dataPath: dataPath,
		parser:   parser,
		log:      log,
	}
}

// ensureLoaded katalogni bir marta yuklash. Double-checked locking:
// faqat birinchi chaqiruvchi ish qiladi, keyingilari tayyor snapshot oladi.
func (s *catalogStore) ensureLoaded(ctx context.Context) *catalogSnapshot {
	if snap := s.snapshot.Load(); snap != nil {
		return snap
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap := s.snapshot.Load(); snap != nil {
		return snap
	}

	var products []*entity.Product

	files, err := filepath.Glob(filepath.Join(s.dataPath, "*.json"))
	if err != nil {
		s.log.WithError(err).Error("datasheet papkasini o'qib bo'lmadi")
	}
	sort.Strings(files)

	for _, file := range files {
		parsed, err := s.parser.ParseProducts(ctx, file)
		if err != nil {
			// Bitta buzilgan fayl butun yuklashni to'xtatmaydi
			s.log.WithError(err).WithField("file", file).Error("datasheet yuklashda xato")
			continue
		}
		products = append(products, parsed...)
	}

	snap := &catalogSnapshot{
		products: products,
		info: entity.CatalogInfo{
			Count:    len(products),
			Source:   s.dataPath,
			LoadedAt: time.Now(),
		},
	}
	s.snapshot.Store(snap)

	s.log.WithField("count", len(products)).Info("katalog yuklandi")
	return snap
}

// GetByName nom bo'yicha mahsulotni olish. Avval aniq moslik,
// keyin noaniq moslik (containment yoki edit distance <= 2).
func (s *catalogStore) GetByName(ctx context.Context, name entity.ProductName) (*entity.Product, error) {
	snap := s.ensureLoaded(ctx)

	for _, product := range snap.products {
		if product.Name().Equals(name) {
			return product, nil
		}
	}

	for _, product := range snap.products {
		if isSimilarName(product.Name().Value(), name.Value()) {
			return product, nil
		}
	}

	return nil, nil
}

// Exists mahsulot katalogda borligini tekshirish
func (s *catalogStore) Exists(ctx context.Context, name entity.ProductName) (bool, error) {
	product, err := s.GetByName(ctx, name)
	if err != nil {
		return false, err
	}
	return product != nil, nil
}

// GetAll barcha mahsulotlarni olish
func (s *catalogStore) GetAll(ctx context.Context) ([]*entity.Product, error) {
	snap := s.ensureLoaded(ctx)

	products := make([]*entity.Product, len(snap.products))
	copy(products, snap.products)
	return products, nil
}

// GetAllNames barcha mahsulot nomlarini olish
func (s *catalogStore) GetAllNames(ctx context.Context) ([]entity.ProductName, error) {
	snap := s.ensureLoaded(ctx)

	names := make([]entity.ProductName, 0, len(snap.products))
	for _, product := range snap.products {
		names = append(names, product.Name())
	}
	return names, nil
}

// FindSimilar o'xshashlik balli > 0.7 bo'lgan nomlarni ball bo'yicha
// kamayish tartibida qaytarish. Teng ballda katalog tartibi saqlanadi.
func (s *catalogStore) FindSimilar(ctx context.Context, name entity.ProductName, limit int) ([]entity.ProductName, error) {
	snap := s.ensureLoaded(ctx)

	type scoredName struct {
		name  entity.ProductName
		score float64
	}

	var scored []scoredName
	for _, product := range snap.products {
		score := calculateSimilarity(product.Name().Value(), name.Value())
		if score > 0.7 {
			scored = append(scored, scoredName{name: product.Name(), score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	names := make([]entity.ProductName, 0, len(scored))
	for _, sn := range scored {
		names = append(names, sn.name)
	}
	return names, nil
}

// ReplaceCatalog katalogni butunlay yangilash. Snapshot atomik almashadi:
// o'quvchilar yo eski, yo yangi holatni ko'radi, oralig'ini emas.
func (s *catalogStore) ReplaceCatalog(ctx context.Context, products []*entity.Product, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &catalogSnapshot{
		products: products,
		info: entity.CatalogInfo{
			Count:    len(products),
			Source:   source,
			LoadedAt: time.Now(),
		},
	}
	s.snapshot.Store(snap)

	s.log.WithFields(logrus.Fields{
		"count":  len(products),
		"source": source,
	}).Info("katalog yangilandi")
	return nil
}

// CatalogInfo katalog haqida ma'lumot olish
func (s *catalogStore) CatalogInfo(ctx context.Context) (*entity.CatalogInfo, error) {
	snap := s.ensureLoaded(ctx)

	info := snap.info
	return &info, nil
}
