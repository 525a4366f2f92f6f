package repository

import (
	"context"
	"time"
)

// CacheRepository ikki qatlamli kesh bilan ishlash uchun interface.
// Barcha operatsiyalar best-effort: pastki qatlam xatosi chaqiruvchiga
// hech qachon qaytarilmaydi.
type CacheRepository interface {
	// Get kalit bo'yicha qiymatni olish
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set qiymatni berilgan TTL bilan saqlash
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Remove kalitni o'chirish
	Remove(ctx context.Context, key string)

	// InvalidateByPrefix prefiks bo'yicha kalitlarni o'chirish
	InvalidateByPrefix(ctx context.Context, prefix string)
}
