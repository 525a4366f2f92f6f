package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// backfillTTL shared qatlamdan o'qilgan qiymatning lokal qatlamdagi
	// muddati - asl TTL dan qat'i nazar qisqa
	backfillTTL = 5 * time.Minute

	cleanupInterval = 10 * time.Minute
	connectTimeout  = 5 * time.Second
)

// TieredCache ikki qatlamli kesh: tez lokal qatlam (go-cache) va
// ixtiyoriy shared qatlam (Redis). Shared qatlam xatolari faqat
// loglanadi - har bir operatsiya lokal rejimga tushib ishlayveradi.
type TieredCache struct {
	local  *gocache.Cache
	shared *redis.Client // nil bo'lsa faqat lokal rejim
	log    *logrus.Logger
}

// New yangi TieredCache yaratish. redisURL bo'sh bo'lsa yoki ulanib
// bo'lmasa faqat lokal rejimda ishlaydi - bu startup da bir marta hal qilinadi.
func New(redisURL string, log *logrus.Logger) *TieredCache {
	local := gocache.New(gocache.NoExpiration, cleanupInterval)

	var shared *redis.Client
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.WithError(err).Warn("REDIS_URL noto'g'ri, faqat lokal kesh ishlatiladi")
		} else {
			client := redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				log.WithError(err).Warn("Redis ga ulanib bo'lmadi, faqat lokal kesh ishlatiladi")
			} else {
				shared = client
				log.Info("Redis kesh yoqildi")
			}
		}
	}

	return &TieredCache{
		local:  local,
		shared: shared,
		log:    log,
	}
}

// SharedEnabled shared qatlam yoqilganligini bildirish
func (c *TieredCache) SharedEnabled() bool {
	return c.shared != nil
}

// Get kalit bo'yicha qiymatni olish: avval lokal, keyin shared.
// Shared dan topilsa lokal qatlamga qisqa TTL bilan qaytarib yoziladi.
func (c *TieredCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if value, ok := c.local.Get(key); ok {
		if data, ok := value.([]byte); ok {
			return data, true
		}
	}

	if c.shared == nil {
		return nil, false
	}

	data, err := c.shared.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).WithField("key", key).Warn("shared keshdan o'qishda xato")
		}
		return nil, false
	}

	c.local.Set(key, data, backfillTTL)
	return data, true
}

// Set qiymatni ikkala qatlamga bir xil TTL bilan yozish.
// Yozuvlar mustaqil: shared qatlam xatosi lokal yozuvni bekor qilmaydi.
func (c *TieredCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.local.Set(key, value, ttl)

	if c.shared == nil {
		return
	}

	if err := c.shared.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("shared keshga yozishda xato")
	}
}

// Remove kalitni ikkala qatlamdan o'chirish. Kalit yo'qligi xato emas.
func (c *TieredCache) Remove(ctx context.Context, key string) {
	c.local.Delete(key)

	if c.shared == nil {
		return
	}

	if err := c.shared.Del(ctx, key).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("shared keshdan o'chirishda xato")
	}
}

// InvalidateByPrefix prefiks bilan boshlanadigan barcha kalitlarni o'chirish
func (c *TieredCache) InvalidateByPrefix(ctx context.Context, prefix string) {
	for key := range c.local.Items() {
		if strings.HasPrefix(key, prefix) {
			c.local.Delete(key)
		}
	}

	if c.shared == nil {
		return
	}

	iter := c.shared.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.shared.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.WithError(err).WithField("key", iter.Val()).Warn("shared keshdan o'chirishda xato")
		}
	}
	if err := iter.Err(); err != nil {
		c.log.WithError(err).WithField("prefix", prefix).Warn("shared keshni skan qilishda xato")
	}
}

// Close shared ulanishni yopish
func (c *TieredCache) Close() error {
	if c.shared != nil {
		return c.shared.Close()
	}
	return nil
}
