package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newLocalCache() *TieredCache {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New("", log)
}

func TestTieredCacheLocalMode(t *testing.T) {
	c := newLocalCache()
	defer c.Close()

	if c.SharedEnabled() {
		t.Error("REDIS_URL siz shared qatlam yoqilmasligi kerak")
	}
}

func TestTieredCacheSetGet(t *testing.T) {
	c := newLocalCache()
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "query:abc:c1", []byte("cached response"), time.Minute)

	data, ok := c.Get(ctx, "query:abc:c1")
	if !ok {
		t.Fatal("saqlangan qiymat topilishi kerak")
	}
	if string(data) != "cached response" {
		t.Errorf("kutilgan 'cached response', olingan '%s'", string(data))
	}

	if _, ok := c.Get(ctx, "query:missing:c1"); ok {
		t.Error("mavjud bo'lmagan kalit topilmasligi kerak")
	}
}

func TestTieredCacheRemove(t *testing.T) {
	c := newLocalCache()
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "key", []byte("value"), time.Minute)
	c.Remove(ctx, "key")

	if _, ok := c.Get(ctx, "key"); ok {
		t.Error("o'chirilgan kalit topilmasligi kerak")
	}

	// Mavjud bo'lmagan kalitni o'chirish xato emas
	c.Remove(ctx, "missing")
}

func TestTieredCacheInvalidateByPrefix(t *testing.T) {
	c := newLocalCache()
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "query:a:c1", []byte("1"), time.Minute)
	c.Set(ctx, "query:b:c2", []byte("2"), time.Minute)
	c.Set(ctx, "conversation:c1", []byte("3"), time.Minute)

	c.InvalidateByPrefix(ctx, "query:")

	if _, ok := c.Get(ctx, "query:a:c1"); ok {
		t.Error("prefiksli kalit o'chirilishi kerak edi")
	}
	if _, ok := c.Get(ctx, "query:b:c2"); ok {
		t.Error("prefiksli kalit o'chirilishi kerak edi")
	}
	if _, ok := c.Get(ctx, "conversation:c1"); !ok {
		t.Error("boshqa prefiksli kalit saqlanib qolishi kerak")
	}
}

func TestTieredCacheExpiry(t *testing.T) {
	c := newLocalCache()
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "short", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get(ctx, "short"); ok {
		t.Error("TTL o'tgan kalit topilmasligi kerak")
	}
}
