package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

// memCache testlar uchun oddiy in-memory kesh
type memCache struct {
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, ok := c.items[key]
	return data, ok
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.items[key] = value
}

func (c *memCache) Remove(ctx context.Context, key string) {
	delete(c.items, key)
}

func (c *memCache) InvalidateByPrefix(ctx context.Context, prefix string) {
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

func TestConversationStoreRoundtrip(t *testing.T) {
	store := NewConversationStore(newMemCache(), testLogger())
	ctx := context.Background()

	id, _ := entity.NewConversationID("test-conversation")
	conversation := entity.NewConversation(id)
	conversation.AddQuery("What is the width of 6205?", "The width of the 6205 bearing is 15 mm.")
	conversation.AddQuery("And the mass?", "The 6205 weighs 0.13 kg.")

	productName, _ := entity.NewProductName("6205")
	conversation.SetLastProductDiscussed(productName)
	conversation.SetSessionValue("locale", "en")

	if err := store.Save(ctx, conversation); err != nil {
		t.Fatalf("Save xato qaytardi: %v", err)
	}

	restored, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID xato qaytardi: %v", err)
	}
	if restored == nil {
		t.Fatal("saqlangan suhbat topilishi kerak")
	}

	if !restored.ID().Equals(id) {
		t.Errorf("kutilgan ID '%s', olingan '%s'", id.Value(), restored.ID().Value())
	}

	history := restored.History()
	if len(history) != 2 {
		t.Fatalf("kutilgan 2 ta yozuv, olingan %d", len(history))
	}
	if history[0].Query() != "What is the width of 6205?" {
		t.Errorf("birinchi so'rov noto'g'ri tiklandi: '%s'", history[0].Query())
	}
	if history[1].Response() != "The 6205 weighs 0.13 kg." {
		t.Errorf("ikkinchi javob noto'g'ri tiklandi: '%s'", history[1].Response())
	}

	lastProduct, ok := restored.LastProductDiscussed()
	if !ok || lastProduct.Value() != "6205" {
		t.Errorf("oxirgi mahsulot noto'g'ri tiklandi: '%s' (ok=%v)", lastProduct.Value(), ok)
	}

	if locale, _ := restored.SessionValue("locale"); locale != "en" {
		t.Errorf("sessiya ma'lumoti noto'g'ri tiklandi: '%s'", locale)
	}
}

func TestConversationStoreMiss(t *testing.T) {
	store := NewConversationStore(newMemCache(), testLogger())

	id, _ := entity.NewConversationID("missing")
	conversation, err := store.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("miss xato emas: %v", err)
	}
	if conversation != nil {
		t.Error("topilmagan suhbat uchun nil kutilgan edi")
	}
}

func TestConversationStoreCorruptRecord(t *testing.T) {
	cache := newMemCache()
	store := NewConversationStore(cache, testLogger())
	ctx := context.Background()

	id, _ := entity.NewConversationID("broken")
	cache.Set(ctx, conversationKeyPrefix+id.Value(), []byte("{not json"), ConversationTTL)

	conversation, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("buzilgan yozuv miss deb qabul qilinishi kerak, xato emas: %v", err)
	}
	if conversation != nil {
		t.Error("buzilgan yozuv uchun nil kutilgan edi")
	}
}

func TestConversationStoreDelete(t *testing.T) {
	store := NewConversationStore(newMemCache(), testLogger())
	ctx := context.Background()

	id, _ := entity.NewConversationID("to-delete")
	if err := store.Save(ctx, entity.NewConversation(id)); err != nil {
		t.Fatalf("Save xato qaytardi: %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete xato qaytardi: %v", err)
	}

	conversation, _ := store.GetByID(ctx, id)
	if conversation != nil {
		t.Error("o'chirilgan suhbat topilmasligi kerak")
	}
}
