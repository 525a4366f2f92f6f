package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

const (
	conversationKeyPrefix = "conversation:"

	// ConversationTTL suhbatning keshdagi yashash muddati
	ConversationTTL = 24 * time.Hour
)

// queryEntryRecord tarix yozuvining kesh ko'rinishi
type queryEntryRecord struct {
	Query     string    `json:"query"`
	Response  string    `json:"response,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// conversationRecord suhbatning keshda saqlanadigan ko'rinishi
type conversationRecord struct {
	ID           string             `json:"id"`
	History      []queryEntryRecord `json:"history"`
	LastProduct  string             `json:"lastProduct,omitempty"`
	SessionData  map[string]string  `json:"sessionData,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	LastActivity time.Time          `json:"lastActivity"`
}

type conversationStore struct {
	cache repository.CacheRepository
	log   *logrus.Logger
}

// NewConversationStore kesh orqali ishlaydigan suhbat store yaratish
func NewConversationStore(cache repository.CacheRepository, log *logrus.Logger) repository.ConversationRepository {
	return &conversationStore{
		cache: cache,
		log:   log,
	}
}

// GetByID ID bo'yicha suhbatni olish. Keshda yo'q bo'lsa (nil, nil).
func (s *conversationStore) GetByID(ctx context.Context, id entity.ConversationID) (*entity.Conversation, error) {
	data, ok := s.cache.Get(ctx, conversationKeyPrefix+id.Value())
	if !ok {
		return nil, nil
	}

	var record conversationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// Buzilgan yozuv miss deb qabul qilinadi
		s.log.WithError(err).WithField("conversation_id", id.Value()).Warn("suhbat yozuvini o'qib bo'lmadi")
		return nil, nil
	}

	return restoreFromRecord(record), nil
}

// Save suhbatni 24 soatlik TTL bilan saqlash
func (s *conversationStore) Save(ctx context.Context, conversation *entity.Conversation) error {
	record := toRecord(conversation)

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("suhbatni serialize qilib bo'lmadi: %w", err)
	}

	s.cache.Set(ctx, conversationKeyPrefix+conversation.ID().Value(), data, ConversationTTL)
	return nil
}

// Delete suhbatni o'chirish
func (s *conversationStore) Delete(ctx context.Context, id entity.ConversationID) error {
	s.cache.Remove(ctx, conversationKeyPrefix+id.Value())
	return nil
}

func toRecord(conversation *entity.Conversation) conversationRecord {
	history := conversation.History()
	entries := make([]queryEntryRecord, 0, len(history))
	for _, entry := range history {
		entries = append(entries, queryEntryRecord{
			Query:     entry.Query(),
			Response:  entry.Response(),
			Timestamp: entry.Timestamp(),
		})
	}

	record := conversationRecord{
		ID:           conversation.ID().Value(),
		History:      entries,
		SessionData:  conversation.SessionData(),
		CreatedAt:    conversation.CreatedAt(),
		LastActivity: conversation.LastActivity(),
	}

	if lastProduct, ok := conversation.LastProductDiscussed(); ok {
		record.LastProduct = lastProduct.Value()
	}

	return record
}

func restoreFromRecord(record conversationRecord) *entity.Conversation {
	id, err := entity.NewConversationID(record.ID)
	if err != nil {
		id = entity.NewRandomConversationID()
	}

	history := make([]entity.QueryEntry, 0, len(record.History))
	for _, entry := range record.History {
		history = append(history, entity.NewQueryEntry(entry.Query, entry.Response, entry.Timestamp))
	}

	var lastProduct entity.ProductName
	if record.LastProduct != "" {
		if name, err := entity.NewProductName(record.LastProduct); err == nil {
			lastProduct = name
		}
	}

	return entity.RestoreConversation(id, history, lastProduct, record.SessionData, record.CreatedAt, record.LastActivity)
}
