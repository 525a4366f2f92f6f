package repository

import (
	"context"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

// ConversationRepository suhbatlar bilan ishlash uchun interface.
// Suhbatlar faqat keshda saqlanadi, alohida doimiy storage yo'q.
type ConversationRepository interface {
	// GetByID ID bo'yicha suhbatni olish. Topilmasa (nil, nil) qaytaradi.
	GetByID(ctx context.Context, id entity.ConversationID) (*entity.Conversation, error)

	// Save suhbatni saqlash (24 soatlik TTL bilan)
	Save(ctx context.Context, conversation *entity.Conversation) error

	// Delete suhbatni o'chirish
	Delete(ctx context.Context, id entity.ConversationID) error
}
