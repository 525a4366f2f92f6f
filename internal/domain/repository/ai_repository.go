package repository

import (
	"context"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

// AIRepository AI bilan ishlash uchun interface
type AIRepository interface {
	// ExtractProductName so'rovdan mahsulot belgilanishini ajratib olish.
	// Topilmasa (nil, nil) qaytaradi.
	ExtractProductName(ctx context.Context, query string, conversation *entity.Conversation) (*entity.ProductName, error)

	// ExtractAttribute so'rovdan xususiyat nomini ajratib olish.
	// Topilmasa bo'sh string qaytaradi.
	ExtractAttribute(ctx context.Context, query string, conversation *entity.Conversation) (string, error)

	// GenerateAnswer topilgan qiymatdan tabiiy tildagi javob yaratish
	GenerateAnswer(ctx context.Context, name entity.ProductName, attribute, value, unit string, conversation *entity.Conversation) (string, error)

	// GenerateConversationalAnswer mahsulot aniqlanmaganda suhbat javobini yaratish
	GenerateConversationalAnswer(ctx context.Context, query string, conversation *entity.Conversation) (string, error)
}
