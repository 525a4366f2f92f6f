package repository

import (
	"context"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

// QueryLogRepository so'rovlar auditi bilan ishlash uchun interface
type QueryLogRepository interface {
	// Append yangi audit yozuvini qo'shish
	Append(ctx context.Context, entry entity.QueryLogEntry) error

	// Recent oxirgi yozuvlarni olish (yangisi birinchi)
	Recent(ctx context.Context, limit int) ([]entity.QueryLogEntry, error)

	// Close resurslarni yopish
	Close() error
}
