package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

// ConversationUseCase suhbatlar bilan bog'liq business logic
type ConversationUseCase interface {
	// GetOrCreate suhbatni olish yoki yangi yaratish. Hech qachon xato qaytarmaydi:
	// ID bo'sh bo'lsa yangi tasodifiy ID bilan, keshda topilmasa berilgan ID bilan
	// bo'sh suhbat yaratiladi.
	GetOrCreate(ctx context.Context, id string) *entity.Conversation

	// Get ID bo'yicha suhbatni olish. Topilmasa (nil, nil).
	Get(ctx context.Context, id string) (*entity.Conversation, error)

	// Save suhbatni saqlash
	Save(ctx context.Context, conversation *entity.Conversation) error

	// Delete suhbatni o'chirish (administrativ)
	Delete(ctx context.Context, id string) error
}

type conversationUseCase struct {
	conversationRepo repository.ConversationRepository
	log              *logrus.Logger
}

// NewConversationUseCase yangi ConversationUseCase yaratish
func NewConversationUseCase(conversationRepo repository.ConversationRepository, log *logrus.Logger) ConversationUseCase {
	return &conversationUseCase{
		conversationRepo: conversationRepo,
		log:              log,
	}
}

// GetOrCreate suhbatni olish yoki yangi yaratish
func (u *conversationUseCase) GetOrCreate(ctx context.Context, id string) *entity.Conversation {
	// ID berilmagan - har doim yangi suhbat, kesh tekshirilmaydi
	if id == "" {
		return entity.NewConversation(entity.NewRandomConversationID())
	}

	conversationID, err := entity.NewConversationID(id)
	if err != nil {
		return entity.NewConversation(entity.NewRandomConversationID())
	}

	conversation, err := u.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		u.log.WithError(err).WithField("conversation_id", id).Warn("suhbatni olishda xato")
	}
	if conversation != nil {
		return conversation
	}

	// Miss - xato emas: berilgan ID bilan yangi bo'sh suhbat yaratiladi
	return entity.NewConversation(conversationID)
}

// Get ID bo'yicha suhbatni olish
func (u *conversationUseCase) Get(ctx context.Context, id string) (*entity.Conversation, error) {
	conversationID, err := entity.NewConversationID(id)
	if err != nil {
		return nil, err
	}
	return u.conversationRepo.GetByID(ctx, conversationID)
}

// Save suhbatni saqlash
func (u *conversationUseCase) Save(ctx context.Context, conversation *entity.Conversation) error {
	return u.conversationRepo.Save(ctx, conversation)
}

// Delete suhbatni o'chirish
func (u *conversationUseCase) Delete(ctx context.Context, id string) error {
	conversationID, err := entity.NewConversationID(id)
	if err != nil {
		return err
	}
	return u.conversationRepo.Delete(ctx, conversationID)
}
