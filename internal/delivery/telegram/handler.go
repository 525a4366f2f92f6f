package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/usecase"
)

const welcomeMessage = `Hi! I'm a bearing product assistant.

Ask me about bearing products, for example:
- What is the width of 6205?
- Inner diameter of 6206-2RS1?
- How heavy is it? (follow-up about the last product)

Commands:
/clear - forget our conversation history`

// Handler Telegram delivery qatlami
type Handler struct {
	bot            *tgbotapi.BotAPI
	queryUC        usecase.QueryUseCase
	conversationUC usecase.ConversationUseCase
	log            *logrus.Logger
}

// NewHandler yangi Telegram handler yaratish
func NewHandler(
	token string,
	queryUC usecase.QueryUseCase,
	conversationUC usecase.ConversationUseCase,
	log *logrus.Logger,
) (*Handler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	log.WithField("username", bot.Self.UserName).Info("telegram bot ulandi")

	return &Handler{
		bot:            bot,
		queryUC:        queryUC,
		conversationUC: conversationUC,
		log:            log,
	}, nil
}

// Start update larni qabul qilishni boshlash. Context bekor qilinganda to'xtaydi.
func (h *Handler) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage bitta xabarni qayta ishlash
func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	// Har bir chat o'z suhbatiga ega
	conversationID := fmt.Sprintf("tg:%d", message.Chat.ID)

	switch message.Command() {
	case "start":
		h.reply(message.Chat.ID, welcomeMessage)
		return
	case "clear":
		if err := h.conversationUC.Delete(ctx, conversationID); err != nil {
			h.log.WithError(err).WithField("conversation_id", conversationID).Warn("suhbatni o'chirishda xato")
		}
		h.reply(message.Chat.ID, "Conversation history cleared. Ask me anything about bearings!")
		return
	}

	response := h.queryUC.ProcessQuery(ctx, message.Text, conversationID)

	text := response.Answer
	if text == "" {
		text = response.Message
	}

	h.reply(message.Chat.ID, text)
}

// reply chat ga xabar yuborish
func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.log.WithError(err).WithField("chat_id", chatID).Error("xabar yuborishda xato")
	}
}
