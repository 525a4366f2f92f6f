package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

const (
	// QueryCachePrefix muvaffaqiyatli javoblar keshlanadigan kalit prefiksi
	QueryCachePrefix = "query:"

	queryCacheTTL  = 6 * time.Hour
	maxSuggestions = 5
)

// QueryUseCase so'rovlarni qayta ishlash pipeline:
// validatsiya -> kesh tekshirish -> suhbat -> extraction -> resolve ->
// javob yaratish -> saqlash -> keshga yozish.
type QueryUseCase interface {
	// ProcessQuery tabiiy tildagi so'rovni qayta ishlash.
	// Har doim to'ldirilgan javob qaytaradi, hech qachon xato tashlamaydi.
	ProcessQuery(ctx context.Context, query, conversationID string) *entity.QueryResponse
}

type queryUseCase struct {
	aiRepo         repository.AIRepository
	productRepo    repository.ProductRepository
	conversationUC ConversationUseCase
	cache          repository.CacheRepository
	queryLog       repository.QueryLogRepository // nil bo'lishi mumkin
	log            *logrus.Logger
}

// NewQueryUseCase yangi QueryUseCase yaratish
func NewQueryUseCase(
	aiRepo repository.AIRepository,
	productRepo repository.ProductRepository,
	conversationUC ConversationUseCase,
	cache repository.CacheRepository,
	queryLog repository.QueryLogRepository,
	log *logrus.Logger,
) QueryUseCase {
	return &queryUseCase{
		aiRepo:         aiRepo,
		productRepo:    productRepo,
		conversationUC: conversationUC,
		cache:          cache,
		queryLog:       queryLog,
		log:            log,
	}
}

// ProcessQuery tabiiy tildagi so'rovni qayta ishlash
func (u *queryUseCase) ProcessQuery(ctx context.Context, query, conversationID string) *entity.QueryResponse {
	// Bo'sh so'rov kesh va extraction gacha yetib bormaydi
	if strings.TrimSpace(query) == "" {
		return &entity.QueryResponse{
			Success:    false,
			Message:    "Query cannot be empty",
			ResultType: entity.ResultInvalidQuery,
		}
	}

	cacheKey := buildQueryCacheKey(query, conversationID)

	if data, ok := u.cache.Get(ctx, cacheKey); ok {
		var cached entity.QueryResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			u.log.WithField("query", query).Info("kesh hit")
			return &cached
		}
		u.log.WithField("key", cacheKey).Warn("keshlangan javobni o'qib bo'lmadi")
	}

	conversation := u.conversationUC.GetOrCreate(ctx, conversationID)

	result := u.resolve(ctx, query, conversation)

	// Suhbat yangilanadi va saqlanadi - saqlash xatosi javobni buzmaydi
	conversation.AddQuery(query, result.Answer)
	if err := u.conversationUC.Save(ctx, conversation); err != nil {
		u.log.WithError(err).WithField("conversation_id", conversation.ID().Value()).Warn("suhbatni saqlashda xato")
	}

	result.ConversationID = conversation.ID().Value()

	u.appendAudit(ctx, conversation.ID().Value(), query, result)

	// Faqat muvaffaqiyatli javoblar keshlanadi
	if result.Success {
		if data, err := json.Marshal(result); err == nil {
			u.cache.Set(ctx, cacheKey, data, queryCacheTTL)
		}
	}

	return result
}

// resolve so'rovni bosqichma-bosqich hal qilish. Kutilmagan xatolar
// shu chegarada ushlanadi va SystemError ga aylanadi.
func (u *queryUseCase) resolve(ctx context.Context, query string, conversation *entity.Conversation) (result *entity.QueryResponse) {
	defer func() {
		if r := recover(); r != nil {
			u.log.WithField("panic", r).Error("so'rovni qayta ishlashda kutilmagan xato")
			result = systemErrorResponse()
		}
	}()

	productName, err := u.aiRepo.ExtractProductName(ctx, query, conversation)
	if err != nil {
		u.log.WithError(err).WithField("query", query).Error("mahsulot nomini ajratishda xato")
		return systemErrorResponse()
	}

	attribute, err := u.aiRepo.ExtractAttribute(ctx, query, conversation)
	if err != nil {
		u.log.WithError(err).WithField("query", query).Error("xususiyatni ajratishda xato")
		return systemErrorResponse()
	}

	if productName == nil {
		return u.handleMissingProduct(ctx, query, conversation)
	}

	product, err := u.productRepo.GetByName(ctx, *productName)
	if err != nil {
		u.log.WithError(err).Error("katalogdan o'qishda xato")
		return systemErrorResponse()
	}
	if product == nil {
		return u.handleUnknownProduct(ctx, *productName)
	}

	if attribute == "" {
		return u.handleMissingAttribute(product)
	}

	attr, ok := product.Attribute(attribute)
	if !ok {
		return u.handleMissingAttributeValue(product, attribute)
	}

	conversation.SetLastProductDiscussed(product.Name())

	answer, err := u.aiRepo.GenerateAnswer(ctx, product.Name(), attr.Name(), attr.Value(), attr.Unit(), conversation)
	if err != nil {
		u.log.WithError(err).Error("javob yaratishda xato")
		return systemErrorResponse()
	}

	return &entity.QueryResponse{
		Success: true,
		Message: "Information retrieved successfully",
		Answer:  answer,
		ProductDetails: &entity.ProductDetails{
			ProductName:   product.Name().Value(),
			Attribute:     attr.Name(),
			Value:         attr.Value(),
			Unit:          attr.Unit(),
			AllAttributes: product.FormattedAttributes(),
		},
		ResultType: entity.ResultSuccess,
	}
}

// handleMissingProduct mahsulot nomi aniqlanmaganda suhbat javobi bilan qaytish
func (u *queryUseCase) handleMissingProduct(ctx context.Context, query string, conversation *entity.Conversation) *entity.QueryResponse {
	answer, err := u.aiRepo.GenerateConversationalAnswer(ctx, query, conversation)
	if err != nil {
		u.log.WithError(err).Error("suhbat javobini yaratishda xato")
		return systemErrorResponse()
	}

	return &entity.QueryResponse{
		Success:     false,
		Message:     "Product not specified",
		Answer:      answer,
		Suggestions: []string{"Please specify a bearing designation (e.g., 6205, 6206-2RS1)"},
		ResultType:  entity.ResultInvalidQuery,
	}
}

// handleUnknownProduct katalogda yo'q mahsulot uchun o'xshash nomlar taklif qilish
func (u *queryUseCase) handleUnknownProduct(ctx context.Context, name entity.ProductName) *entity.QueryResponse {
	similar, err := u.productRepo.FindSimilar(ctx, name, maxSuggestions)
	if err != nil {
		u.log.WithError(err).Error("o'xshash mahsulotlarni qidirishda xato")
		similar = nil
	}

	suggestions := make([]string, 0, len(similar))
	for _, s := range similar {
		suggestions = append(suggestions, s.Value())
	}

	answer := fmt.Sprintf("I couldn't find product '%s' in our database.", name.Value())
	if len(suggestions) > 0 {
		answer += fmt.Sprintf(" Did you mean: %s?", strings.Join(suggestions, ", "))
	}

	return &entity.QueryResponse{
		Success:     false,
		Message:     "Product not found",
		Answer:      answer,
		Suggestions: suggestions,
		ResultType:  entity.ResultProductNotFound,
	}
}

// handleMissingAttribute xususiyat so'ralmaganda mavjudlarini taklif qilish
func (u *queryUseCase) handleMissingAttribute(product *entity.Product) *entity.QueryResponse {
	suggestions := topAttributes(product, maxSuggestions)

	answer := fmt.Sprintf("What would you like to know about the %s? Available information: %s",
		product.Name().Value(), strings.Join(suggestions, ", "))

	return &entity.QueryResponse{
		Success:     false,
		Message:     "Attribute not specified",
		Answer:      answer,
		Suggestions: suggestions,
		ResultType:  entity.ResultInvalidQuery,
	}
}

// handleMissingAttributeValue mahsulotda so'ralgan xususiyat bo'lmaganda
func (u *queryUseCase) handleMissingAttributeValue(product *entity.Product, attribute string) *entity.QueryResponse {
	suggestions := topAttributes(product, maxSuggestions)

	answer := fmt.Sprintf("I don't have %s information for %s. Available data: %s",
		attribute, product.Name().Value(), strings.Join(suggestions, ", "))

	return &entity.QueryResponse{
		Success:     false,
		Message:     "Attribute data not available",
		Answer:      answer,
		Suggestions: suggestions,
		ResultType:  entity.ResultAttributeNotFound,
	}
}

// appendAudit so'rovni audit logga yozish - xato javobni buzmaydi
func (u *queryUseCase) appendAudit(ctx context.Context, conversationID, query string, result *entity.QueryResponse) {
	if u.queryLog == nil {
		return
	}

	entry := entity.QueryLogEntry{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Query:          query,
		Answer:         result.Answer,
		ResultType:     result.ResultType,
		Timestamp:      time.Now().UTC(),
	}

	if err := u.queryLog.Append(ctx, entry); err != nil {
		u.log.WithError(err).Warn("audit yozuvini saqlashda xato")
	}
}

func topAttributes(product *entity.Product, limit int) []string {
	attributes := product.AvailableAttributes()
	if len(attributes) > limit {
		attributes = attributes[:limit]
	}
	return attributes
}

func systemErrorResponse() *entity.QueryResponse {
	return &entity.QueryResponse{
		Success:    false,
		Message:    "An error occurred while processing your query",
		ResultType: entity.ResultSystemError,
	}
}

// buildQueryCacheKey normalizatsiya qilingan so'rov va suhbat ID dan
// kesh kaliti yasash: query:<base64 ning birinchi 16 belgisi>:<suhbat ID>
func buildQueryCacheKey(query, conversationID string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	hash := base64.StdEncoding.EncodeToString([]byte(normalized))
	if len(hash) > 16 {
		hash = hash[:16]
	}
	return QueryCachePrefix + hash + ":" + conversationID
}
