package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/infrastructure/cache"
	"github.com/yourusername/bearing-assistant-bot/internal/infrastructure/storage"
	"github.com/yourusername/bearing-assistant-bot/internal/usecase"
)

// Handler HTTP delivery qatlami - usecase larga yupqa adapter
type Handler struct {
	queryUC        usecase.QueryUseCase
	conversationUC usecase.ConversationUseCase
	productUC      usecase.ProductUseCase
	cache          *cache.TieredCache
	log            *logrus.Logger
}

// NewHandler yangi HTTP handler yaratish
func NewHandler(
	queryUC usecase.QueryUseCase,
	conversationUC usecase.ConversationUseCase,
	productUC usecase.ProductUseCase,
	tieredCache *cache.TieredCache,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		queryUC:        queryUC,
		conversationUC: conversationUC,
		productUC:      productUC,
		cache:          tieredCache,
		log:            log,
	}
}

// RegisterRoutes barcha route larni ro'yxatdan o'tkazish
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.health)

	api := app.Group("/api")
	api.Post("/query", h.processQuery)
	api.Get("/products/:name/attributes/:attribute", h.getAttribute)
	api.Get("/products/:name/similar", h.getSimilar)
	api.Get("/conversations/:id", h.getConversation)
	api.Delete("/conversations/:id", h.deleteConversation)

	admin := api.Group("/admin")
	admin.Post("/catalog", h.uploadCatalog)
	admin.Get("/queries", h.recentQueries)
}

type queryRequest struct {
	Query          string `json:"query"`
	ConversationID string `json:"conversationId"`
}

// processQuery tabiiy tildagi so'rovni qayta ishlash.
// Har doim to'ldirilgan QueryResponse qaytaradi, hech qachon bo'sh javob emas.
func (h *Handler) processQuery(c *fiber.Ctx) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(entity.QueryResponse{
			Success:    false,
			Message:    "Invalid request body",
			ResultType: entity.ResultInvalidQuery,
		})
	}

	response := h.queryUC.ProcessQuery(c.Context(), req.Query, req.ConversationID)
	return c.JSON(response)
}

// getAttribute xususiyatni to'g'ridan-to'g'ri olish (AI siz)
func (h *Handler) getAttribute(c *fiber.Ctx) error {
	details, err := h.productUC.GetAttribute(c.Context(), c.Params("name"), c.Params("attribute"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		case errors.Is(err, usecase.ErrAttributeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "attribute not found"})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(details)
}

// getSimilar o'xshash mahsulot nomlarini olish
func (h *Handler) getSimilar(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)

	similar, err := h.productUC.FindSimilar(c.Context(), c.Params("name"), limit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"query":       c.Params("name"),
		"suggestions": similar,
	})
}

// getConversation suhbat holati (diagnostika)
func (h *Handler) getConversation(c *fiber.Ctx) error {
	conversation, err := h.conversationUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if conversation == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "conversation not found"})
	}

	response := fiber.Map{
		"conversationId": conversation.ID().Value(),
		"createdAt":      conversation.CreatedAt(),
		"lastActivity":   conversation.LastActivity(),
		"expired":        conversation.IsExpired(storage.ConversationTTL),
		"historySize":    len(conversation.History()),
		"recentQueries":  conversation.RecentQueries(3),
	}
	if lastProduct, ok := conversation.LastProductDiscussed(); ok {
		response["lastProductDiscussed"] = lastProduct.Value()
	}

	return c.JSON(response)
}

// deleteConversation suhbatni o'chirish (administrativ)
func (h *Handler) deleteConversation(c *fiber.Ctx) error {
	if err := h.conversationUC.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// uploadCatalog Excel fayldan katalogni yangilash
func (h *Handler) uploadCatalog(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to read file"})
	}

	count, err := h.productUC.UploadCatalog(c.Context(), data, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"count":  count,
		"source": fileHeader.Filename,
	})
}

// recentQueries oxirgi qayta ishlangan so'rovlar (admin audit)
func (h *Handler) recentQueries(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	entries, err := h.productUC.RecentQueries(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read query log"})
	}

	items := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		items = append(items, fiber.Map{
			"id":             entry.ID,
			"conversationId": entry.ConversationID,
			"query":          entry.Query,
			"answer":         entry.Answer,
			"resultType":     entry.ResultType,
			"timestamp":      entry.Timestamp,
		})
	}

	return c.JSON(fiber.Map{"queries": items})
}

// health server holati
func (h *Handler) health(c *fiber.Ctx) error {
	cacheMode := "local"
	if h.cache.SharedEnabled() {
		cacheMode = "tiered"
	}

	response := fiber.Map{
		"status":    "ok",
		"cacheMode": cacheMode,
	}

	if info, err := h.productUC.CatalogInfo(c.Context()); err == nil {
		response["products"] = info.Count
	}

	return c.JSON(response)
}
