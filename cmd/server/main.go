package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bearing-assistant-bot/config"
	httpdelivery "github.com/yourusername/bearing-assistant-bot/internal/delivery/http"
	"github.com/yourusername/bearing-assistant-bot/internal/delivery/telegram"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
	"github.com/yourusername/bearing-assistant-bot/internal/infrastructure/cache"
	"github.com/yourusername/bearing-assistant-bot/internal/infrastructure/gemini"
	"github.com/yourusername/bearing-assistant-bot/internal/infrastructure/parser"
	"github.com/yourusername/bearing-assistant-bot/internal/infrastructure/storage"
	"github.com/yourusername/bearing-assistant-bot/internal/usecase"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("konfiguratsiyani yuklashda xato")
	}

	// Kesh: lokal + ixtiyoriy Redis
	tieredCache := cache.New(cfg.RedisURL, log)
	defer tieredCache.Close()

	// Storage qatlami
	datasheetParser := parser.NewDatasheetParser(log)
	productRepo := storage.NewCatalogStore(cfg.DataPath, datasheetParser, log)
	conversationRepo := storage.NewConversationStore(tieredCache, log)

	// Audit log ixtiyoriy: ochilmasa auditsiz davom etiladi
	var queryLog repository.QueryLogRepository
	if ql, err := storage.NewSQLiteQueryLogRepository(cfg.QueryLogDBPath); err != nil {
		log.WithError(err).Warn("audit log ochilmadi, auditsiz davom etiladi")
	} else {
		queryLog = ql
		defer ql.Close()
	}

	// AI client
	aiRepo, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.WithError(err).Fatal("Gemini client yaratishda xato")
	}
	if closer, ok := aiRepo.(io.Closer); ok {
		defer closer.Close()
	}

	// Usecase lar
	conversationUC := usecase.NewConversationUseCase(conversationRepo, log)
	queryUC := usecase.NewQueryUseCase(aiRepo, productRepo, conversationUC, tieredCache, queryLog, log)
	productUC := usecase.NewProductUseCase(productRepo, parser.NewExcelParser(log), tieredCache, queryLog, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Telegram delivery ixtiyoriy
	if cfg.TelegramToken != "" {
		tgHandler, err := telegram.NewHandler(cfg.TelegramToken, queryUC, conversationUC, log)
		if err != nil {
			log.WithError(err).Warn("telegram bot ishga tushmadi")
		} else {
			go tgHandler.Start(ctx)
		}
	}

	// HTTP delivery
	app := fiber.New(fiber.Config{
		AppName: "bearing-assistant",
	})
	app.Use(recover.New())

	handler := httpdelivery.NewHandler(queryUC, conversationUC, productUC, tieredCache, log)
	handler.RegisterRoutes(app)

	go func() {
		<-ctx.Done()
		log.Info("server to'xtatilmoqda")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("serverni to'xtatishda xato")
		}
	}()

	log.WithField("addr", cfg.HTTPAddr).Info("HTTP server ishga tushdi")
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("HTTP server xato bilan to'xtadi")
	}
}
