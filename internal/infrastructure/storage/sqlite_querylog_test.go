package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
)

func TestSQLiteQueryLog(t *testing.T) {
	repo, err := NewSQLiteQueryLogRepository(filepath.Join(t.TempDir(), "querylog.db"))
	if err != nil {
		t.Fatalf("audit log ochilmadi: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entries := []entity.QueryLogEntry{
		{ID: "a", ConversationID: "c1", Query: "width of 6205", Answer: "15 mm", ResultType: entity.ResultSuccess, Timestamp: base},
		{ID: "b", ConversationID: "c1", Query: "width of 9999", Answer: "", ResultType: entity.ResultProductNotFound, Timestamp: base.Add(time.Minute)},
		{ID: "c", ConversationID: "c2", Query: "mass of 6206", Answer: "0.2 kg", ResultType: entity.ResultSuccess, Timestamp: base.Add(2 * time.Minute)},
	}
	for _, entry := range entries {
		if err := repo.Append(ctx, entry); err != nil {
			t.Fatalf("Append xato qaytardi: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent xato qaytardi: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("kutilgan 2 ta yozuv, olingan %d", len(recent))
	}

	// Yangisi birinchi
	if recent[0].ID != "c" || recent[1].ID != "b" {
		t.Errorf("kutilgan tartib [c b], olingan [%s %s]", recent[0].ID, recent[1].ID)
	}
	if recent[0].ResultType != entity.ResultSuccess {
		t.Errorf("kutilgan result_type '%s', olingan '%s'", entity.ResultSuccess, recent[0].ResultType)
	}
}

func TestSQLiteQueryLogAppendIdempotent(t *testing.T) {
	repo, err := NewSQLiteQueryLogRepository(filepath.Join(t.TempDir(), "querylog.db"))
	if err != nil {
		t.Fatalf("audit log ochilmadi: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	entry := entity.QueryLogEntry{
		ID:             "same-id",
		ConversationID: "c1",
		Query:          "width of 6205",
		ResultType:     entity.ResultSuccess,
		Timestamp:      time.Now().UTC(),
	}

	if err := repo.Append(ctx, entry); err != nil {
		t.Fatalf("Append xato qaytardi: %v", err)
	}
	if err := repo.Append(ctx, entry); err != nil {
		t.Fatalf("takroriy Append xato qaytardi: %v", err)
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent xato qaytardi: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("bir xil ID bilan takror yozuv kutilmagan, olingan %d ta", len(recent))
	}
}
