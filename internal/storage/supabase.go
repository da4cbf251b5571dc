package storage

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	supabase "github.com/supabase-community/supabase-go"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/models"
)

const (
	messagesTable  = "messages"
	emailLogsTable = "email_logs"
)

// supabaseRemote implements Remote against the hosted PostgREST API.
type supabaseRemote struct {
	client *supabase.Client
}

func newSupabaseRemote(cfg config.SupabaseConfig) (*supabaseRemote, error) {
	client, err := supabase.NewClient(cfg.URL, cfg.ServiceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return &supabaseRemote{client: client}, nil
}

// InsertMessage inserts a message row and returns the database-assigned
// representation. Timeouts are whatever the underlying client enforces; no
// retry is attempted.
func (r *supabaseRemote) InsertMessage(ctx context.Context, input models.NewMessage) (*models.Message, error) {
	row := map[string]interface{}{
		"name":    input.Name,
		"email":   input.Email,
		"message": input.Message,
		"status":  models.StatusNew,
	}

	var inserted []models.Message
	_, err := r.client.From(messagesTable).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&inserted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert returned no representation")
	}

	return &inserted[0], nil
}

// ListMessages returns all messages, newest first.
func (r *supabaseRemote) ListMessages(ctx context.Context) ([]models.Message, error) {
	var rows []models.Message
	_, err := r.client.From(messagesTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if rows == nil {
		rows = []models.Message{}
	}

	return rows, nil
}

// RecordEmail stores a notification outcome row.
func (r *supabaseRemote) RecordEmail(ctx context.Context, entry models.EmailLog) error {
	row := map[string]interface{}{
		"recipient": entry.Recipient,
		"subject":   entry.Subject,
		"body":      entry.Body,
		"status":    entry.Status,
		"sent_at":   entry.SentAt,
	}

	_, _, err := r.client.From(emailLogsTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to record email log: %w", err)
	}

	return nil
}

func (r *supabaseRemote) Ready() bool {
	return true
}
