package storage

import (
	"context"

	"github.com/sirupsen/logrus"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/models"
)

// Remote is the hosted database client surface used by the message service
// and the notification dispatcher.
type Remote interface {
	// InsertMessage stores a message and returns the database-assigned
	// record. A nil record with a nil error means the remote is a stub.
	InsertMessage(ctx context.Context, input models.NewMessage) (*models.Message, error)
	// ListMessages returns all stored messages ordered by creation time
	// descending.
	ListMessages(ctx context.Context) ([]models.Message, error)
	// RecordEmail stores a notification outcome log entry.
	RecordEmail(ctx context.Context, entry models.EmailLog) error
	// Ready reports whether the remote is backed by a real connection.
	Ready() bool
}

// NewRemote constructs the hosted database client from configuration. When
// the required settings are absent, or the client cannot be constructed, it
// degrades to a stub instead of returning an error: reads find nothing and
// writes produce nil records, pushing callers onto the in-memory fallback.
func NewRemote(cfg *config.Config) Remote {
	if !cfg.SupabaseConfigured() {
		logrus.Warn("Supabase URL or service key missing, using in-memory storage only")
		return &stubRemote{}
	}

	remote, err := newSupabaseRemote(cfg.Supabase)
	if err != nil {
		logrus.Errorf("Failed to initialise Supabase client, using in-memory storage only: %v", err)
		return &stubRemote{}
	}

	logrus.Info("Supabase client initialised")
	return remote
}

// stubRemote is the no-op client handle used when connection settings are
// absent. Its read returns an empty collection and its writes return nil
// results, both without error, so callers cannot tell "nothing found" from
// "not configured" through this interface alone.
type stubRemote struct{}

func (s *stubRemote) InsertMessage(ctx context.Context, input models.NewMessage) (*models.Message, error) {
	return nil, nil
}

func (s *stubRemote) ListMessages(ctx context.Context) ([]models.Message, error) {
	return nil, nil
}

func (s *stubRemote) RecordEmail(ctx context.Context, entry models.EmailLog) error {
	return nil
}

func (s *stubRemote) Ready() bool {
	return false
}
