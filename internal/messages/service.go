package messages

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"portfolio-backend-go/internal/metrics"
	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/storage"
)

// Tier identifies which storage tier actually served an operation.
type Tier string

const (
	TierPrimary  Tier = "primary"
	TierFallback Tier = "fallback"
)

// Persisted is the tagged result of a write: the stored record plus the tier
// that holds it. HTTP callers see the same success response either way; the
// tag exists so code and tests can tell the tiers apart.
type Persisted struct {
	Message models.Message
	Tier    Tier
}

// ValidationError reports missing input fields. It is returned before any
// persistence attempt is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Notifier dispatches a notification for a message stored in the primary
// tier. Its outcome never affects the write result.
type Notifier interface {
	Notify(ctx context.Context, msg models.Message)
}

// Service implements message persistence with silent fallback: the hosted
// database is attempted first and the in-memory store absorbs every failure.
// The two tiers are never reconciled.
type Service struct {
	remote   storage.Remote
	memory   *storage.MemoryStore
	notifier Notifier
	metrics  *metrics.Metrics
}

// NewService creates the message service.
func NewService(remote storage.Remote, memory *storage.MemoryStore, notifier Notifier, m *metrics.Metrics) *Service {
	return &Service{
		remote:   remote,
		memory:   memory,
		notifier: notifier,
		metrics:  m,
	}
}

// Create validates and stores a message. A record returned by the hosted
// database triggers the notification dispatcher synchronously; a nil record
// (stub client) or an insert error falls back to the in-memory store.
func (s *Service) Create(ctx context.Context, input models.NewMessage) (Persisted, error) {
	if err := validate(input); err != nil {
		return Persisted{}, err
	}

	stored, err := s.remote.InsertMessage(ctx, input)
	if err == nil && stored != nil {
		s.metrics.MessagesStored.WithLabelValues(string(TierPrimary)).Inc()
		logrus.Infof("Message %s stored in Supabase", stored.ID)
		if s.notifier != nil {
			s.notifier.Notify(ctx, *stored)
		}
		return Persisted{Message: *stored, Tier: TierPrimary}, nil
	}
	if err != nil {
		logrus.Errorf("Supabase insert failed, falling back to in-memory storage: %v", err)
	}

	msg := s.memory.Append(input)
	s.metrics.MessagesStored.WithLabelValues(string(TierFallback)).Inc()
	logrus.Infof("Message %s stored in memory", msg.ID)

	return Persisted{Message: msg, Tier: TierFallback}, nil
}

// List returns all messages from the hosted database, newest first. On any
// failure, or when the client is an unconfigured stub, it returns the
// in-memory list in insertion order instead.
func (s *Service) List(ctx context.Context) ([]models.Message, Tier, error) {
	remote, err := s.remote.ListMessages(ctx)
	if err == nil && remote != nil {
		return remote, TierPrimary, nil
	}
	if err != nil {
		logrus.Errorf("Supabase read failed, falling back to in-memory storage: %v", err)
	}

	return s.memory.List(), TierFallback, nil
}

func validate(input models.NewMessage) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return &ValidationError{Msg: "name, email and message are required"}
	}
	return nil
}
