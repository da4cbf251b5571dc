package messages

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend-go/internal/metrics"
	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/storage"
)

// fakeRemote lets tests script the hosted database behaviour.
type fakeRemote struct {
	insertCalls int
	listCalls   int

	insertResult *models.Message
	insertErr    error
	listResult   []models.Message
	listErr      error
}

func (f *fakeRemote) InsertMessage(ctx context.Context, input models.NewMessage) (*models.Message, error) {
	f.insertCalls++
	return f.insertResult, f.insertErr
}

func (f *fakeRemote) ListMessages(ctx context.Context) ([]models.Message, error) {
	f.listCalls++
	return f.listResult, f.listErr
}

func (f *fakeRemote) RecordEmail(ctx context.Context, entry models.EmailLog) error { return nil }
func (f *fakeRemote) Ready() bool                                                  { return false }

type fakeNotifier struct {
	notified []models.Message
}

func (f *fakeNotifier) Notify(ctx context.Context, msg models.Message) {
	f.notified = append(f.notified, msg)
}

func newTestService(remote storage.Remote, notifier Notifier) (*Service, *storage.MemoryStore) {
	memory := storage.NewMemoryStore()
	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry())
	return NewService(remote, memory, notifier, m), memory
}

func validInput() models.NewMessage {
	return models.NewMessage{Name: "Test", Email: "test@example.com", Message: "hello"}
}

func TestCreateValidationBeforePersistence(t *testing.T) {
	remote := &fakeRemote{}
	svc, memory := newTestService(remote, nil)

	inputs := []models.NewMessage{
		{Email: "a@example.com", Message: "m"},
		{Name: "A", Message: "m"},
		{Name: "A", Email: "a@example.com"},
		{},
	}
	for _, input := range inputs {
		_, err := svc.Create(context.Background(), input)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	}

	assert.Zero(t, remote.insertCalls, "validation failure must not reach the remote")
	assert.Equal(t, 2, memory.Len(), "validation failure must not touch the fallback store")
}

func TestCreatePrimaryTierNotifies(t *testing.T) {
	stored := &models.Message{ID: "db-1", Name: "Test", Email: "test@example.com", Message: "hello", Status: models.StatusNew}
	remote := &fakeRemote{insertResult: stored}
	notifier := &fakeNotifier{}
	svc, memory := newTestService(remote, notifier)

	persisted, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, TierPrimary, persisted.Tier)
	assert.Equal(t, "db-1", persisted.Message.ID)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, "db-1", notifier.notified[0].ID)
	assert.Equal(t, 2, memory.Len(), "primary write must not touch the fallback store")
}

func TestCreateFallsBackOnInsertError(t *testing.T) {
	remote := &fakeRemote{insertErr: fmt.Errorf("connection refused")}
	notifier := &fakeNotifier{}
	svc, memory := newTestService(remote, notifier)

	persisted, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err, "a failed insert degrades silently")

	assert.Equal(t, TierFallback, persisted.Tier)
	assert.Equal(t, "Test", persisted.Message.Name)
	assert.Equal(t, 3, memory.Len())
	assert.Empty(t, notifier.notified, "fallback writes never notify")
}

func TestCreateFallsBackOnStubResult(t *testing.T) {
	// A stub client returns a nil record with no error.
	remote := &fakeRemote{}
	svc, memory := newTestService(remote, &fakeNotifier{})

	persisted, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, TierFallback, persisted.Tier)
	assert.NotEmpty(t, persisted.Message.ID)
	assert.Equal(t, models.StatusNew, persisted.Message.Status)
	assert.Equal(t, 3, memory.Len())
}

func TestListPrimary(t *testing.T) {
	remote := &fakeRemote{listResult: []models.Message{{ID: "db-2"}, {ID: "db-1"}}}
	svc, _ := newTestService(remote, nil)

	msgs, tier, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, TierPrimary, tier)
	assert.Equal(t, "db-2", msgs[0].ID)
}

func TestListFallsBackInAppendOrder(t *testing.T) {
	remote := &fakeRemote{listErr: fmt.Errorf("timeout")}
	svc, _ := newTestService(remote, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)
	}

	msgs, tier, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, TierFallback, tier)
	require.Len(t, msgs, 5, "two seeded fixtures plus three new records")
	assert.Equal(t, "Maria Ionescu", msgs[0].Name)
	assert.Equal(t, "Andrei Popa", msgs[1].Name)
}

func TestListFallbackIdempotent(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{}, nil)

	first, _, err := svc.List(context.Background())
	require.NoError(t, err)
	second, _, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListEmptyConfiguredPrimaryStaysPrimary(t *testing.T) {
	// A configured database with no rows is a primary success, not a
	// fallback trigger; only a nil collection (stub) falls back.
	remote := &fakeRemote{listResult: []models.Message{}}
	svc, _ := newTestService(remote, nil)

	msgs, tier, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, TierPrimary, tier)
	assert.Empty(t, msgs)
}
