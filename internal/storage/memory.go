package storage

import (
	"strconv"
	"sync"
	"time"

	"portfolio-backend-go/internal/models"
)

// MemoryStore is the process-lifetime fallback tier: a guarded, ordered,
// append-only list of message records. Records are never mutated or removed
// once appended; the store is emptied only by process restart.
type MemoryStore struct {
	mu       sync.Mutex
	messages []models.Message
	lastID   int64
}

// NewMemoryStore creates the fallback store seeded with two fixture records.
func NewMemoryStore() *MemoryStore {
	seededAt := time.Now().UTC()
	return &MemoryStore{
		messages: []models.Message{
			{
				ID:        "1",
				Name:      "Maria Ionescu",
				Email:     "maria.ionescu@example.com",
				Message:   "Hi Flavia, I saw your portfolio and would love to discuss a branding project.",
				Status:    models.StatusNew,
				CreatedAt: seededAt.Add(-48 * time.Hour).Format(time.RFC3339),
			},
			{
				ID:        "2",
				Name:      "Andrei Popa",
				Email:     "andrei.popa@example.com",
				Message:   "Hello! Is your studio available for a website redesign this quarter?",
				Status:    models.StatusNew,
				CreatedAt: seededAt.Add(-24 * time.Hour).Format(time.RFC3339),
			},
		},
	}
}

// Append constructs a record with a locally generated timestamp-derived
// identifier and adds it to the list. Identifiers are monotonic by creation
// time.
func (m *MemoryStore) Append(input models.NewMessage) models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	id := now.UnixNano()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	m.lastID = id

	msg := models.Message{
		ID:        strconv.FormatInt(id, 10),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		Status:    models.StatusNew,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	m.messages = append(m.messages, msg)

	return msg
}

// List returns a copy of the stored records in insertion order, seeded
// fixtures first.
func (m *MemoryStore) List() []models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}
