package storage

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend-go/internal/models"
)

func TestMemoryStoreSeedsFixtures(t *testing.T) {
	store := NewMemoryStore()

	msgs := store.List()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Maria Ionescu", msgs[0].Name)
	assert.Equal(t, "Andrei Popa", msgs[1].Name)
	for _, msg := range msgs {
		assert.Equal(t, models.StatusNew, msg.Status)
		assert.NotEmpty(t, msg.CreatedAt)
	}
}

func TestMemoryStoreAppendOrder(t *testing.T) {
	store := NewMemoryStore()

	first := store.Append(models.NewMessage{Name: "A", Email: "a@example.com", Message: "one"})
	second := store.Append(models.NewMessage{Name: "B", Email: "b@example.com", Message: "two"})

	msgs := store.List()
	require.Len(t, msgs, 4)
	assert.Equal(t, first.ID, msgs[2].ID)
	assert.Equal(t, second.ID, msgs[3].ID)
	assert.Equal(t, models.StatusNew, msgs[2].Status)
}

func TestMemoryStoreIDsMonotonic(t *testing.T) {
	store := NewMemoryStore()

	var prev int64
	for i := 0; i < 100; i++ {
		msg := store.Append(models.NewMessage{Name: "N", Email: "n@example.com", Message: "m"})
		id, err := strconv.ParseInt(msg.ID, 10, 64)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	store := NewMemoryStore()

	msgs := store.List()
	msgs[0].Name = "mutated"

	assert.Equal(t, "Maria Ionescu", store.List()[0].Name)
}

func TestStubRemoteContract(t *testing.T) {
	stub := &stubRemote{}
	ctx := context.Background()

	msg, err := stub.InsertMessage(ctx, models.NewMessage{Name: "A", Email: "a@example.com", Message: "m"})
	assert.NoError(t, err)
	assert.Nil(t, msg)

	msgs, err := stub.ListMessages(ctx)
	assert.NoError(t, err)
	assert.Nil(t, msgs)

	assert.NoError(t, stub.RecordEmail(ctx, models.EmailLog{}))
	assert.False(t, stub.Ready())
}
