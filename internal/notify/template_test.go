package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend-go/internal/models"
)

func TestRenderContactEmail(t *testing.T) {
	html, err := renderContactEmail(models.Message{
		Name:      "Maria Ionescu",
		Email:     "maria.ionescu@example.com",
		Message:   "Hello there",
		CreatedAt: "2024-05-01T10:00:00Z",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Maria Ionescu")
	assert.Contains(t, html, "maria.ionescu@example.com")
	assert.Contains(t, html, "Hello there")
	assert.Contains(t, html, "2024-05-01T10:00:00Z")
}

func TestRenderContactEmailEscapesInput(t *testing.T) {
	html, err := renderContactEmail(models.Message{
		Name:    "<b>Bold</b>",
		Email:   "a@example.com",
		Message: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>Bold</b>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestContactSubject(t *testing.T) {
	subject := contactSubject(models.Message{Name: "Andrei Popa"})
	assert.Equal(t, "New contact message from Andrei Popa", subject)
}
