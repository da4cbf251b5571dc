package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"portfolio-backend-go/internal/models"
)

// Sender-supplied fields are interpolated through html/template so they are
// output-encoded, never embedded verbatim.
var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2933;">
    <h2 style="color: #0b7285;">New contact message</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Message:</strong></p>
    <div style="padding: 12px; background: #f1f3f5; border-radius: 6px;">{{.Message}}</div>
    <p style="color: #868e96; font-size: 12px;">Sent at {{.CreatedAt}}</p>
  </body>
</html>`))

// renderContactEmail renders the notification body for a stored message.
func renderContactEmail(msg models.Message) (string, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("failed to render contact email: %w", err)
	}
	return buf.String(), nil
}

func contactSubject(msg models.Message) string {
	return fmt.Sprintf("New contact message from %s", msg.Name)
}
