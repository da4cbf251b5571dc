package models

import "time"

// Message statuses. Records are created as StatusNew and never transitioned
// anywhere in this codebase.
const (
	StatusNew = "new"
)

// Message represents a stored contact message. IDs are opaque when assigned
// by the hosted database and timestamp-derived when generated for the
// in-memory fallback tier. CreatedAt is an ISO-8601 timestamp string.
type Message struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// NewMessage is the validated input for creating a message record.
type NewMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// EmailLog represents the outcome of a notification attempt. It is written
// as a side effect of dispatching and only ever read back in aggregate.
type EmailLog struct {
	ID        string     `json:"id,omitempty"`
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"` // sent, failed
	SentAt    *time.Time `json:"sent_at"`
}

// User represents an authenticated user returned by the login endpoint.
type User struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// MessageRequest represents the request body for POST /api/messages
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// LoginRequest represents the request body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// MessagesResponse represents the response for GET /api/messages
type MessagesResponse struct {
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	Messages []Message `json:"messages"`
}

// MessageCreatedResponse represents the response for POST /api/messages
type MessageCreatedResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Data    Message `json:"data"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Storage   string            `json:"storage"`
	Notifier  string            `json:"notifier"`
	Metrics   map[string]string `json:"metrics,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Error codes surfaced to HTTP callers.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeAuth       = "AUTH_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)
