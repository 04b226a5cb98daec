package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a user account row.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // never serialized to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Analysis represents a stored resume analysis row. Result holds the full
// analysis document as JSONB.
type Analysis struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	JobDescription string          `json:"job_description,omitempty"`
	ATSScore       float64         `json:"ats_score"`
	Result         json.RawMessage `json:"result"`
	CreatedAt      time.Time       `json:"created_at"`
}
