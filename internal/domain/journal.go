package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry records the outcome of one admin mutation.
type JournalEntry struct {
	ID         uuid.UUID `json:"id"`
	Command    string    `json:"command"`
	ReturnID   string    `json:"return_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	PaymentID  string    `json:"payment_id,omitempty"`
	OK         bool      `json:"ok"`
	Message    string    `json:"message,omitempty"`
	DurationMs float64   `json:"duration_ms"`
	At         time.Time `json:"at"`
}
