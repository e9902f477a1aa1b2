package models

import (
	"time"

	"github.com/google/uuid"
)

// HazardReport is a citizen-submitted account of a perceived traffic danger.
// ReporterUserID is fixed at creation; mutations match on it.
type HazardReport struct {
	ID             uuid.UUID `json:"id"`
	ReporterUserID uuid.UUID `json:"reporter_user_id"`
	Title          string    `json:"title"`
	GuName         string    `json:"gu_name"`
	Description    string    `json:"description"`
	PhotoPath      string    `json:"photo_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
