package entity

import (
	"time"
)

const (
	ReportStatusPending    = "pending"
	ReportStatusInProgress = "in_progress"
	ReportStatusResolved   = "resolved"
)

// Report is a citizen-submitted incident. Everything except Status and
// UpdatedAt is immutable after creation; Status only moves through the
// resolution flow.
type Report struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Category    string    `json:"category" firestore:"category"`
	Status      string    `json:"status" firestore:"status"` // "pending", "in_progress", "resolved"
	UserID      string    `json:"user_id" firestore:"userId"`
	UserName    string    `json:"user_name" firestore:"userName"`
	UserEmail   string    `json:"user_email" firestore:"userEmail"`
	Photos      []string  `json:"photos" firestore:"photos"`
	Latitude    *float64  `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty" firestore:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (r *Report) IsOwner(userID string) bool {
	return r.UserID == userID
}

func (r *Report) IsResolved() bool {
	return r.Status == ReportStatusResolved
}
