package entity

import (
	"time"
)

// Comment is append-only; comments are never edited or deleted.
type Comment struct {
	ID        string    `json:"id" firestore:"id"`
	ReportID  string    `json:"report_id" firestore:"reportId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	UserEmail string    `json:"user_email" firestore:"userEmail"`
	Text      string    `json:"text" firestore:"text"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
