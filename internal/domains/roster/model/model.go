package model

import (
	"time"
)

// Student represents a registered borrower.
type Student struct {
	StudentID string    `json:"student_id" db:"student_id"`
	Fullname  string    `json:"fullname" db:"fullname"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
