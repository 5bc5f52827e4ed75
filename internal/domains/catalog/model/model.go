package model

import (
	"time"
)

// Book represents a title in the catalog. Num is the aggregate count of
// copies currently available for rent, not a per-physical-copy inventory.
type Book struct {
	ISBN      string    `json:"isbn" db:"isbn"`
	Title     string    `json:"title" db:"title"`
	Num       int       `json:"num" db:"num"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
