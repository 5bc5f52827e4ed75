package model

import (
	"time"
)

// Status is the explicit two-variant rental state. A rental is active until
// it is returned exactly once; there is no other transition.
type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
)

// Rental is one rent→return episode for a (student, book) pair. Its identity
// is the composite (student_id, isbn, rent_date): the same student may rent
// the same title again on a later date.
type Rental struct {
	StudentID  string     `db:"student_id"`
	ISBN       string     `db:"isbn"`
	RentDate   time.Time  `db:"rent_date"`
	ReturnDate *time.Time `db:"return_date"`
}

// Status derives the state variant from the return date.
func (r Rental) Status() Status {
	if r.ReturnDate == nil {
		return StatusActive
	}
	return StatusReturned
}
