package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalStatus(t *testing.T) {
	rented := Rental{
		StudentID: "S1",
		ISBN:      "1111111111111",
		RentDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, StatusActive, rented.Status())

	returned := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	rented.ReturnDate = &returned
	assert.Equal(t, StatusReturned, rented.Status())
}

func TestNewRentalResponse(t *testing.T) {
	rental := &Rental{
		StudentID: "S1",
		ISBN:      "1111111111111",
		RentDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := NewRentalResponse(rental)
	assert.Equal(t, "S1", resp.StudentID)
	assert.Equal(t, "2026-08-01", resp.RentDate)
	assert.Nil(t, resp.ReturnDate)
	assert.Equal(t, StatusActive, resp.Status)

	returned := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	rental.ReturnDate = &returned

	resp = NewRentalResponse(rental)
	require.NotNil(t, resp.ReturnDate)
	assert.Equal(t, "2026-08-10", *resp.ReturnDate)
	assert.Equal(t, StatusReturned, resp.Status)
}

func TestRentalRequestValidate(t *testing.T) {
	valid := RentalRequest{StudentID: "S1", ISBN: "1111111111111"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, RentalRequest{ISBN: "1111111111111"}.Validate())
	assert.Error(t, RentalRequest{StudentID: "S1"}.Validate())
	assert.Error(t, RentalRequest{StudentID: "S1", ISBN: "123"}.Validate())
}
