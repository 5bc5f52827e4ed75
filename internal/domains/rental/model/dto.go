package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

// RentalRequest is the payload for both the rent and return operations.
type RentalRequest struct {
	StudentID string `json:"student_id"`
	ISBN      string `json:"isbn"`
}

func (r RentalRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StudentID,
			validation.Required.Error("student_id is required"),
			validation.Length(1, 20),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(13, 13).Error("isbn must be exactly 13 characters"),
		),
	)
}

// RentalResponse is the external representation of a rental episode, with the
// state spelled out instead of leaving clients to interpret a null date.
type RentalResponse struct {
	StudentID  string  `json:"student_id"`
	ISBN       string  `json:"isbn"`
	RentDate   string  `json:"rent_date"`
	ReturnDate *string `json:"return_date"`
	Status     Status  `json:"status"`
}

func NewRentalResponse(r *Rental) RentalResponse {
	resp := RentalResponse{
		StudentID: r.StudentID,
		ISBN:      r.ISBN,
		RentDate:  r.RentDate.Format(dateLayout),
		Status:    r.Status(),
	}
	if r.ReturnDate != nil {
		returned := r.ReturnDate.Format(dateLayout)
		resp.ReturnDate = &returned
	}
	return resp
}

func NewRentalResponses(rentals []Rental) []RentalResponse {
	responses := make([]RentalResponse, 0, len(rentals))
	for i := range rentals {
		responses = append(responses, NewRentalResponse(&rentals[i]))
	}
	return responses
}
