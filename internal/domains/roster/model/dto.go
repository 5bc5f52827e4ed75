package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateStudentRequest is the payload for registering a student.
type CreateStudentRequest struct {
	StudentID string `json:"student_id"`
	Fullname  string `json:"fullname"`
}

func (r CreateStudentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StudentID,
			validation.Required.Error("student_id is required"),
			validation.Length(1, 20),
		),
		validation.Field(&r.Fullname,
			validation.Required.Error("fullname is required"),
			validation.Length(1, 100),
		),
	)
}
