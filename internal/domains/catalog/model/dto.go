package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest is the payload for registering a new title.
type CreateBookRequest struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
	Num   int    `json:"num"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(13, 13).Error("isbn must be exactly 13 characters"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Num,
			validation.Min(0).Error("num cannot be negative"),
		),
	)
}

// UpdateBookRequest is the payload for a partial book update.
// Nil fields are left unchanged.
type UpdateBookRequest struct {
	Title *string `json:"title"`
	Num   *int    `json:"num"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Length(1, 255).Error("title must not be empty"),
		),
		validation.Field(&r.Num,
			validation.Min(0).Error("num cannot be negative"),
		),
	)
}
