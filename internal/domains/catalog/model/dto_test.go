package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookRequestValidate(t *testing.T) {
	valid := CreateBookRequest{ISBN: "1111111111111", Title: "X", Num: 1}
	assert.NoError(t, valid.Validate())

	zeroCopies := CreateBookRequest{ISBN: "1111111111111", Title: "X", Num: 0}
	assert.NoError(t, zeroCopies.Validate())

	tests := []struct {
		name string
		req  CreateBookRequest
	}{
		{"missing isbn", CreateBookRequest{Title: "X", Num: 1}},
		{"short isbn", CreateBookRequest{ISBN: "123", Title: "X", Num: 1}},
		{"long isbn", CreateBookRequest{ISBN: "12345678901234", Title: "X", Num: 1}},
		{"missing title", CreateBookRequest{ISBN: "1111111111111", Num: 1}},
		{"negative num", CreateBookRequest{ISBN: "1111111111111", Title: "X", Num: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestUpdateBookRequestValidate(t *testing.T) {
	title := "New Title"
	num := 3
	req := UpdateBookRequest{Title: &title, Num: &num}
	assert.NoError(t, req.Validate())

	// Both fields optional.
	assert.NoError(t, UpdateBookRequest{}.Validate())

	negative := -1
	assert.Error(t, UpdateBookRequest{Num: &negative}.Validate())
}
