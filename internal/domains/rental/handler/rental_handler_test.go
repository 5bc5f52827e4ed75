package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "library-rental-backend/internal/domains/catalog/model"
	"library-rental-backend/internal/domains/rental/model"
	rosterModel "library-rental-backend/internal/domains/roster/model"
)

type fakeService struct {
	rentErr   error
	returnErr error
	listErr   error
	rental    *model.Rental
	rentals   []model.Rental
}

func (f *fakeService) RentBook(_ context.Context, _ model.RentalRequest) (*model.Rental, error) {
	return f.rental, f.rentErr
}

func (f *fakeService) ReturnBook(_ context.Context, _ model.RentalRequest) (*model.Rental, error) {
	return f.rental, f.returnErr
}

func (f *fakeService) ListActiveRentals(_ context.Context) ([]model.Rental, error) {
	return f.rentals, f.listErr
}

func (f *fakeService) ListStudentRentals(_ context.Context, _ string) ([]model.Rental, error) {
	return f.rentals, f.listErr
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	router.POST("/rentals/rent", h.RentBook)
	router.POST("/rentals/return", h.ReturnBook)
	router.GET("/rentals/active", h.ListActiveRentals)
	router.GET("/students/:id/rentals", h.ListStudentRentals)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var resp struct {
		Success bool `json:"success"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error.Code, resp.Error.Message
}

const rentBody = `{"student_id":"S1","isbn":"1111111111111"}`

func TestRentBookSuccess(t *testing.T) {
	svc := &fakeService{rental: &model.Rental{
		StudentID: "S1",
		ISBN:      "1111111111111",
		RentDate:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}}
	router := setupRouter(svc)

	w := doRequest(router, http.MethodPost, "/rentals/rent", rentBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    model.RentalResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2026-08-31", resp.Data.RentDate)
	assert.Equal(t, model.StatusActive, resp.Data.Status)
	assert.Nil(t, resp.Data.ReturnDate)
}

func TestRentBookErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"student missing", rosterModel.ErrStudentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"book missing", catalogModel.ErrBookNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"no copies", model.ErrBookUnavailable, http.StatusConflict, "UNAVAILABLE"},
		{"already rented", model.ErrActiveRentalExists, http.StatusConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&fakeService{rentErr: tt.err})

			w := doRequest(router, http.MethodPost, "/rentals/rent", rentBody)
			assert.Equal(t, tt.wantStatus, w.Code)

			code, _ := decodeError(t, w)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestRentBookInvalidPayload(t *testing.T) {
	router := setupRouter(&fakeService{})

	w := doRequest(router, http.MethodPost, "/rentals/rent", `{"student_id":"S1","isbn":"123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/rentals/rent", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReturnBookSuccess(t *testing.T) {
	returned := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	svc := &fakeService{rental: &model.Rental{
		StudentID:  "S1",
		ISBN:       "1111111111111",
		RentDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate: &returned,
	}}
	router := setupRouter(svc)

	w := doRequest(router, http.MethodPost, "/rentals/return", rentBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.RentalResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.StatusReturned, resp.Data.Status)
	require.NotNil(t, resp.Data.ReturnDate)
	assert.Equal(t, "2026-08-31", *resp.Data.ReturnDate)
}

func TestReturnBookNoActiveRental(t *testing.T) {
	router := setupRouter(&fakeService{returnErr: model.ErrActiveRentalNotFound})

	w := doRequest(router, http.MethodPost, "/rentals/return", rentBody)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, message := decodeError(t, w)
	assert.Equal(t, "Active rental record not found", message)
}

func TestListStudentRentalsUnknownStudent(t *testing.T) {
	router := setupRouter(&fakeService{listErr: rosterModel.ErrStudentNotFound})

	w := doRequest(router, http.MethodGet, "/students/ghost/rentals", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
