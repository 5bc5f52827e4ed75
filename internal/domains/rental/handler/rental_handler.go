package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogModel "library-rental-backend/internal/domains/catalog/model"
	"library-rental-backend/internal/domains/rental/model"
	"library-rental-backend/internal/domains/rental/service"
	rosterModel "library-rental-backend/internal/domains/roster/model"
	"library-rental-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// RentBook handles POST /rentals/rent
func (h *Handler) RentBook(c *gin.Context) {
	var req model.RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rental, err := h.svc.RentBook(c.Request.Context(), req)
	if err != nil {
		switch {
		case rosterModel.IsNotFoundError(err):
			response.NotFound(c, "Student not found")
		case catalogModel.IsNotFoundError(err):
			response.NotFound(c, "Book not found")
		case model.IsUnavailableError(err):
			response.Unavailable(c, "Book is not available for rent")
		case model.IsConflictError(err):
			response.Conflict(c, "Student already has an active rental for this book")
		default:
			response.InternalServerError(c, "Failed to rent book")
		}
		return
	}

	response.Success(c, http.StatusCreated, model.NewRentalResponse(rental))
}

// ReturnBook handles POST /rentals/return
func (h *Handler) ReturnBook(c *gin.Context) {
	var req model.RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rental, err := h.svc.ReturnBook(c.Request.Context(), req)
	if err != nil {
		if model.IsNotFoundError(err) {
			response.NotFound(c, "Active rental record not found")
			return
		}
		response.InternalServerError(c, "Failed to return book")
		return
	}

	response.Success(c, http.StatusOK, model.NewRentalResponse(rental))
}

// ListActiveRentals handles GET /rentals/active
func (h *Handler) ListActiveRentals(c *gin.Context) {
	rentals, err := h.svc.ListActiveRentals(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list active rentals")
		return
	}

	response.Success(c, http.StatusOK, model.NewRentalResponses(rentals))
}

// ListStudentRentals handles GET /students/:id/rentals
func (h *Handler) ListStudentRentals(c *gin.Context) {
	studentID := c.Param("id")

	rentals, err := h.svc.ListStudentRentals(c.Request.Context(), studentID)
	if err != nil {
		if rosterModel.IsNotFoundError(err) {
			response.NotFound(c, "Student not found")
			return
		}
		response.InternalServerError(c, "Failed to list student rentals")
		return
	}

	response.Success(c, http.StatusOK, model.NewRentalResponses(rentals))
}
