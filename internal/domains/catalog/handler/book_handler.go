package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-rental-backend/internal/domains/catalog/model"
	"library-rental-backend/internal/domains/catalog/service"
	"library-rental-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListBooks handles GET /books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list books")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// GetBook handles GET /books/:isbn
func (h *Handler) GetBook(c *gin.Context) {
	isbn := c.Param("isbn")

	book, err := h.svc.GetBook(c.Request.Context(), isbn)
	if err != nil {
		if model.IsNotFoundError(err) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalServerError(c, "Failed to get book")
		return
	}

	response.Success(c, http.StatusOK, book)
}

// CreateBook handles POST /books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.svc.CreateBook(c.Request.Context(), req)
	if err != nil {
		switch {
		case model.IsValidationError(err):
			response.BadRequest(c, err.Error())
		case model.IsConflictError(err):
			response.Conflict(c, "Book already exists")
		default:
			response.InternalServerError(c, "Failed to create book")
		}
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// UpdateBook handles PUT /books/:isbn
func (h *Handler) UpdateBook(c *gin.Context) {
	isbn := c.Param("isbn")

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.svc.UpdateBook(c.Request.Context(), isbn, req)
	if err != nil {
		switch {
		case model.IsValidationError(err):
			response.BadRequest(c, err.Error())
		case model.IsNotFoundError(err):
			response.NotFound(c, "Book not found")
		default:
			response.InternalServerError(c, "Failed to update book")
		}
		return
	}

	response.Success(c, http.StatusOK, book)
}

// DeleteBook handles DELETE /books/:isbn
func (h *Handler) DeleteBook(c *gin.Context) {
	isbn := c.Param("isbn")

	book, err := h.svc.DeleteBook(c.Request.Context(), isbn)
	if err != nil {
		if model.IsNotFoundError(err) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalServerError(c, "Failed to delete book")
		return
	}

	response.Success(c, http.StatusOK, book)
}
