package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-rental-backend/internal/domains/roster/model"
	"library-rental-backend/internal/domains/roster/service"
	"library-rental-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListStudents handles GET /students
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.svc.ListStudents(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list students")
		return
	}

	response.Success(c, http.StatusOK, students)
}

// CreateStudent handles POST /students
func (h *Handler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	student, err := h.svc.CreateStudent(c.Request.Context(), req)
	if err != nil {
		if model.IsConflictError(err) {
			response.Conflict(c, "Student already exists")
			return
		}
		response.InternalServerError(c, "Failed to create student")
		return
	}

	response.Success(c, http.StatusCreated, student)
}
