package part

import (
	"errors"
	"net/http"
	"strconv"

	"garagehub/internal/pkg/response"
	"garagehub/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the read-only parts catalog.
type Handler struct {
	parts *repository.PartRepository
}

func NewHandler(parts *repository.PartRepository) *Handler {
	return &Handler{parts: parts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	parts := r.Group("/parts")
	{
		parts.GET("", h.List)
		parts.GET("/:id", h.Get)
	}
}

// List handles GET /parts, restricted to available parts.
func (h *Handler) List(c *gin.Context) {
	parts, err := h.parts.GetAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list parts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"parts": NewResponseList(parts)})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part ID")
		return
	}

	p, err := h.parts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Part not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get part")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"part": NewResponse(p)})
}
