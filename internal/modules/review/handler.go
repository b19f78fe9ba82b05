package review

import (
	"net/http"
	"strconv"

	"garagehub/internal/pkg/response"
	"garagehub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts review endpoints under a garage. Listing is public,
// creation requires authentication.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/garages/:id/reviews", h.GetByGarage)
	}
	if protected != nil {
		protected.POST("/garages/:id/reviews", h.Create)
	}
}

func (h *Handler) GetByGarage(c *gin.Context) {
	garageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || garageID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid garage ID")
		return
	}

	reviews, err := h.svc.GetByGarage(c.Request.Context(), garageID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Garage not found")
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": NewResponseList(reviews)})
}

func (h *Handler) Create(c *gin.Context) {
	garageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || garageID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid garage ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fieldErrs)
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), userID, garageID, req)
	if err != nil {
		switch err {
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Garage not found")
		case ErrConflict:
			response.Error(c, http.StatusConflict, "CONFLICT", "You have already reviewed this garage")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": NewResponse(rv)})
}
