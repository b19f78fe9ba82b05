package garage

import (
	"net/http"
	"strconv"

	"garagehub/internal/geocode"
	"garagehub/internal/pkg/response"
	"garagehub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the garage endpoints. Read routes go on the optional
// group (viewer identity changes visibility); write routes require auth.
func (h *Handler) RegisterRoutes(optional, protected *gin.RouterGroup) {
	if optional != nil {
		garages := optional.Group("/garages")
		{
			garages.GET("", h.List)
			garages.GET("/:id", h.Get)
		}
	}

	if protected != nil {
		garages := protected.Group("/garages")
		{
			garages.POST("", h.Create)
			garages.PUT("/:id", h.Update)
			garages.PATCH("/:id", h.Update)
			garages.DELETE("/:id", h.Delete)
		}
		protected.GET("/users/me/garages", h.ListMine)
	}
}

// List handles GET /garages with lat, lon and city query parameters. A
// malformed or half-supplied coordinate pair silently skips the proximity
// sort rather than erroring.
func (h *Handler) List(c *gin.Context) {
	viewer := viewerFrom(c)

	var origin *geocode.Point
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr == nil && lonErr == nil {
			origin = &geocode.Point{Lon: lon, Lat: lat}
		}
	}

	garages, err := h.service.List(c.Request.Context(), viewer, c.Query("city"), origin)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list garages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"garages": NewGarageResponseList(garages)})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid garage ID")
		return
	}

	g, err := h.service.Get(c.Request.Context(), viewerFrom(c), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Garage not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get garage")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"garage": NewGarageResponse(g)})
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	garages, err := h.service.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list garages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"garages": NewGarageResponseList(garages)})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGarageRequest
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

	g, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrInvalidPrice:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body",
				validator.FieldErrors{"services": {"A valid number is required."}})
		case ErrDuplicateService:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body",
				validator.FieldErrors{"services": {"Duplicate service for this garage."}})
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create garage")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"garage": NewGarageResponse(g)})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid garage ID")
		return
	}

	var req UpdateGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	viewer := viewerFrom(c)
	if viewer.ID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	g, err := h.service.Update(c.Request.Context(), viewer, id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Garage not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to update this garage")
		case ErrInvalidPrice:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body",
				validator.FieldErrors{"services": {"A valid number is required."}})
		case ErrDuplicateService:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body",
				validator.FieldErrors{"services": {"Duplicate service for this garage."}})
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update garage")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"garage": NewGarageResponse(g)})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid garage ID")
		return
	}

	viewer := viewerFrom(c)
	if viewer.ID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), viewer, id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Garage not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to delete this garage")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete garage")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Garage deleted"})
}

func viewerFrom(c *gin.Context) Viewer {
	return Viewer{
		ID:      c.GetInt64("user_id"),
		IsStaff: c.GetBool("is_staff"),
	}
}
