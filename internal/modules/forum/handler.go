package forum

import (
	"net/http"
	"strconv"

	"garagehub/internal/pkg/response"
	"garagehub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
	hub *Hub
}

func NewHandler(svc *Service, hub *Hub) *Handler {
	return &Handler{svc: svc, hub: hub}
}

// RegisterRoutes mounts the forum. Reading threads is open; creating or
// changing anything requires authentication.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		threads := public.Group("/forum/threads")
		{
			threads.GET("", h.ListThreads)
			threads.GET("/:id", h.GetThread)
			threads.GET("/:id/live", h.Live)
		}
	}

	if protected != nil {
		threads := protected.Group("/forum/threads")
		{
			threads.POST("", h.CreateThread)
			threads.PUT("/:id", h.UpdateThread)
			threads.DELETE("/:id", h.DeleteThread)
			threads.POST("/:id/posts", h.CreatePost)
		}
		posts := protected.Group("/forum/posts")
		{
			posts.PUT("/:id", h.UpdatePost)
			posts.DELETE("/:id", h.DeletePost)
		}
	}
}

/* ---------- THREADS ---------- */

func (h *Handler) ListThreads(c *gin.Context) {
	threads, err := h.svc.ListThreads(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list threads")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"threads": NewThreadResponseList(threads)})
}

func (h *Handler) GetThread(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	t, err := h.svc.GetThread(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Thread not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get thread")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"thread": NewThreadResponse(t)})
}

func (h *Handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
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

	t, err := h.svc.CreateThread(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create thread")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"thread": NewThreadResponse(t)})
}

func (h *Handler) UpdateThread(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fieldErrs)
		return
	}

	t, err := h.svc.UpdateThread(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		handleWriteError(c, err, "thread")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"thread": NewThreadResponse(t)})
}

func (h *Handler) DeleteThread(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteThread(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		handleWriteError(c, err, "thread")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Thread deleted"})
}

/* ---------- POSTS ---------- */

func (h *Handler) CreatePost(c *gin.Context) {
	threadID, ok := paramID(c)
	if !ok {
		return
	}

	var req CreatePostRequest
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

	p, err := h.svc.CreatePost(c.Request.Context(), userID, threadID, req)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Thread not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post": NewPostResponse(p)})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fieldErrs)
		return
	}

	p, err := h.svc.UpdatePost(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		handleWriteError(c, err, "post")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": NewPostResponse(p)})
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.DeletePost(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		handleWriteError(c, err, "post")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted"})
}

/* ---------- HELPERS ---------- */

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func handleWriteError(c *gin.Context, err error, kind string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not the author of this "+kind)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
