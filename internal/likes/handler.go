package likes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/shared/server/middleware"
	"fithire-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches like routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/like", h.toggle)
	rg.GET("/jobs/:id/like", h.status)
	rg.GET("/likes", h.list)
}

type likeResponse struct {
	Liked bool `json:"liked"`
}

func (h *Handler) toggle(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	postingID, ok := postingID(c)
	if !ok {
		return
	}

	liked, err := h.Svc.Toggle(c.Request.Context(), userID, postingID)
	if err != nil {
		switch {
		case errors.Is(err, jobpostings.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to toggle like", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, likeResponse{Liked: liked})
}

func (h *Handler) status(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	postingID, ok := postingID(c)
	if !ok {
		return
	}

	liked, err := h.Svc.IsLiked(c.Request.Context(), userID, postingID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch like", nil)
		return
	}

	respond.JSON(c, http.StatusOK, likeResponse{Liked: liked})
}

type likedPostingResponse struct {
	JobPostingID string    `json:"jobPostingId"`
	Title        string    `json:"title"`
	Region       string    `json:"region"`
	CenterName   string    `json:"centerName"`
	IsActive     bool      `json:"isActive"`
	LikedAt      time.Time `json:"likedAt"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	liked, err := h.Svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list likes", nil)
		return
	}

	resp := make([]likedPostingResponse, 0, len(liked))
	for _, row := range liked {
		resp = append(resp, likedPostingResponse{
			JobPostingID: row.JobPostingID,
			Title:        row.Title,
			Region:       row.Region,
			CenterName:   row.CenterName,
			IsActive:     row.IsActive,
			LikedAt:      row.LikedAt,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}

func postingID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job posting id", nil)
		return "", false
	}
	return id, true
}
