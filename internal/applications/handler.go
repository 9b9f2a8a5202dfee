package applications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fithire-backend/internal/accounts"
	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/resumes"
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

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	trainerOnly := middleware.RequireRole(accounts.RoleTrainer)
	centerOnly := middleware.RequireRole(accounts.RoleCenter)
	rg.POST("/jobs/:id/applications", trainerOnly, h.apply)
	rg.GET("/jobs/:id/applications", centerOnly, h.listForPosting)
	rg.GET("/applications", trainerOnly, h.listMine)
	rg.GET("/applications/:id", h.detail)
	rg.DELETE("/applications/:id", trainerOnly, h.cancel)
	rg.PATCH("/applications/:id/status", centerOnly, h.updateStatus)
}

type applyRequest struct {
	ResumeID string `json:"resumeId"`
}

func (h *Handler) apply(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	postingID, ok := pathID(c, "invalid job posting id")
	if !ok {
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.Apply(c.Request.Context(), userID, postingID, req.ResumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "resume belongs to another account", nil)
		case errors.Is(err, ErrPostingClosed):
			respond.Error(c, http.StatusBadRequest, "validation_error", "job posting is closed", nil)
		case errors.Is(err, ErrAlreadyApplied):
			respond.Error(c, http.StatusConflict, "conflict", "already applied to this job posting", nil)
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, jobpostings.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit application", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(app))
}

func (h *Handler) cancel(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id, ok := pathID(c, "invalid application id")
	if !ok {
		return
	}

	if err := h.Svc.Cancel(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "application belongs to another account", nil)
		case errors.Is(err, ErrNotCancellable):
			respond.Error(c, http.StatusBadRequest, "validation_error", "only pending applications may be cancelled", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to cancel application", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	callerID := middleware.UserIDFromContext(c)
	id, ok := pathID(c, "invalid application id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, transition, err := h.Svc.UpdateStatus(c.Request.Context(), callerID, id, req.Status, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidTransition):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "application belongs to another center", nil)
		case errors.Is(err, ErrNotFound), errors.Is(err, jobpostings.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update application", nil)
		}
		return
	}

	if transition != "" {
		c.Set("statusTransition", transition)
	}
	respond.JSON(c, http.StatusOK, toResponse(app))
}

func (h *Handler) detail(c *gin.Context) {
	callerID := middleware.UserIDFromContext(c)
	id, ok := pathID(c, "invalid application id")
	if !ok {
		return
	}

	detail, err := h.Svc.Detail(c.Request.Context(), callerID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "not a party to this application", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch application", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toDetailResponse(detail))
}

func (h *Handler) listMine(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	apps, err := h.Svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toUserResponses(apps))
}

func (h *Handler) listForPosting(c *gin.Context) {
	callerID := middleware.UserIDFromContext(c)
	postingID, ok := pathID(c, "invalid job posting id")
	if !ok {
		return
	}

	apps, err := h.Svc.ListForPosting(c.Request.Context(), callerID, postingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "job posting belongs to another center", nil)
		case errors.Is(err, jobpostings.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applicants", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toPostingResponses(apps))
}

func pathID(c *gin.Context, message string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", message, nil)
		return "", false
	}
	return id, true
}
