package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fithire-backend/internal/accounts"
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

// RegisterRoutes attaches resume routes. All of them require a trainer account.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	trainerOnly := middleware.RequireRole(accounts.RoleTrainer)
	rg.POST("/resumes", trainerOnly, h.create)
	rg.GET("/resumes", trainerOnly, h.list)
	rg.GET("/resumes/:id", trainerOnly, h.get)
	rg.PUT("/resumes/:id", trainerOnly, h.update)
	rg.DELETE("/resumes/:id", trainerOnly, h.remove)
}

type resumeRequest struct {
	Title           string           `json:"title"`
	Categories      []string         `json:"categories"`
	Region          string           `json:"region"`
	ExperienceLevel string           `json:"experienceLevel"`
	Gender          string           `json:"gender"`
	BirthYear       int              `json:"birthYear"`
	Introduction    string           `json:"introduction"`
	Certifications  []string         `json:"certifications"`
	CareerHistory   []CareerEntry    `json:"careerHistory"`
	Education       []EducationEntry `json:"education"`
	IsPrimary       bool             `json:"isPrimary"`
	IsPublic        *bool            `json:"isPublic"`
}

func (req resumeRequest) toInput() Input {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	return Input{
		Title:           req.Title,
		Categories:      req.Categories,
		Region:          req.Region,
		ExperienceLevel: req.ExperienceLevel,
		Gender:          req.Gender,
		BirthYear:       req.BirthYear,
		Introduction:    req.Introduction,
		Certifications:  req.Certifications,
		CareerHistory:   req.CareerHistory,
		Education:       req.Education,
		IsPrimary:       req.IsPrimary,
		IsPublic:        isPublic,
	}
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		h.writeError(c, err, "failed to create resume")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to list resumes")
		return
	}

	respond.JSON(c, http.StatusOK, toResponses(list))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id, ok := resumeID(c)
	if !ok {
		return
	}

	resume, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err, "failed to fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id, ok := resumeID(c)
	if !ok {
		return
	}

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), userID, id, req.toInput())
	if err != nil {
		h.writeError(c, err, "failed to update resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id, ok := resumeID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err, "failed to delete resume")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "resume belongs to another account", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func resumeID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume id", nil)
		return "", false
	}
	return id, true
}
