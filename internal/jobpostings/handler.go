package jobpostings

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fithire-backend/internal/accounts"
	"fithire-backend/internal/centers"
	"fithire-backend/internal/shared/server/middleware"
	"fithire-backend/internal/shared/server/respond"
)

const deadlineLayout = "2006-01-02"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the unauthenticated listing routes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.view)
}

// RegisterRoutes attaches the center-facing management routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	centerOnly := middleware.RequireRole(accounts.RoleCenter)
	rg.POST("/jobs", centerOnly, h.create)
	rg.PUT("/jobs/:id", centerOnly, h.update)
	rg.PATCH("/jobs/:id/active", centerOnly, h.setActive)
	rg.DELETE("/jobs/:id", centerOnly, h.remove)
	rg.GET("/center/jobs", centerOnly, h.listMine)
	rg.GET("/center/jobs/:id", centerOnly, h.getMine)
}

type jobPostingRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Region          string   `json:"region"`
	Categories      []string `json:"categories"`
	Gender          string   `json:"gender"`
	EmploymentType  string   `json:"employmentType"`
	ExperienceLevel string   `json:"experienceLevel"`
	SalaryType      string   `json:"salaryType"`
	SalaryMin       *int64   `json:"salaryMin"`
	SalaryMax       *int64   `json:"salaryMax"`
	Deadline        string   `json:"deadline"`
}

func (req jobPostingRequest) toInput() (Input, error) {
	in := Input{
		Title:           req.Title,
		Description:     req.Description,
		Region:          req.Region,
		Categories:      req.Categories,
		Gender:          req.Gender,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryType:      req.SalaryType,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
	}
	if strings.TrimSpace(req.Deadline) != "" {
		deadline, err := time.Parse(deadlineLayout, strings.TrimSpace(req.Deadline))
		if err != nil {
			return Input{}, errors.New("deadline must be formatted YYYY-MM-DD")
		}
		in.Deadline = &deadline
	}
	return in, nil
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req jobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	in, err := req.toInput()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	posting, err := h.Svc.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		h.writeError(c, err, "failed to create job posting")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(posting))
}

func (h *Handler) list(c *gin.Context) {
	filter := Filter{
		Region:          c.Query("region"),
		Gender:          c.Query("gender"),
		EmploymentType:  c.Query("employmentType"),
		ExperienceLevel: c.Query("experienceLevel"),
		Search:          c.Query("search"),
		Limit:           intQuery(c, "limit", 20, 50),
		Offset:          intQuery(c, "offset", 0, 0),
	}
	if raw := c.Query("categories"); raw != "" {
		filter.Categories = strings.Split(raw, ",")
	}

	postings, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err, "failed to list job postings")
		return
	}

	respond.JSON(c, http.StatusOK, toResponses(postings))
}

func (h *Handler) view(c *gin.Context) {
	id, ok := postingID(c)
	if !ok {
		return
	}

	posting, err := h.Svc.View(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to fetch job posting")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(posting))
}

func (h *Handler) listMine(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	postings, err := h.Svc.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		h.writeError(c, err, "failed to list job postings")
		return
	}

	respond.JSON(c, http.StatusOK, toResponses(postings))
}

func (h *Handler) getMine(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	id, ok := postingID(c)
	if !ok {
		return
	}

	posting, err := h.Svc.GetMine(c.Request.Context(), ownerID, id)
	if err != nil {
		h.writeError(c, err, "failed to fetch job posting")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(posting))
}

func (h *Handler) update(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	id, ok := postingID(c)
	if !ok {
		return
	}

	var req jobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	in, err := req.toInput()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	posting, err := h.Svc.Update(c.Request.Context(), ownerID, id, in)
	if err != nil {
		h.writeError(c, err, "failed to update job posting")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(posting))
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *Handler) setActive(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	id, ok := postingID(c)
	if !ok {
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "isActive is required", nil)
		return
	}

	posting, err := h.Svc.SetActive(c.Request.Context(), ownerID, id, *req.IsActive)
	if err != nil {
		h.writeError(c, err, "failed to update job posting")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(posting))
}

func (h *Handler) remove(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	id, ok := postingID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.writeError(c, err, "failed to delete job posting")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "job posting belongs to another center", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
	case errors.Is(err, centers.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "register a center first", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func postingID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job posting id", nil)
		return "", false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, def, max int) int {
	value := def
	if raw := c.Query(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			value = parsed
		}
	}
	if value < 0 {
		value = 0
	}
	if max > 0 && value > max {
		value = max
	}
	return value
}
