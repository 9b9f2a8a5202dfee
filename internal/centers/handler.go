package centers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches center routes to the router group.
// Write operations require a center-role account.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	centerOnly := middleware.RequireRole(accounts.RoleCenter)
	rg.POST("/centers", centerOnly, h.create)
	rg.GET("/centers/me", centerOnly, h.mine)
	rg.PUT("/centers/me", centerOnly, h.update)
}

type centerRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	LogoURL      string `json:"logoUrl"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

func (req centerRequest) toInput() Input {
	return Input{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Region:       req.Region,
		LogoURL:      req.LogoURL,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req centerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	center, err := h.Svc.Create(c.Request.Context(), ownerID, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusConflict, "conflict", "a center is already registered for this account", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create center", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(center))
}

func (h *Handler) mine(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	center, err := h.Svc.Mine(c.Request.Context(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "center not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch center", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(center))
}

func (h *Handler) update(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req centerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	center, err := h.Svc.Update(c.Request.Context(), ownerID, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "center not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update center", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(center))
}
