package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fithire-backend/internal/accounts"
	"fithire-backend/internal/centers"
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

// RegisterRoutes attaches dashboard routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/trainer", middleware.RequireRole(accounts.RoleTrainer), h.trainer)
	rg.GET("/dashboard/center", middleware.RequireRole(accounts.RoleCenter), h.center)
}

func (h *Handler) trainer(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	overview, err := h.Svc.Trainer(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build dashboard", nil)
		return
	}

	respond.JSON(c, http.StatusOK, overview)
}

func (h *Handler) center(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	overview, err := h.Svc.Center(c.Request.Context(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, centers.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "register a center first", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build dashboard", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, overview)
}
