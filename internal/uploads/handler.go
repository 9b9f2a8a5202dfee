package uploads

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"fithire-backend/internal/shared/server/middleware"
	"fithire-backend/internal/shared/server/respond"
	"fithire-backend/internal/shared/storage/object"
)

const maxImageSize = 5 << 20 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Handler stores uploaded images and hands back their key. The returned key
// is what profile and center records carry in avatarUrl / logoUrl.
type Handler struct {
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(store object.ObjectStore) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/images", h.uploadImage)
}

type uploadResponse struct {
	Key       string `json:"key"`
	MimeType  string `json:"mimeType"`
	SizeBytes int64  `json:"sizeBytes"`
}

func (h *Handler) uploadImage(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file must be an image", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	key, size, mimeType, err := h.Store.Save(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store image", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, uploadResponse{
		Key:       key,
		MimeType:  mimeType,
		SizeBytes: size,
	})
}
