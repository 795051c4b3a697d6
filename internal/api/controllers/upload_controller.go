package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

// UploadController is a thin shim over the blob store: GET redirects
// to the object, POST stores a raw body under the given name.
type UploadController struct {
	storage        services.StorageService
	maxUploadBytes int64
}

func NewUploadController(storage services.StorageService, maxUploadBytes int64) *UploadController {
	return &UploadController{storage: storage, maxUploadBytes: maxUploadBytes}
}

// Serve godoc
// @Summary Redirect to a stored file
// @Tags Uploads
// @Produce json
// @Success 302
// @Failure 404 {object} utils.APIResponse
// @Router /uploads/{filename} [get]
func (uc *UploadController) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("filename"), "/")
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, "Filename is required")
		return
	}

	exists, err := uc.storage.Exists(c.Request.Context(), key)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !exists {
		utils.HandleServiceError(c, utils.ErrObjectNotFound)
		return
	}

	url, err := uc.storage.PresignGet(c.Request.Context(), key)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// Store godoc
// @Summary Upload a raw file body
// @Tags Uploads
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /uploads/{filename} [post]
func (uc *UploadController) Store(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("filename"), "/")
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, "Filename is required")
		return
	}
	if c.Request.ContentLength > uc.maxUploadBytes {
		utils.HandleServiceError(c, utils.ErrPayloadTooLarge)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, uc.maxUploadBytes))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	contentType := c.ContentType()
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := uc.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "File uploaded")
}
