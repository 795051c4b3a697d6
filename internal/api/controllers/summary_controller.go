package controllers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/photo"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type SummaryController struct {
	summaryService  services.SummaryServiceInterface
	maxUploadBytes  int64
	workflowTimeout time.Duration
}

func NewSummaryController(summaryService services.SummaryServiceInterface, maxUploadBytes int64, workflowTimeout time.Duration) *SummaryController {
	return &SummaryController{
		summaryService:  summaryService,
		maxUploadBytes:  maxUploadBytes,
		workflowTimeout: workflowTimeout,
	}
}

// SendSummary godoc
// @Summary Send a work summary email
// @Description Compresses and uploads the photos, then emails the summary
// @Tags Summaries
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /send-summary [post]
func (sc *SummaryController) SendSummary(c *gin.Context) {
	form, ok := sc.parseForm(c)
	if !ok {
		return
	}

	var req request_models.SummaryRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	beforeHeaders := collectGroup(form, "photoBefore")
	afterHeaders := collectGroup(form, "photoAfter")
	if !sc.withinCeiling(c, beforeHeaders, afterHeaders) {
		return
	}

	before, err := readFiles(beforeHeaders)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read uploaded photos")
		return
	}
	after, err := readFiles(afterHeaders)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read uploaded photos")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), sc.workflowTimeout)
	defer cancel()

	resp, err := sc.summaryService.Deliver(ctx, req, services.PhotoGroup{Before: before, After: after})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Email sent successfully")
}

// UploadPhotos godoc
// @Summary Upload one chunk of photos into a session
// @Tags Summaries
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /send-summary/upload [post]
func (sc *SummaryController) UploadPhotos(c *gin.Context) {
	form, ok := sc.parseForm(c)
	if !ok {
		return
	}

	sessionID := c.PostForm("sessionId")
	group := c.PostForm("group")

	headers := collectGroup(form, "photos")
	if !sc.withinCeiling(c, headers) {
		return
	}

	files, err := readFiles(headers)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read uploaded photos")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), sc.workflowTimeout)
	defer cancel()

	state, err := sc.summaryService.UploadToSession(ctx, sessionID, group, files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Photos uploaded")
}

// Finalize godoc
// @Summary Send the summary email for an upload session
// @Tags Summaries
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /send-summary/finalize [post]
func (sc *SummaryController) Finalize(c *gin.Context) {
	var req request_models.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), sc.workflowTimeout)
	defer cancel()

	resp, err := sc.summaryService.Finalize(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Email sent successfully")
}

// ListSummaries godoc
// @Summary List sent summaries
// @Tags Summaries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /summaries [get]
func (sc *SummaryController) ListSummaries(c *gin.Context) {
	summaries, err := sc.summaryService.ListSummaries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summaries, "")
}

// parseForm enforces the payload ceiling before any multipart parsing.
func (sc *SummaryController) parseForm(c *gin.Context) (*multipart.Form, bool) {
	if c.Request.ContentLength > sc.maxUploadBytes {
		utils.HandleServiceError(c, utils.ErrPayloadTooLarge)
		return nil, false
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, sc.maxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}
	return form, true
}

// withinCeiling re-checks the declared part sizes so an over-limit
// submission is rejected before any photo bytes are processed.
func (sc *SummaryController) withinCeiling(c *gin.Context, groups ...[]*multipart.FileHeader) bool {
	var total int64
	for _, headers := range groups {
		for _, fh := range headers {
			total += fh.Size
		}
	}
	if total > sc.maxUploadBytes {
		utils.HandleServiceError(c, utils.ErrPayloadTooLarge)
		return false
	}
	return true
}

// collectGroup gathers files posted under a bare key ("photoBefore")
// or indexed keys ("photoBefore_0", "photoBefore_1", …) used by
// chunking clients, in index order. Gaps in the numbering are fine;
// a retried chunk may start above zero.
func collectGroup(form *multipart.Form, prefix string) []*multipart.FileHeader {
	var headers []*multipart.FileHeader
	if fhs, ok := form.File[prefix]; ok {
		headers = append(headers, fhs...)
	}
	var indexes []int
	for key := range form.File {
		suffix, ok := strings.CutPrefix(key, prefix+"_")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)
	for _, n := range indexes {
		headers = append(headers, form.File[fmt.Sprintf("%s_%d", prefix, n)]...)
	}
	return headers
}

func readFiles(headers []*multipart.FileHeader) ([]photo.File, error) {
	files := make([]photo.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, photo.File{Name: fh.Filename, Data: data})
	}
	return files, nil
}
