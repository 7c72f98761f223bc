package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/http/response"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/services"
)

type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func materialJSON(m *types.Material) gin.H {
	return gin.H{
		"id":           m.ID,
		"title":        m.Title,
		"subject":      m.Subject,
		"category":     m.Category,
		"file_url":     m.FileURL,
		"content_type": m.ContentType,
	}
}

func materialWithExamJSON(m *types.Material) gin.H {
	out := materialJSON(m)
	out["exam_name"] = m.ExamName
	out["exam_year"] = m.ExamYear
	return out
}

func videoJSON(v *types.Video) gin.H {
	return gin.H{
		"id":          v.ID,
		"title":       v.Title,
		"description": v.Description,
		"video_url":   v.VideoURL,
		"subject":     v.Subject,
		"category":    v.Category,
		"is_youtube":  v.IsYouTube,
	}
}

// GET /api/materials?type=&category=
func (ch *ContentHandler) ListMaterials(c *gin.Context) {
	list, err := ch.contentService.ListMaterials(dbctx.Context{Ctx: c.Request.Context()}, c.DefaultQuery("type", "material"), c.Query("category"))
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, m := range list {
		out = append(out, materialJSON(m))
	}
	response.RespondOK(c, out)
}

// GET /api/videos?category=
func (ch *ContentHandler) ListVideos(c *gin.Context) {
	list, err := ch.contentService.ListVideos(dbctx.Context{Ctx: c.Request.Context()}, c.Query("category"))
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, v := range list {
		out = append(out, videoJSON(v))
	}
	response.RespondOK(c, out)
}

// GET /api/pyp
func (ch *ContentHandler) ListPYP(c *gin.Context) {
	list, err := ch.contentService.ListPYP(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, m := range list {
		out = append(out, materialWithExamJSON(m))
	}
	response.RespondOK(c, out)
}

// GET /api/expert/my-content?uploaded_by=&type=
func (ch *ContentHandler) ListMyContent(c *gin.Context) {
	list, err := ch.contentService.ListMyContent(dbctx.Context{Ctx: c.Request.Context()}, c.Query("uploaded_by"), c.Query("type"))
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, m := range list {
		out = append(out, materialWithExamJSON(m))
	}
	response.RespondOK(c, out)
}

// POST /api/expert/upload-content
func (ch *ContentHandler) UploadContent(c *gin.Context) {
	var req struct {
		Title       string       `json:"title" binding:"required"`
		Category    string       `json:"category" binding:"required"`
		Subject     string       `json:"subject" binding:"required"`
		ContentType string       `json:"content_type" binding:"required"`
		FileURL     string       `json:"file_url" binding:"required"`
		UploadedBy  string       `json:"uploaded_by" binding:"required"`
		ExamName    *string      `json:"exam_name"`
		ExamYear    *json.Number `json:"exam_year"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	in := services.UploadContentInput{
		Title:       req.Title,
		Category:    req.Category,
		Subject:     req.Subject,
		ContentType: req.ContentType,
		FileURL:     req.FileURL,
		UploadedBy:  req.UploadedBy,
		ExamName:    req.ExamName,
	}
	if req.ExamYear != nil && req.ExamYear.String() != "" {
		year, err := strconv.Atoi(req.ExamYear.String())
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid exam_year %q", req.ExamYear.String()))
			return
		}
		in.ExamYear = &year
	}
	if _, err := ch.contentService.UploadContent(dbctx.Context{Ctx: c.Request.Context()}, in); err != nil {
		response.RespondErr(c, err, http.StatusBadRequest)
		return
	}
	response.RespondMessage(c, http.StatusCreated, "Content uploaded successfully")
}

// POST /api/expert/upload-video
func (ch *ContentHandler) UploadVideo(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Category    string `json:"category" binding:"required"`
		Subject     string `json:"subject" binding:"required"`
		VideoURL    string `json:"video_url" binding:"required"`
		UploadedBy  string `json:"uploaded_by" binding:"required"`
		IsYouTube   *bool  `json:"is_youtube"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	_, err := ch.contentService.UploadVideo(dbctx.Context{Ctx: c.Request.Context()}, services.UploadVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Subject:     req.Subject,
		VideoURL:    req.VideoURL,
		UploadedBy:  req.UploadedBy,
		IsYouTube:   req.IsYouTube,
	})
	if err != nil {
		response.RespondErr(c, err, http.StatusBadRequest)
		return
	}
	response.RespondMessage(c, http.StatusCreated, "Video published successfully")
}

// DELETE /api/expert/delete-content/:id
func (ch *ContentHandler) DeleteContent(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := ch.contentService.DeleteContent(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Deleted successfully")
}

// DELETE /api/expert/delete-video/:id
func (ch *ContentHandler) DeleteVideo(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := ch.contentService.DeleteVideo(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Video deleted")
}

// intParam writes a 404 for non-integer ids, matching a route that never matched.
func intParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return id, true
}
