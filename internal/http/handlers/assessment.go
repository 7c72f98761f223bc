package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/http/response"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

func questionJSON(q *types.Question) gin.H {
	return gin.H{
		"question_text":  q.QuestionText,
		"options":        []string(q.Options),
		"correct_answer": q.CorrectAnswer,
		"explanation":    q.Explanation,
	}
}

// GET /api/test/:test_id/questions
func (ah *AssessmentHandler) TestQuestions(c *gin.Context) {
	testID, ok := intParam(c, "test_id")
	if !ok {
		return
	}
	qs, err := ah.assessmentService.TestQuestions(dbctx.Context{Ctx: c.Request.Context()}, testID)
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	out := make([]gin.H, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionJSON(q))
	}
	response.RespondOK(c, out)
}

// POST /api/test/submit
// accuracy may be a number or a numeric string.
func (ah *AssessmentHandler) SubmitTest(c *gin.Context) {
	var req struct {
		UserID   string       `json:"user_id" binding:"required"`
		TestID   *int64       `json:"test_id" binding:"required"`
		Score    *int         `json:"score" binding:"required"`
		Accuracy *json.Number `json:"accuracy" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	accuracy, err := req.Accuracy.Float64()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, errors.New("accuracy must be numeric"))
		return
	}
	_, err = ah.assessmentService.SubmitTest(dbctx.Context{Ctx: c.Request.Context()}, services.SubmitTestInput{
		UserID:   req.UserID,
		TestID:   *req.TestID,
		Score:    *req.Score,
		Accuracy: accuracy,
	})
	if err != nil {
		response.RespondErr(c, err, http.StatusBadRequest)
		return
	}
	response.RespondMessage(c, http.StatusCreated, "Test submitted successfully")
}

// POST /api/ai/generate-test
// body: { "subject": "..." }, optional; defaults to Indian Polity.
func (ah *AssessmentHandler) GenerateTest(c *gin.Context) {
	var req struct {
		Subject string `json:"subject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	qs, err := ah.assessmentService.GenerateTest(dbctx.Context{Ctx: c.Request.Context()}, req.Subject)
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	out := make([]gin.H, 0, len(qs))
	for _, q := range qs {
		item := questionJSON(q)
		item["id"] = q.ID
		item["test_id"] = q.TestID
		item["subject"] = q.Subject
		out = append(out, item)
	}
	response.RespondOK(c, out)
}
