package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyansetu/gyansetu-backend/internal/http/response"
	"github.com/gyansetu/gyansetu-backend/internal/services"
)

type TutorHandler struct {
	tutorService services.TutorService
}

func NewTutorHandler(tutorService services.TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

// POST /api/ai/ask
// body: { "query": "..." }
func (th *TutorHandler) Ask(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	// Malformed bodies fall through as an empty query.
	_ = c.ShouldBindJSON(&req)

	answer, err := th.tutorService.Ask(c.Request.Context(), req.Query)
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
