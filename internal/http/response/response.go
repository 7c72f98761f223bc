package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyansetu/gyansetu-backend/internal/platform/apierr"
)

// RespondError writes {"error": message}.
func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, gin.H{"error": msg})
}

// RespondErr uses the status carried by an apierr.Error, or fallback.
func RespondErr(c *gin.Context, err error, fallback int) {
	RespondError(c, apierr.Status(err, fallback), err)
}

func RespondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
