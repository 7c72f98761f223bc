package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyansetu/gyansetu-backend/internal/http/response"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /api/user/:uid
func (uh *UserHandler) GetProfile(c *gin.Context) {
	u, err := uh.userService.GetProfile(dbctx.Context{Ctx: c.Request.Context()}, c.Param("uid"))
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"role":      u.Role,
		"full_name": u.FullName,
		"email":     u.Email,
	})
}

// POST /api/admin/promote-user
// body: { "uid": "...", "new_role": "student" | "expert" | "admin" }
func (uh *UserHandler) PromoteUser(c *gin.Context) {
	var req struct {
		UID     string `json:"uid" binding:"required"`
		NewRole string `json:"new_role" binding:"required,role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, err)
		return
	}
	role, err := uh.userService.PromoteUser(dbctx.Context{Ctx: c.Request.Context()}, req.UID, req.NewRole)
	if err != nil {
		response.RespondErr(c, err, http.StatusBadRequest)
		return
	}
	response.RespondMessage(c, http.StatusOK, fmt.Sprintf("User promoted to %s", role))
}

// GET /api/expert/students
func (uh *UserHandler) ListStudents(c *gin.Context) {
	students, err := uh.userService.ListStudents(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	out := make([]gin.H, 0, len(students))
	for _, s := range students {
		out = append(out, gin.H{
			"id":        s.ID.String(),
			"full_name": s.FullName,
			"email":     s.Email,
		})
	}
	response.RespondOK(c, out)
}

// GET /api/expert/stats
func (uh *UserHandler) Stats(c *gin.Context) {
	stats, err := uh.userService.Stats(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondErr(c, err, http.StatusInternalServerError)
		return
	}
	response.RespondOK(c, stats)
}
