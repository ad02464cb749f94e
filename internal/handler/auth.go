package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/user/watchlist/internal/utils"
)

// loginRequest 登录请求体
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录处理
// 验证用户名密码并签发令牌；两类失败统一提示，不暴露用户是否存在
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Username and password are required")
		return
	}

	user := h.Repos.User.FindByUsername(strings.TrimSpace(req.Username))
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
