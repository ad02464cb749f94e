package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/user/watchlist/internal/model"
	"github.com/user/watchlist/internal/repository"
	"github.com/user/watchlist/internal/service"
	"github.com/user/watchlist/internal/utils"
)

const userKey = "user"

// RequireAuth 必须登录中间件
// 每个请求都重新校验令牌并重新解析用户，不保留任何会话状态
func RequireAuth(tokens *service.TokenService, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Verify(bearerToken(c))
		if err != nil {
			if errors.Is(err, service.ErrMissingToken) {
				utils.Unauthorized(c, "Missing authorization token")
			} else {
				// 签名错误与过期同等对待
				utils.Forbidden(c, "Invalid or expired token")
			}
			c.Abort()
			return
		}

		// 令牌有效但用户已不存在时同样拒绝
		user := users.FindByID(claims.UserID)
		if user == nil {
			utils.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set(userKey, user)
		c.Next()
	}
}

// bearerToken 从 Authorization 头提取 Bearer 令牌
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUser 从上下文获取已认证用户（未认证返回 nil）
func GetUser(c *gin.Context) *model.User {
	if v, exists := c.Get(userKey); exists {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}
