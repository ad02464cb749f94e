package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/watchlist/internal/handler"
	"github.com/user/watchlist/internal/middleware"
	"github.com/user/watchlist/internal/utils"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 登录
	r.POST("/login", h.Login)

	// ==================== 片单（需要登录）====================
	movies := r.Group("/movies")
	movies.Use(middleware.RequireAuth(h.Tokens, h.Repos.User))
	{
		movies.GET("", h.ListMovies)
		movies.POST("", h.CreateMovie)
		movies.GET("/:id", h.GetMovie)
		movies.PUT("/:id", h.ReplaceMovie)
		movies.PATCH("/:id", h.PatchMovie)
		movies.DELETE("/:id", h.DeleteMovie)
	}

	// 静态文件
	r.Static("/static", "./web/static")

	// 其余路径统一返回 404
	r.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Endpoint not found")
	})
}
