package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/user/watchlist/internal/middleware"
	"github.com/user/watchlist/internal/repository"
	"github.com/user/watchlist/internal/utils"
)

// createMovieRequest 新增片单条目请求体，watched 缺省为 false
type createMovieRequest struct {
	Title    string `json:"movietitle" binding:"required"`
	Language string `json:"language" binding:"required"`
	Watched  bool   `json:"watched"`
}

// replaceMovieRequest 整体替换请求体
// watched 用指针以便区分「未提供」与 false，三个字段都必填
type replaceMovieRequest struct {
	Title    string `json:"movietitle" binding:"required"`
	Language string `json:"language" binding:"required"`
	Watched  *bool  `json:"watched" binding:"required"`
}

// patchMovieRequest 部分更新请求体，缺省字段保持原值
type patchMovieRequest struct {
	Title    *string `json:"movietitle"`
	Language *string `json:"language"`
	Watched  *bool   `json:"watched"`
}

// ListMovies 返回当前用户的片单
// status=watched/unwatched 时按状态过滤，其他取值视为非法
func (h *Handler) ListMovies(c *gin.Context) {
	user := middleware.GetUser(c)

	status := c.Query("status")
	if status != "" && status != repository.FilterWatched && status != repository.FilterUnwatched {
		utils.BadRequest(c, "Unknown status filter")
		return
	}

	c.JSON(http.StatusOK, h.Repos.Watchlist.List(user.ID, status))
}

// CreateMovie 新增片单条目
func (h *Handler) CreateMovie(c *gin.Context) {
	user := middleware.GetUser(c)

	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindingMessage(err))
		return
	}

	movie := h.Repos.Watchlist.Create(user.ID, req.Title, req.Language, req.Watched)
	c.JSON(http.StatusCreated, movie)
}

// GetMovie 按 ID 返回单条片单条目
func (h *Handler) GetMovie(c *gin.Context) {
	user := middleware.GetUser(c)

	id, ok := movieID(c)
	if !ok {
		return
	}

	movie, err := h.Repos.Watchlist.Get(user.ID, id)
	if err != nil {
		utils.NotFound(c, "Movie not found")
		return
	}
	c.JSON(http.StatusOK, movie)
}

// ReplaceMovie 整体替换片单条目
func (h *Handler) ReplaceMovie(c *gin.Context) {
	user := middleware.GetUser(c)

	id, ok := movieID(c)
	if !ok {
		return
	}

	var req replaceMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindingMessage(err))
		return
	}

	movie, err := h.Repos.Watchlist.Replace(user.ID, id, req.Title, req.Language, *req.Watched)
	if err != nil {
		utils.NotFound(c, "Movie not found")
		return
	}
	c.JSON(http.StatusOK, movie)
}

// PatchMovie 部分更新片单条目，空对象是合法的 no-op
func (h *Handler) PatchMovie(c *gin.Context) {
	user := middleware.GetUser(c)

	id, ok := movieID(c)
	if !ok {
		return
	}

	var req patchMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	movie, err := h.Repos.Watchlist.Patch(user.ID, id, repository.MoviePatch{
		Title:    req.Title,
		Language: req.Language,
		Watched:  req.Watched,
	})
	if err != nil {
		utils.NotFound(c, "Movie not found")
		return
	}
	c.JSON(http.StatusOK, movie)
}

// DeleteMovie 删除片单条目
func (h *Handler) DeleteMovie(c *gin.Context) {
	user := middleware.GetUser(c)

	id, ok := movieID(c)
	if !ok {
		return
	}

	if err := h.Repos.Watchlist.Remove(user.ID, id); err != nil {
		utils.NotFound(c, "Movie not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// movieID 解析路径中的条目 ID
// 非数字一律按非法请求处理，而不是落到 404
func movieID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid movie id")
		return 0, false
	}
	return id, true
}

// bindingMessage 将绑定校验错误转换为对外提示
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return "Missing required fields: " + strings.Join(fields, ", ")
	}
	return "Invalid request body"
}
