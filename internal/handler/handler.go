package handler

import (
	"github.com/user/watchlist/internal/config"
	"github.com/user/watchlist/internal/repository"
	"github.com/user/watchlist/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos  *repository.Repositories
	Config *config.Config
	Tokens *service.TokenService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:  repos,
		Config: cfg,
		Tokens: service.NewTokenService(cfg.AppSecret, cfg.JWTExpiry),
	}
}
