package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// 内置默认密钥，仅供本地开发使用
const insecureDefaultSecret = "your-secret-key-change-in-production"

// ErrInsecureSecret 生产环境仍在使用内置默认密钥
var ErrInsecureSecret = errors.New("APP_SECRET not set: refusing to start in production with the default signing secret")

// Config 应用配置
type Config struct {
	Env       string
	AppSecret string
	JWTExpiry time.Duration
	Port      string
	SiteName  string
}

// Load 加载配置
// 生产环境下若未显式配置签名密钥则拒绝启动
func Load() (*Config, error) {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", insecureDefaultSecret))
	env := getEnv("APP_ENV", "development")

	if env == "production" && appSecret == insecureDefaultSecret {
		return nil, ErrInsecureSecret
	}

	return &Config{
		Env:       env,
		AppSecret: appSecret,
		JWTExpiry: time.Duration(expiryHours) * time.Hour,
		Port:      getEnv("PORT", "5005"),
		SiteName:  getEnv("SITE_NAME", "Watchlist"),
	}, nil
}

// UsingDefaultSecret 是否仍在使用内置默认密钥
func (c *Config) UsingDefaultSecret() bool {
	return c.AppSecret == insecureDefaultSecret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
