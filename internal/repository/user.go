package repository

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/watchlist/internal/model"
)

// SeedUser 启动种子用户
// 明文密码只存在于启动阶段，写入仓库前即被哈希
type SeedUser struct {
	ID       int
	Username string
	Password string
}

// UserRepository 固定用户表
// 启动时一次性填充，运行期间成员不变，所有查询都是纯读取
type UserRepository struct {
	byID   map[int]*model.User
	byName map[string]*model.User
}

// NewUserRepository 根据种子数据创建用户仓库
// 密码以 bcrypt 哈希形式存储，原文不落地
func NewUserRepository(seed []SeedUser) (*UserRepository, error) {
	r := &UserRepository{
		byID:   make(map[int]*model.User, len(seed)),
		byName: make(map[string]*model.User, len(seed)),
	}

	for _, s := range seed {
		if _, ok := r.byID[s.ID]; ok {
			return nil, fmt.Errorf("duplicate seed user id %d", s.ID)
		}
		if _, ok := r.byName[s.Username]; ok {
			return nil, fmt.Errorf("duplicate seed username %q", s.Username)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", s.Username, err)
		}

		u := &model.User{
			ID:           s.ID,
			Username:     s.Username,
			PasswordHash: string(hash),
		}
		r.byID[u.ID] = u
		r.byName[u.Username] = u
	}

	return r, nil
}

// FindByUsername 根据用户名查找用户，不存在返回 nil
func (r *UserRepository) FindByUsername(username string) *model.User {
	return r.byName[username]
}

// FindByID 根据 ID 查找用户，不存在返回 nil
func (r *UserRepository) FindByID(id int) *model.User {
	return r.byID[id]
}

// CheckPassword 验证密码（bcrypt 内部为恒定时间比较）
func (r *UserRepository) CheckPassword(user *model.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}
