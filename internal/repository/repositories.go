package repository

import "fmt"

// Repositories 仓库集合
type Repositories struct {
	User      *UserRepository
	Watchlist *WatchlistRepository
}

// NewRepositories 创建仓库集合
// 全部为内存态，进程退出即失效
func NewRepositories(seed []SeedUser) (*Repositories, error) {
	users, err := NewUserRepository(seed)
	if err != nil {
		return nil, fmt.Errorf("init user repository: %w", err)
	}

	return &Repositories{
		User:      users,
		Watchlist: NewWatchlistRepository(),
	}, nil
}
