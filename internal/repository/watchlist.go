package repository

import (
	"errors"
	"sync"

	"github.com/user/watchlist/internal/model"
)

// ErrMovieNotFound 片单中不存在对应条目
var ErrMovieNotFound = errors.New("movie not found")

// 片单状态过滤值
const (
	FilterWatched   = "watched"
	FilterUnwatched = "unwatched"
)

// MoviePatch 部分更新字段，nil 表示保持原值
type MoviePatch struct {
	Title    *string
	Language *string
	Watched  *bool
}

// userList 单个用户的片单
// 条目保持插入顺序，ID 由 nextID 单调递增分配，读写经 mu 串行化
type userList struct {
	mu     sync.Mutex
	movies []model.Movie
	nextID int
}

// WatchlistRepository 按用户划分的内存片单集合
// 进程生命周期内有效，不做持久化；跨用户互不可见
type WatchlistRepository struct {
	mu    sync.RWMutex
	lists map[int]*userList
}

// NewWatchlistRepository 创建片单仓库
func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{lists: make(map[int]*userList)}
}

// listFor 取出用户的片单，首次访问时创建
func (r *WatchlistRepository) listFor(userID int) *userList {
	r.mu.RLock()
	l, ok := r.lists[userID]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.lists[userID]; !ok {
		l = &userList{nextID: 1}
		r.lists[userID] = l
	}
	return l
}

// List 返回用户的片单条目副本，保持插入顺序
// filter 为 watched/unwatched 时只返回对应状态，其余值不过滤
func (r *WatchlistRepository) List(userID int, filter string) []model.Movie {
	l := r.listFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Movie, 0, len(l.movies))
	for _, m := range l.movies {
		switch filter {
		case FilterWatched:
			if !m.Watched {
				continue
			}
		case FilterUnwatched:
			if m.Watched {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// Create 追加一条片单条目并返回创建结果
func (r *WatchlistRepository) Create(userID int, title, language string, watched bool) model.Movie {
	l := r.listFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	m := model.Movie{
		ID:       l.nextID,
		Title:    title,
		Language: language,
		Watched:  watched,
	}
	l.nextID++
	l.movies = append(l.movies, m)
	return m
}

// Get 按 ID 查找条目
func (r *WatchlistRepository) Get(userID, movieID int) (model.Movie, error) {
	l := r.listFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range l.movies {
		if m.ID == movieID {
			return m, nil
		}
	}
	return model.Movie{}, ErrMovieNotFound
}

// Replace 整体替换条目内容，ID 与位置保持不变
func (r *WatchlistRepository) Replace(userID, movieID int, title, language string, watched bool) (model.Movie, error) {
	l := r.listFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.movies {
		if l.movies[i].ID == movieID {
			l.movies[i].Title = title
			l.movies[i].Language = language
			l.movies[i].Watched = watched
			return l.movies[i], nil
		}
	}
	return model.Movie{}, ErrMovieNotFound
}

// Patch 只更新给出的字段，空 patch 是合法的 no-op
func (r *WatchlistRepository) Patch(userID, movieID int, patch MoviePatch) (model.Movie, error) {
	l := r.listFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.movies {
		if l.movies[i].ID == movieID {
			if patch.Title != nil {
				l.movies[i].Title = *patch.Title
			}
			if patch.Language != nil {
				l.movies[i].Language = *patch.Language
			}
			if patch.Watched != nil {
				l.movies[i].Watched = *patch.Watched
			}
			return l.movies[i], nil
		}
	}
	return model.Movie{}, ErrMovieNotFound
}

// Remove 删除条目，后续条目前移，插入顺序不受影响
func (r *WatchlistRepository) Remove(userID, movieID int) error {
	l := r.listFor(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.movies {
		if l.movies[i].ID == movieID {
			l.movies = append(l.movies[:i], l.movies[i+1:]...)
			return nil
		}
	}
	return ErrMovieNotFound
}
