package model

// User 用户模型
// 启动时由种子数据填充，进程生命周期内成员固定，运行期不增删
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
