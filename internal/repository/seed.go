package repository

// DefaultSeedUsers 内置种子用户
// 仅用于演示部署，正式环境应替换为真实身份目录
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{ID: 1, Username: "alice", Password: "alice-secret-1"},
		{ID: 2, Username: "bob", Password: "bob-secret-2"},
	}
}
