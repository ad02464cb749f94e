package model

// Movie 片单条目
// ID 仅在所属用户的片单内唯一，由仓库按用户单调自增生成
type Movie struct {
	ID       int    `json:"id"`
	Title    string `json:"movietitle"`
	Language string `json:"language"`
	Watched  bool   `json:"watched"`
}
