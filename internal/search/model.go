package search

import "github.com/deaduchiha/api-nikode/pkg/query"

// Query 是跨实体搜索端点的查询参数。
// q是必填项；relevance排序总是按得分降序，与sortOrder无关。
type Query struct {
	Q    string `form:"q" binding:"required,min=1"`
	Type string `form:"type,default=all" binding:"oneof=all characters users comments"`
	query.PageParams
	SortBy    string `form:"sortBy,default=relevance" binding:"oneof=relevance createdAt updatedAt"`
	SortOrder string `form:"sortOrder,default=desc" binding:"oneof=asc desc"`
}

// TypeCounts 是按实体类型统计的命中数，在分页前计算。
type TypeCounts struct {
	Character int `json:"character"`
	User      int `json:"user"`
	Comment   int `json:"comment"`
}

// Facets 包装搜索结果的分面统计。
type Facets struct {
	Types TypeCounts `json:"types"`
}

// ResultSet 是搜索端点的响应数据。
// 每个结果是展平的实体字段加上type和relevanceScore。
type ResultSet struct {
	Query        string                   `json:"query"`
	TotalResults int                      `json:"totalResults"`
	Results      []map[string]interface{} `json:"results"`
	Facets       Facets                   `json:"facets"`
}
