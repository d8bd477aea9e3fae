package character

import "github.com/deaduchiha/api-nikode/pkg/query"

// Character 是角色目录中的一条完整记录。
// 时间戳是ISO-8601字符串，与原始线格式保持一致。
type Character struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Anime        string   `json:"anime"`
	Power        int      `json:"power"`
	Intelligence int      `json:"intelligence"`
	Speed        int      `json:"speed"`
	Strength     int      `json:"strength"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Abilities    []string `json:"abilities"`
	Personality  string   `json:"personality"`
	Birthday     string   `json:"birthday"`
	Height       string   `json:"height"`
	Weight       string   `json:"weight"`
	HairColor    string   `json:"hairColor"`
	EyeColor     string   `json:"eyeColor"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// RecordID 实现memstore.Record。
func (c Character) RecordID() string { return c.ID }

// CreateRequest 是创建角色的请求体。
// ID和时间戳由服务端生成，不接受客户端提供。
// 数值属性使用指针，否则合法的0会被required规则误杀。
type CreateRequest struct {
	Name         string   `json:"name" binding:"required"`
	Anime        string   `json:"anime" binding:"required"`
	Power        *int     `json:"power" binding:"required,min=0,max=100"`
	Intelligence *int     `json:"intelligence" binding:"required,min=0,max=100"`
	Speed        *int     `json:"speed" binding:"required,min=0,max=100"`
	Strength     *int     `json:"strength" binding:"required,min=0,max=100"`
	Image        string   `json:"image" binding:"required,url"`
	Description  string   `json:"description" binding:"required,min=10"`
	Abilities    []string `json:"abilities" binding:"required"`
	Personality  string   `json:"personality"`
	Birthday     string   `json:"birthday"`
	Height       string   `json:"height"`
	Weight       string   `json:"weight"`
	HairColor    string   `json:"hairColor" binding:"required"`
	EyeColor     string   `json:"eyeColor" binding:"required"`
}

// UpdateRequest 是部分更新的请求体：只有提供的字段会被合并。
type UpdateRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=1"`
	Anime        *string   `json:"anime" binding:"omitempty,min=1"`
	Power        *int      `json:"power" binding:"omitempty,min=0,max=100"`
	Intelligence *int      `json:"intelligence" binding:"omitempty,min=0,max=100"`
	Speed        *int      `json:"speed" binding:"omitempty,min=0,max=100"`
	Strength     *int      `json:"strength" binding:"omitempty,min=0,max=100"`
	Image        *string   `json:"image" binding:"omitempty,url"`
	Description  *string   `json:"description" binding:"omitempty,min=10"`
	Abilities    *[]string `json:"abilities"`
	Personality  *string   `json:"personality"`
	Birthday     *string   `json:"birthday"`
	Height       *string   `json:"height"`
	Weight       *string   `json:"weight"`
	HairColor    *string   `json:"hairColor"`
	EyeColor     *string   `json:"eyeColor"`
}

// ListQuery 是角色列表端点的查询参数。
type ListQuery struct {
	query.PageParams
	Q         string `form:"q"`
	Anime     string `form:"anime"`
	MinPower  *int   `form:"minPower" binding:"omitempty,min=0,max=100"`
	MaxPower  *int   `form:"maxPower" binding:"omitempty,min=0,max=100"`
	SortBy    string `form:"sortBy,default=name" binding:"oneof=name power intelligence speed strength createdAt"`
	SortOrder string `form:"sortOrder,default=asc" binding:"oneof=asc desc"`
}
