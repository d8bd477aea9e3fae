package comment

import "github.com/deaduchiha/api-nikode/pkg/query"

// Comment 是一条针对角色的用户评论。
// 每个(characterId, userId)组合至多允许一条评论。
type Comment struct {
	ID          string `json:"id"`
	CharacterID string `json:"characterId"`
	UserID      string `json:"userId"`
	Content     string `json:"content"`
	Rating      *int   `json:"rating,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// RecordID 实现memstore.Record。
func (c Comment) RecordID() string { return c.ID }

// CreateRequest 是创建评论的请求体。
// characterId和userId必须引用已存在的记录，由服务层检查。
type CreateRequest struct {
	CharacterID string `json:"characterId" binding:"required"`
	UserID      string `json:"userId" binding:"required"`
	Content     string `json:"content" binding:"required,min=1,max=500"`
	Rating      *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ListQuery 是评论列表端点的查询参数。
type ListQuery struct {
	query.PageParams
	CharacterID string `form:"characterId"`
	UserID      string `form:"userId"`
	Q           string `form:"q"`
	Rating      *int   `form:"rating" binding:"omitempty,min=1,max=5"`
	SortBy      string `form:"sortBy,default=createdAt" binding:"oneof=createdAt rating"`
	SortOrder   string `form:"sortOrder,default=desc" binding:"oneof=asc desc"`
}
