package user

import "github.com/deaduchiha/api-nikode/pkg/query"

// User 是用户目录中的一条完整记录。
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RecordID 实现memstore.Record。
func (u User) RecordID() string { return u.ID }

// CreateRequest 是创建用户的请求体。
// role缺省为user，isActive缺省为true。
type CreateRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
	Role     string `json:"role" binding:"omitempty,oneof=user moderator admin"`
	IsActive *bool  `json:"isActive"`
}

// UpdateRequest 是部分更新的请求体。
type UpdateRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Avatar   *string `json:"avatar" binding:"omitempty,url"`
	Role     *string `json:"role" binding:"omitempty,oneof=user moderator admin"`
	IsActive *bool   `json:"isActive"`
}

// ListQuery 是用户列表端点的查询参数。
// active接受 true/false/1/0 四种写法，服务层归一化为布尔值。
type ListQuery struct {
	query.PageParams
	Q         string `form:"q"`
	Role      string `form:"role" binding:"omitempty,oneof=user moderator admin"`
	Active    string `form:"active" binding:"omitempty,oneof=true false 1 0"`
	SortBy    string `form:"sortBy,default=username" binding:"oneof=username email role createdAt"`
	SortOrder string `form:"sortOrder,default=asc" binding:"oneof=asc desc"`
}

// ActiveFilter 把active参数归一化为布尔过滤值。
// 第二个返回值表示过滤是否激活。
func (q ListQuery) ActiveFilter() (value bool, set bool) {
	switch q.Active {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}
