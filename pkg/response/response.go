package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- 错误类型常量 ---
// 所有API错误都必须映射到这些固定的错误类型之一

const (
	KindValidationError = "VALIDATION_ERROR"
	KindUnauthorized    = "UNAUTHORIZED"
	KindForbidden       = "FORBIDDEN"
	KindNotFound        = "NOT_FOUND"
	KindConflict        = "CONFLICT"
	KindInternalError   = "INTERNAL_ERROR"
)

// Pagination 定义了分页元数据，随列表响应一起返回。
// 它总是基于过滤后、切片前的总数计算，而不是被存储。
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination 根据页码、每页数量和总数计算分页元数据。
func NewPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Envelope 是所有成功响应的统一JSON外壳。
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorEnvelope 是所有失败响应的统一JSON外壳。
type ErrorEnvelope struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// OK 以200状态码返回成功外壳。
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// OKList 以200状态码返回带分页元数据的成功外壳。
func OKList(c *gin.Context, message string, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Pagination: &pagination})
}

// Created 以201状态码返回成功外壳，用于资源创建。
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail 返回错误外壳并中止请求链，保证中间件之后的处理器不再执行。
func Fail(c *gin.Context, statusCode int, kind string, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorEnvelope{
		Success:    false,
		Error:      kind,
		Message:    message,
		StatusCode: statusCode,
	})
}
