package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deaduchiha/api-nikode/pkg/memstore"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

// Handler 持有用户模块的所有gin处理器。
// 角色门槛由路由上的认证中间件负责，这里只处理实体语义。
type Handler struct {
	service *Service
}

// NewHandler 创建用户处理器。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List 处理 GET /api/users
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid query parameters")
		return
	}

	page, pagination := h.service.List(q)
	response.OKList(c, fmt.Sprintf("Successfully retrieved %d users", len(page)), page, pagination)
}

// GetByID 处理 GET /api/users/:id
func (h *Handler) GetByID(c *gin.Context) {
	u, ok := h.service.Get(c.Param("id"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.KindNotFound, "User not found")
		return
	}
	response.OK(c, "User retrieved successfully", u)
}

// Create 处理 POST /api/users
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid user data")
		return
	}

	u, err := h.service.Create(req)
	if err != nil {
		failConflict(c, err)
		return
	}
	response.Created(c, "User created successfully", u)
}

// Update 处理 PUT /api/users/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if !h.service.Exists(id) {
		response.Fail(c, http.StatusNotFound, response.KindNotFound, "User not found")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid user data")
		return
	}

	u, err := h.service.Update(id, req)
	if err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.KindNotFound, "User not found")
			return
		}
		failConflict(c, err)
		return
	}
	response.OK(c, "User updated successfully", u)
}

// Delete 处理 DELETE /api/users/:id
// 目标用户是admin时，无论调用方角色如何都返回403。
func (h *Handler) Delete(c *gin.Context) {
	u, err := h.service.Delete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, memstore.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.KindNotFound, "User not found")
		case errors.Is(err, ErrAdminProtected):
			response.Fail(c, http.StatusForbidden, response.KindForbidden, "Cannot delete admin users")
		default:
			response.Fail(c, http.StatusInternalServerError, response.KindInternalError, "Internal server error")
		}
		return
	}
	response.OK(c, "User deleted successfully", u)
}

// failConflict 把仓库的唯一性冲突映射为带具体提示的409。
func failConflict(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		response.Fail(c, http.StatusConflict, response.KindConflict, "User with this email already exists")
	case errors.Is(err, ErrUsernameTaken):
		response.Fail(c, http.StatusConflict, response.KindConflict, "User with this username already exists")
	default:
		response.Fail(c, http.StatusInternalServerError, response.KindInternalError, "Internal server error")
	}
}
