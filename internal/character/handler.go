package character

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deaduchiha/api-nikode/pkg/memstore"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

// Handler 持有角色模块的所有gin处理器。
type Handler struct {
	service *Service
}

// NewHandler 创建角色处理器。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List 处理 GET /api/characters
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid query parameters")
		return
	}

	page, pagination := h.service.List(q)
	response.OKList(c, fmt.Sprintf("Successfully retrieved %d characters", len(page)), page, pagination)
}

// GetByID 处理 GET /api/characters/:id
func (h *Handler) GetByID(c *gin.Context) {
	ch, ok := h.service.Get(c.Param("id"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.KindNotFound, "Character not found")
		return
	}
	response.OK(c, "Character retrieved successfully", ch)
}

// Create 处理 POST /api/characters
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid character data")
		return
	}

	ch, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, memstore.ErrConflict) {
			response.Fail(c, http.StatusConflict, response.KindConflict, "Character with this name already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.KindInternalError, "Internal server error")
		return
	}
	response.Created(c, "Character created successfully", ch)
}

// Update 处理 PUT /api/characters/:id
// 检查顺序与原始行为一致：先404，再校验请求体，最后查名字冲突。
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if !h.service.Exists(id) {
		response.Fail(c, http.StatusNotFound, response.KindNotFound, "Character not found")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid character data")
		return
	}

	ch, err := h.service.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, memstore.ErrConflict):
			response.Fail(c, http.StatusConflict, response.KindConflict, "Character with this name already exists")
		case errors.Is(err, memstore.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.KindNotFound, "Character not found")
		default:
			response.Fail(c, http.StatusInternalServerError, response.KindInternalError, "Internal server error")
		}
		return
	}
	response.OK(c, "Character updated successfully", ch)
}

// Delete 处理 DELETE /api/characters/:id
func (h *Handler) Delete(c *gin.Context) {
	ch, err := h.service.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.KindNotFound, "Character not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.KindInternalError, "Internal server error")
		return
	}
	response.OK(c, "Character deleted successfully", ch)
}
