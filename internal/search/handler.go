package search

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deaduchiha/api-nikode/internal/auth"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

// Handler 持有搜索模块的gin处理器。
type Handler struct {
	service *Service
}

// NewHandler 创建搜索处理器。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search 处理 GET /api/search
func (h *Handler) Search(c *gin.Context) {
	var q Query
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid query parameters")
		return
	}

	set := h.service.Search(q, auth.CurrentRole(c))
	response.OK(c, fmt.Sprintf("Found %d results for %q", set.TotalResults, set.Query), set)
}
