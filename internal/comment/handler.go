package comment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deaduchiha/api-nikode/pkg/response"
)

// Handler 持有评论模块的所有gin处理器。
type Handler struct {
	service *Service
}

// NewHandler 创建评论处理器。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List 处理 GET /api/comments
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid query parameters")
		return
	}

	page, pagination := h.service.List(q)
	response.OKList(c, fmt.Sprintf("Successfully retrieved %d comments", len(page)), page, pagination)
}

// Create 处理 POST /api/comments
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.KindValidationError, "Invalid comment data")
		return
	}

	cm, err := h.service.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCharacterNotFound):
			response.Fail(c, http.StatusNotFound, response.KindNotFound, "Character not found")
		case errors.Is(err, ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, response.KindNotFound, "User not found")
		case errors.Is(err, ErrDuplicatePair):
			response.Fail(c, http.StatusConflict, response.KindConflict, "User has already commented on this character")
		default:
			response.Fail(c, http.StatusInternalServerError, response.KindInternalError, "Internal server error")
		}
		return
	}
	response.Created(c, "Comment created successfully", cm)
}
