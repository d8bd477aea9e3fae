package health

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deaduchiha/api-nikode/pkg/response"
)

// Counter 是健康检查对各实体仓库的最小依赖。
type Counter interface {
	Count() int
}

// Handler 汇报进程存活状态和各内存目录的当前条目数。
type Handler struct {
	startedAt  time.Time
	characters Counter
	users      Counter
	comments   Counter
}

// NewHandler 创建健康检查处理器。
func NewHandler(characters, users, comments Counter) *Handler {
	return &Handler{
		startedAt:  time.Now(),
		characters: characters,
		users:      users,
		comments:   comments,
	}
}

// Status 处理 GET /api/health
func (h *Handler) Status(c *gin.Context) {
	response.OK(c, "Service is healthy", gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"counts": gin.H{
			"characters": h.characters.Count(),
			"users":      h.users.Count(),
			"comments":   h.comments.Count(),
		},
	})
}
