package api

import (
	"github.com/gin-gonic/gin"

	"github.com/deaduchiha/api-nikode/internal/auth"
	"github.com/deaduchiha/api-nikode/internal/character"
	"github.com/deaduchiha/api-nikode/internal/comment"
	"github.com/deaduchiha/api-nikode/internal/platform/health"
	"github.com/deaduchiha/api-nikode/internal/search"
	"github.com/deaduchiha/api-nikode/internal/user"
)

// Deps 汇集路由注册所需的全部处理器和认证解析器。
type Deps struct {
	Resolver   auth.Resolver
	Characters *character.Handler
	Users      *user.Handler
	Comments   *comment.Handler
	Search     *search.Handler
	Health     *health.Handler
}

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, deps Deps) {
	api := router.Group("/api")
	{
		api.GET("/health", deps.Health.Status)

		// 角色目录 /api/characters
		// 读取对外开放，写入按角色分级
		characterRoutes := api.Group("/characters")
		{
			characterRoutes.GET("", auth.Optional(deps.Resolver), deps.Characters.List)
			characterRoutes.GET("/:id", deps.Characters.GetByID)
			characterRoutes.POST("", auth.Required(deps.Resolver), auth.MinimumRole(auth.RoleModerator, "Insufficient permissions to create characters"), deps.Characters.Create)
			characterRoutes.PUT("/:id", auth.Required(deps.Resolver), auth.MinimumRole(auth.RoleModerator, "Insufficient permissions to update characters"), deps.Characters.Update)
			characterRoutes.DELETE("/:id", auth.Required(deps.Resolver), auth.MinimumRole(auth.RoleAdmin, "Insufficient permissions to delete characters"), deps.Characters.Delete)
		}

		// 用户目录 /api/users
		// 整个目录都要求认证；更新仅限admin本尊，降级的moderator不行
		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", auth.Required(deps.Resolver), auth.MinimumRole(auth.RoleModerator, "Insufficient permissions to list users"), deps.Users.List)
			userRoutes.GET("/:id", auth.Required(deps.Resolver), deps.Users.GetByID)
			userRoutes.POST("", auth.Required(deps.Resolver), auth.MinimumRole(auth.RoleAdmin, "Insufficient permissions to create users"), deps.Users.Create)
			userRoutes.PUT("/:id", auth.Required(deps.Resolver), auth.ExactRole(auth.RoleAdmin, "Insufficient permissions to update users"), deps.Users.Update)
			userRoutes.DELETE("/:id", auth.Required(deps.Resolver), auth.MinimumRole(auth.RoleAdmin, "Insufficient permissions to delete users"), deps.Users.Delete)
		}

		// 评论 /api/comments
		commentRoutes := api.Group("/comments")
		{
			commentRoutes.GET("", auth.Optional(deps.Resolver), deps.Comments.List)
			commentRoutes.POST("", auth.Required(deps.Resolver), deps.Comments.Create)
		}

		// 跨实体搜索 /api/search
		// 匿名也能搜，但用户类结果只返回给moderator及以上
		api.GET("/search", auth.Optional(deps.Resolver), deps.Search.Search)
	}
}
