package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/deaduchiha/api-nikode/api"
	"github.com/deaduchiha/api-nikode/internal/auth"
	"github.com/deaduchiha/api-nikode/internal/character"
	"github.com/deaduchiha/api-nikode/internal/comment"
	"github.com/deaduchiha/api-nikode/internal/platform/config"
	"github.com/deaduchiha/api-nikode/internal/platform/health"
	"github.com/deaduchiha/api-nikode/internal/platform/shutdown"
	"github.com/deaduchiha/api-nikode/internal/search"
	"github.com/deaduchiha/api-nikode/internal/user"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

func main() {
	// .env 文件是可选的，只在本地开发时使用
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("配置加载失败，无法启动: %v", err))
	}
	gin.SetMode(cfg.Server.Mode)

	// 1. 初始化各模块：仓库 -> 服务 -> 处理器
	characterRepo := character.NewRepository()
	userRepo := user.NewRepository()
	commentRepo := comment.NewRepository()

	characterService := character.NewService(characterRepo)
	userService := user.NewService(userRepo)
	commentService := comment.NewService(commentRepo, characterRepo, userRepo)
	searchService := search.NewService(characterRepo, userRepo, commentRepo)

	resolver := auth.NewStaticResolver(cfg.Auth.APIKeys)

	deps := api.Deps{
		Resolver:   resolver,
		Characters: character.NewHandler(characterService),
		Users:      user.NewHandler(userService),
		Comments:   comment.NewHandler(commentService),
		Search:     search.NewHandler(searchService),
		Health:     health.NewHandler(characterRepo, userRepo, commentRepo),
	}

	// 2. 组装gin引擎：日志、panic恢复、CORS
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.Fail(c, http.StatusInternalServerError, response.KindInternalError, "Internal server error")
	}))
	r.Use(cors.New(buildCorsConfig(cfg.Server.Cors.AllowedOrigins)))

	api.SetupRoutes(r, deps)

	// 3. 启动HTTP服务器并等待停机信号
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	shutdown.ListenForSignalsAndShutdown(server)
}

// buildCorsConfig 把配置的来源列表翻译成gin-contrib/cors的配置。
// 通配符"*"与AllowCredentials互斥，走AllowAllOrigins分支。
func buildCorsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "x-api-key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        24 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}
