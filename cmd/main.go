package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"embedchat-go-server/api/controller"
	"embedchat-go-server/api/route"
	"embedchat-go-server/bootstrap"
	"embedchat-go-server/repository"
	"embedchat-go-server/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("[Server] EmbedChat Sync Server 启动中...")

	// 加载环境变量
	env := bootstrap.LoadEnv()

	// 初始化 WorkOS 客户端
	idp := bootstrap.NewWorkOS(env.WorkOSAPIKey)

	// 连接数据库
	db := bootstrap.NewDatabase(env.DatabaseURL)

	// 依赖注入 - Repository 层
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewWebhookEventRepository(db)

	// 依赖注入 - UseCase 层
	webhookUseCase := usecase.NewWebhookUseCase(userRepo, idp)

	// 依赖注入 - Controller 层
	webhookController := controller.NewWebhookController(webhookUseCase, eventRepo, env.WebhookSecret)

	// 配置 Gin 路由
	router := gin.Default()

	// CORS 配置（Webhook 是服务端到服务端调用，这里只为运维端点放行内部来源）
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "WorkOS-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// 设置路由
	route.Setup(router, &route.Dependencies{
		WebhookController: webhookController,
	})

	// 启动 HTTP 服务
	srv := &http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[Server] 服务已启动: http://localhost:%s", env.Port)
		log.Printf("[Server] API 端点:")
		log.Printf("   GET  /health                  - 健康检查")
		log.Printf("   POST /webhook/workos          - WorkOS Webhook")
		log.Printf("   GET  /internal/webhook-events - 最近投递记录")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] 服务启动失败: %v", err)
		}
	}()

	// 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] 收到停机信号，正在优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] 服务强制关闭: %v", err)
	}

	log.Println("[Server] 服务已安全停止")
}
