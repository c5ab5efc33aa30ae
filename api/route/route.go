package route

import (
	"embedchat-go-server/api/controller"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由依赖注入结构
type Dependencies struct {
	WebhookController *controller.WebhookController
}

// Setup 配置所有路由
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- 公开路由 ---

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "embedchat-go-server",
		})
	})

	// WorkOS Webhook（使用签名验证，不走会话认证）
	router.POST("/webhook/workos", deps.WebhookController.HandleWorkOSWebhook)

	// --- 内部运维路由 ---
	// 只在内网暴露，由部署层（网络策略）限制访问
	internal := router.Group("/internal")
	{
		internal.GET("/webhook-events", deps.WebhookController.ListWebhookEvents)
	}
}
