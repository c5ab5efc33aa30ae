package controller

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"embedchat-go-server/domain/entity"
	"embedchat-go-server/domain/event"
	domainRepo "embedchat-go-server/domain/repository"
	"embedchat-go-server/usecase"

	"github.com/gin-gonic/gin"
	"github.com/workos/workos-go/v4/pkg/webhooks"
	"gorm.io/datatypes"
)

// WebhookController 处理 WorkOS Webhook 回调
type WebhookController struct {
	webhookUseCase *usecase.WebhookUseCase
	eventRepo      domainRepo.WebhookEventRepository
	verifier       *webhooks.Client // secret 未配置时为 nil（仅限开发环境）
}

// NewWebhookController 构造函数
func NewWebhookController(uc *usecase.WebhookUseCase, eventRepo domainRepo.WebhookEventRepository, webhookSecret string) *WebhookController {
	wc := &WebhookController{webhookUseCase: uc, eventRepo: eventRepo}
	if webhookSecret != "" {
		wc.verifier = webhooks.NewClient(webhookSecret)
	}
	return wc
}

// HandleWorkOSWebhook 处理 WorkOS Webhook 回调
// POST /webhook/workos
// 处理 user.created, user.deleted 事件
//
// 响应码策略：业务层面的失败一律返回 200——这些错误由我们自己负责
// （日志 + 审计表 + 人工重放），不希望 WorkOS 对它们做重试轰炸；
// 非 200 只留给验签失败（401）和请求体格式问题（400）
func (wc *WebhookController) HandleWorkOSWebhook(c *gin.Context) {
	// 1. 读取请求体
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[Webhook] ❌ 读取请求体失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取请求体"})
		return
	}

	// 2. 验证 Webhook 签名（WorkOS-Signature 头）
	if wc.verifier != nil {
		signature := c.GetHeader("WorkOS-Signature")
		if signature == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing signature"})
			return
		}
		if _, err := wc.verifier.ValidatePayload(signature, string(body)); err != nil {
			log.Printf("[Webhook] ❌ 签名验证失败: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
			return
		}
	} else {
		log.Println("[Webhook] ⚠️ 未配置 WORKOS_WEBHOOK_SECRET，跳过签名验证（仅限开发环境）")
	}

	// 3. 解析并收窄事件
	evt, err := event.Parse(body)
	if err != nil {
		log.Printf("[Webhook] ❌ 解析 Webhook 失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 JSON 格式"})
		return
	}

	log.Printf("[Webhook] 📥 收到事件: %s (%s)", evt.Type, evt.ID)

	// 4. 先落审计记录，处理完成后写终态
	auditID := wc.recordDelivery(evt, body)

	// 5. 交给对账层处理
	result, err := wc.webhookUseCase.ProcessWebhookEvent(c.Request.Context(), evt)
	if err != nil {
		log.Printf("[Webhook] ❌ 事件处理失败: %v", err)
		wc.finishDelivery(auditID, entity.WebhookStatusFailed, err.Error())
		c.JSON(http.StatusOK, gin.H{"error": "Processing failed"})
		return
	}

	wc.finishDelivery(auditID, entity.WebhookStatusProcessed, result.Message)
	c.JSON(http.StatusOK, gin.H{
		"success":   result.Success,
		"message":   result.Message,
		"eventId":   evt.ID,
		"eventType": string(evt.Type),
	})
}

// ListWebhookEvents 最近投递记录（排查用）
// GET /internal/webhook-events?limit=50
func (wc *WebhookController) ListWebhookEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}

	events, err := wc.eventRepo.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// recordDelivery 审计落库（尽力而为：失败只记日志，不影响事件处理）
func (wc *WebhookController) recordDelivery(evt *event.Event, body []byte) string {
	record := &entity.WebhookEvent{
		EventID:    evt.ID,
		EventType:  string(evt.Type),
		Payload:    datatypes.JSON(body),
		Status:     entity.WebhookStatusReceived,
		ReceivedAt: time.Now(),
	}
	if err := wc.eventRepo.Create(record); err != nil {
		log.Printf("[Webhook] ⚠️ 审计记录写入失败: %v", err)
		return ""
	}
	return record.ID
}

// finishDelivery 写审计终态
func (wc *WebhookController) finishDelivery(auditID, status, message string) {
	if auditID == "" {
		return
	}
	if err := wc.eventRepo.UpdateStatus(auditID, status, message); err != nil {
		log.Printf("[Webhook] ⚠️ 审计终态写入失败: %v", err)
	}
}
