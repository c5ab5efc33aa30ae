package usecase

import (
	"context"
	"fmt"
	"log"

	"embedchat-go-server/domain/entity"
	"embedchat-go-server/domain/event"
	domainErrors "embedchat-go-server/domain/errors"
	"embedchat-go-server/domain/provider"
	"embedchat-go-server/domain/repository"
)

// ProcessResult 事件处理结果，HTTP 边界据此组装响应体
type ProcessResult struct {
	Success bool
	Message string
}

// handlerFunc 某一事件类型的对账处理函数
type handlerFunc func(ctx context.Context, evt *event.Event) error

// WebhookUseCase WorkOS Webhook 事件对账层
// ✅ 采用"上游存在性门控"策略解决乱序问题：
// - 事件只说明"发生过什么"，WorkOS API 才是"现在是什么"的权威
// - 每次处理都以处理时刻的上游真实状态做判断，天然容忍乱序与重复投递
// - 不做应用层加锁，幂等靠 upsert / 删除不存在行为 no-op 保证
type WebhookUseCase struct {
	userRepo repository.UserRepository
	idp      provider.IdentityProvider
	handlers map[event.Type]handlerFunc
}

// NewWebhookUseCase 构造函数，依赖注入
func NewWebhookUseCase(userRepo repository.UserRepository, idp provider.IdentityProvider) *WebhookUseCase {
	uc := &WebhookUseCase{userRepo: userRepo, idp: idp}

	// 静态注册表：事件类型 → 处理函数
	uc.handlers = map[event.Type]handlerFunc{
		event.TypeUserCreated: uc.handleUserCreated,
		event.TypeUserDeleted: uc.handleUserDeleted,
	}
	return uc
}

// ProcessWebhookEvent 调度入口
// 未知类型不是错误：返回 success，提供方不应为此重试；
// 处理函数失败则带上下文包装上抛，由 HTTP 边界决定响应码——
// 这是刻意的不对称：未知类型是正常 no-op，处理失败是异常
func (uc *WebhookUseCase) ProcessWebhookEvent(ctx context.Context, evt *event.Event) (*ProcessResult, error) {
	handler, ok := uc.handlers[evt.Type]
	if !ok {
		msg := fmt.Sprintf("No handler found for event type: %s", evt.Type)
		log.Printf("[Webhook] ℹ️ %s", msg)
		return &ProcessResult{Success: true, Message: msg}, nil
	}

	if err := handler(ctx, evt); err != nil {
		return nil, fmt.Errorf("failed to process event %s: %w", evt.Type, err)
	}
	return &ProcessResult{
		Success: true,
		Message: fmt.Sprintf("Successfully processed %s", evt.Type),
	}, nil
}

// handleUserCreated 处理 user.created：存在性门控 upsert
// 幂等：重复事件 upsert 出同一行
// 乱序：上游已删则跳过——删除是权威结果，晚到的创建不能复活用户
// Unknown 时 fail-open：检查失败不能把合法用户静默丢掉，照常落库
func (uc *WebhookUseCase) handleUserCreated(ctx context.Context, evt *event.Event) error {
	presence, err := uc.idp.CheckUser(ctx, evt.Data.ID)
	switch presence {
	case provider.PresenceAbsent:
		log.Printf("[Webhook] ℹ️ 跳过 user.created (%s): 用户已在 WorkOS 删除", evt.Data.Email)
		return nil
	case provider.PresenceUnknown:
		log.Printf("[Webhook] ⚠️ WorkOS 存在性检查失败，按存在处理: %v", err)
	}

	user := &entity.User{
		WorkOSID:  evt.Data.ID,
		Email:     evt.Data.Email,
		Password:  nil, // WorkOS 托管用户没有本地口令
		CreatedAt: evt.Data.CreatedAt,
		// UpdatedAt 记事件的有效时间而非写库时间
		UpdatedAt: evt.EffectiveTimestamp(),
	}
	if err := uc.userRepo.Upsert(user); err != nil {
		return err
	}

	log.Printf("[Webhook] ✅ 用户同步成功: %s (%s)", evt.Data.ID, evt.Data.Email)
	return nil
}

// handleUserDeleted 处理 user.deleted：存在性门控删除
// 幂等：删除不存在的行是 no-op
// 乱序：上游仍存在说明删除事件已过期（用户又被重建），跳过
// Unknown 时 fail-closed：状态不明绝不删本地数据，上抛让投递进入失败态
func (uc *WebhookUseCase) handleUserDeleted(ctx context.Context, evt *event.Event) error {
	presence, err := uc.idp.CheckUser(ctx, evt.Data.ID)
	switch presence {
	case provider.PresenceExists:
		log.Printf("[Webhook] ℹ️ 跳过 user.deleted (%s): 用户仍存在于 WorkOS", evt.Data.Email)
		return nil
	case provider.PresenceUnknown:
		return fmt.Errorf("%w: %v", domainErrors.ErrProviderUnavailable, err)
	}

	if err := uc.userRepo.DeleteByWorkOSID(evt.Data.ID); err != nil {
		return err
	}

	log.Printf("[Webhook] ✅ 用户已删除: %s (%s)", evt.Data.ID, evt.Data.Email)
	return nil
}
