package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Webhook 投递终态
const (
	WebhookStatusReceived  = "received"  // 已验签落库，尚未处理完
	WebhookStatusProcessed = "processed" // 处理成功（含未知类型、陈旧事件等正常 no-op）
	WebhookStatusFailed    = "failed"    // 处理失败，需人工排查或重放
)

// WebhookEvent Webhook 投递审计表
// 只做可观测与事后重放，不参与对账判断；
// WorkOS 重试时 event_id 会重复出现，因此不设唯一约束
type WebhookEvent struct {
	ID         string         `gorm:"primaryKey;size:36"`
	EventID    string         `gorm:"index;size:64"` // WorkOS 事件 ID
	EventType  string         `gorm:"size:64"`
	Payload    datatypes.JSON `gorm:"type:jsonb"` // 原始请求体
	Status     string         `gorm:"size:16"`
	Message    string         `gorm:"size:512"` // 处理结果或错误摘要
	ReceivedAt time.Time
}

// BeforeCreate 生成内部 UUID 主键
func (e *WebhookEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
