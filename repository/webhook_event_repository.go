package repository

import (
	"embedchat-go-server/domain/entity"
	domainRepo "embedchat-go-server/domain/repository"

	"gorm.io/gorm"
)

// webhookEventRepository GORM 实现 WebhookEventRepository 接口
type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository 构造函数
func NewWebhookEventRepository(db *gorm.DB) domainRepo.WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

// Create 落一条投递审计记录
func (r *webhookEventRepository) Create(evt *entity.WebhookEvent) error {
	return r.db.Create(evt).Error
}

// UpdateStatus 写处理终态与结果摘要
func (r *webhookEventRepository) UpdateStatus(id, status, message string) error {
	return r.db.Model(&entity.WebhookEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  status,
			"message": message,
		}).Error
}

// ListRecent 按接收时间倒序取最近 limit 条投递记录
func (r *webhookEventRepository) ListRecent(limit int) ([]entity.WebhookEvent, error) {
	var events []entity.WebhookEvent
	err := r.db.Order("received_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
