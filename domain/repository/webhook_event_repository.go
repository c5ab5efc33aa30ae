package repository

import "embedchat-go-server/domain/entity"

// WebhookEventRepository Webhook 投递审计仓库接口
type WebhookEventRepository interface {
	// Create 落一条投递记录（验签之后、处理之前）
	Create(evt *entity.WebhookEvent) error

	// UpdateStatus 处理完成后写终态与结果摘要
	UpdateStatus(id, status, message string) error

	// ListRecent 按接收时间倒序返回最近的投递记录，供排查使用
	ListRecent(limit int) ([]entity.WebhookEvent, error)
}
