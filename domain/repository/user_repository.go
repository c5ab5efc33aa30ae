package repository

import "embedchat-go-server/domain/entity"

// UserRepository 用户同步表数据仓库接口
type UserRepository interface {
	// GetByWorkOSID 根据 WorkOS user_id 获取用户
	// 不存在时返回 (nil, nil)，调用方需处理
	GetByWorkOSID(workosID string) (*entity.User, error)

	// Upsert = Update + Insert（存在则更新，不存在则创建）
	// 以 workos_id 唯一约束为准的单条原子语句，
	// 并发重复投递靠它保证"同一 workos_id 至多一行"
	Upsert(user *entity.User) error

	// DeleteByWorkOSID 删除本地用户行
	// 行不存在时是 no-op 而不是错误（支持重试与乱序投递）
	DeleteByWorkOSID(workosID string) error
}
