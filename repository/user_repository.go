package repository

import (
	"errors"

	"embedchat-go-server/domain/entity"
	domainRepo "embedchat-go-server/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository GORM 实现 UserRepository 接口
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 构造函数
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// GetByWorkOSID 根据 WorkOS user_id 查询用户
func (r *userRepository) GetByWorkOSID(workosID string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("workos_id = ?", workosID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // 返回 nil 表示不存在，调用方需处理
	}
	return &user, err
}

// Upsert 创建或更新用户（WorkOS Webhook 同步使用）
// 使用 PostgreSQL ON CONFLICT 语法实现 upsert
// ⚠️ 单条原子语句：并发投递同一 workos_id 时由数据库保证不出重复行
func (r *userRepository) Upsert(user *entity.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workos_id"}}, // 冲突字段
		DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
	}).Create(user).Error
}

// DeleteByWorkOSID 按 WorkOS user_id 删除本地行
// RowsAffected == 0（行本来就不存在）不是错误
func (r *userRepository) DeleteByWorkOSID(workosID string) error {
	return r.db.Where("workos_id = ?", workosID).Delete(&entity.User{}).Error
}
