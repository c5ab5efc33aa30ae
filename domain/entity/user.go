package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User WorkOS 用户同步表（本地投影）
// WorkOS 是唯一事实来源，本表只通过 Webhook 事件对账写入
type User struct {
	ID       string  `gorm:"primaryKey;size:36"`                           // 内部 UUID 主键，入库时生成
	WorkOSID string  `gorm:"column:workos_id;uniqueIndex;size:64;not null"` // WorkOS user_id，事件流与本地记录的关联键
	Email    string  `gorm:"size:255"`
	Password *string `gorm:"size:255"` // WorkOS 托管用户恒为 NULL，本地口令对这批用户不生效

	// ⚠️ 时间戳由事件决定，不交给 GORM 自动填充：
	// UpdatedAt 必须是最后一次事件的有效时间，而非写库的墙钟时间
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// BeforeCreate 生成内部 UUID 主键
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
