package event

import (
	"encoding/json"
	"errors"
	"time"
)

// Type Webhook 事件类型（判别字段）
type Type string

const (
	TypeUserCreated Type = "user.created"
	TypeUserDeleted Type = "user.deleted"
)

// ErrInvalidEvent 事件缺少必需字段（id / event）
var ErrInvalidEvent = errors.New("invalid webhook event: missing id or event type")

// UserData 事件携带的 WorkOS 用户属性
// 只保留对账需要的字段，其余提供方字段在边界丢弃
type UserData struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Event 一次 Webhook 投递（已在边界收窄的类型化事件）
type Event struct {
	ID        string    // WorkOS 事件 ID（重试投递时可能重复）
	Type      Type      // 事件类型
	CreatedAt time.Time // 事件时间戳
	Data      UserData  // 受影响用户；未知类型时为零值
}

// envelope 原始 JSON 信封，data 延迟解析
type envelope struct {
	ID        string          `json:"id"`
	Event     string          `json:"event"`
	CreatedAt time.Time       `json:"createdAt"`
	Data      json.RawMessage `json:"data"`
}

// Parse 把入站 JSON 收窄为类型化事件
// 入站 body 当作不可信数据处理：
// - id / event 缺失 → ErrInvalidEvent
// - 未知事件类型不是错误：保留原始类型字符串，由调度器决定忽略，
//   data 不强行按用户结构解析
func Parse(body []byte) (*Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.ID == "" || env.Event == "" {
		return nil, ErrInvalidEvent
	}

	evt := &Event{
		ID:        env.ID,
		Type:      Type(env.Event),
		CreatedAt: env.CreatedAt,
	}

	switch evt.Type {
	case TypeUserCreated, TypeUserDeleted:
		if err := json.Unmarshal(env.Data, &evt.Data); err != nil {
			return nil, err
		}
	}
	return evt, nil
}

// EffectiveTimestamp 事件的有效时间
// 优先取用户数据里的 updatedAt（上游状态的版本），缺失时退回事件时间戳
func (e *Event) EffectiveTimestamp() time.Time {
	if !e.Data.UpdatedAt.IsZero() {
		return e.Data.UpdatedAt
	}
	return e.CreatedAt
}
