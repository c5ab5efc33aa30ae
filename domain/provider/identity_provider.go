package provider

import "context"

// Presence 上游用户存在性检查的三态结果
// 把"确认不存在"（404）与"检查失败"严格分开：
// 把网络错误当成不存在，会在提供方抖动时误删合法用户
type Presence int

const (
	PresenceUnknown Presence = iota // 检查失败，上游状态不明
	PresenceExists                  // 用户当前存在于 WorkOS
	PresenceAbsent                  // WorkOS 明确返回用户不存在
)

func (p Presence) String() string {
	switch p {
	case PresenceExists:
		return "exists"
	case PresenceAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// IdentityProvider 身份提供方客户端接口
// 对账处理函数用它在处理时刻询问上游的权威状态，而不是信任事件到达顺序
type IdentityProvider interface {
	// CheckUser 查询 WorkOS 用户当前是否存在
	// 成功 → PresenceExists；404 → PresenceAbsent；
	// 其他失败 → PresenceUnknown + 底层错误，由调用方决定 fail-open / fail-closed
	CheckUser(ctx context.Context, workosID string) (Presence, error)
}
