package workos

import (
	"context"
	"errors"
	"net/http"

	"embedchat-go-server/domain/provider"

	"github.com/workos/workos-go/v4/pkg/usermanagement"
	"github.com/workos/workos-go/v4/pkg/workos_errors"
)

// Client 封装 WorkOS User Management API，实现 provider.IdentityProvider
type Client struct {
	um *usermanagement.Client
}

// NewClient 构造函数
func NewClient(apiKey string) *Client {
	return &Client{um: usermanagement.NewClient(apiKey)}
}

// CheckUser 调 WorkOS API 查询用户当前是否存在
// ⚠️ 必须区分 404 与其他失败：只有 HTTP 404 才是权威的"不存在"，
// 网络/认证/限流错误一律报 PresenceUnknown，由调用方按策略处理
func (c *Client) CheckUser(ctx context.Context, workosID string) (provider.Presence, error) {
	_, err := c.um.GetUser(ctx, usermanagement.GetUserOpts{User: workosID})
	if err == nil {
		return provider.PresenceExists, nil
	}

	var httpErr workos_errors.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
		return provider.PresenceAbsent, nil
	}
	return provider.PresenceUnknown, err
}
