package errors

import "errors"

// ================= 业务领域错误定义 =================
// 所有业务逻辑相关的错误统一在此定义，避免跨包重复定义

// ErrUserNotFound 用户不存在错误
// 当尝试操作一个不存在于数据库中的用户时返回此错误
var ErrUserNotFound = errors.New("user not found in database")

// ErrProviderUnavailable 身份提供方状态未知错误
// 存在性检查因网络/认证/限流等原因失败（区别于明确的 404），
// 上游真实状态不明，删除路径必须 fail-closed 并上抛此错误
var ErrProviderUnavailable = errors.New("identity provider unavailable: upstream presence unknown")
