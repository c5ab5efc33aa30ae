package bootstrap

import (
	"log"

	"embedchat-go-server/domain/provider"
	"embedchat-go-server/internal/workos"
)

// NewWorkOS 初始化 WorkOS 客户端（存在性检查用）
func NewWorkOS(apiKey string) provider.IdentityProvider {
	if apiKey == "" {
		log.Fatal("未找到 WORKOS_API_KEY")
	}
	client := workos.NewClient(apiKey)

	log.Println("WorkOS 客户端初始化成功")
	return client
}
