package bootstrap

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Env 环境变量配置结构
type Env struct {
	DatabaseURL   string // PostgreSQL 连接字符串
	WorkOSAPIKey  string // WorkOS API 密钥（存在性检查用）
	WebhookSecret string // WorkOS Webhook 签名密钥
	Port          string // 服务端口
}

// LoadEnv 加载环境变量
// 开发环境从 .env 文件加载，生产环境从系统环境变量读取
func LoadEnv() *Env {
	// 尝试加载 .env 文件（生产环境可能没有）
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env 文件未找到，将使用系统环境变量")
	}

	env := &Env{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		WorkOSAPIKey:  os.Getenv("WORKOS_API_KEY"),
		WebhookSecret: os.Getenv("WORKOS_WEBHOOK_SECRET"),
		Port:          os.Getenv("PORT"),
	}

	// 默认端口
	if env.Port == "" {
		env.Port = "8080"
	}

	// 必需变量检查
	if env.DatabaseURL == "" {
		log.Fatal("❌ 缺少必需环境变量: DATABASE_URL")
	}
	if env.WorkOSAPIKey == "" {
		log.Fatal("❌ 缺少必需环境变量: WORKOS_API_KEY")
	}
	if env.WebhookSecret == "" {
		log.Println("⚠️ 未配置 WORKOS_WEBHOOK_SECRET，Webhook 将跳过签名验证（仅限开发环境）")
	}

	log.Printf("✅ 环境变量加载完成, 端口: %s", env.Port)
	return env
}
