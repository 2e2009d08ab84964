package config

import "time"

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		RoutePrefix           string // 管理接口的路由前缀
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串，留空则不使用缓存与分布式锁
	}
	Storage struct {
		UploadDir string // 封面图片的上传目录
	}
	Security struct {
		SignatureSecretKey string        // 签名密钥，用于签发会话 JWT ，更新会导致旧有会话失效
		SessionDuration    time.Duration // 会话有效期
	}
	Bootstrap struct {
		AdminEmail    string // 没有任何用户时创建的初始管理员
		AdminPassword string
	}
}
