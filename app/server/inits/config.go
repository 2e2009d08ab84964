package inits

import (
	"article-admin/app/server/config"
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strings"
	"time"
)

func Config() (*config.Config, error) {
	// .env 文件是可选的，环境变量也可能通过其他方式设置
	_ = godotenv.Load()

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if prefix, exist := os.LookupEnv("ROUTE_PREFIX"); !exist {
		cfg.System.RoutePrefix = "/api/admin"
	} else {
		cfg.System.RoutePrefix = "/" + strings.Trim(prefix, "/")
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// Redis 可选
	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if uploadDir, exist := os.LookupEnv("UPLOAD_DIR"); !exist || uploadDir == "" {
		cfg.Storage.UploadDir = "uploads"
	} else {
		cfg.Storage.UploadDir = uploadDir
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if durationStr, exist := os.LookupEnv("SESSION_DURATION"); !exist {
		cfg.Security.SessionDuration = 1 * time.Hour
	} else if duration, err := time.ParseDuration(durationStr); err != nil || duration <= 0 {
		return nil, fmt.Errorf("SESSION_DURATION should be a valid positive duration")
	} else {
		cfg.Security.SessionDuration = duration
	}

	cfg.Bootstrap.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.Bootstrap.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if (cfg.Bootstrap.AdminEmail == "") != (cfg.Bootstrap.AdminPassword == "") {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD should be set together")
	}

	return &cfg, nil
}
