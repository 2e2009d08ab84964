package main

import (
	"article-admin/app/server/apidocs"
	"article-admin/app/server/backend"
	"article-admin/app/server/handlers"
	"article-admin/app/server/inits"
	"article-admin/app/server/jwt"
	"article-admin/app/server/lock"
	"article-admin/app/server/uploads"
	"context"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接（可选）
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化上传目录
	store, err := uploads.NewStore(cfg.Storage.UploadDir)
	if err != nil {
		l.Fatal("error initializing upload directory", zap.Error(err))
	}

	// 有 Redis 时使用分布式锁，否则只在本进程内互斥
	var locker lock.Locker
	if rdb != nil {
		locker = lock.NewRedis(rdb, l)
	} else {
		l.Warn("redis is not configured, admin cache disabled and article locks are process local")
		locker = lock.NewLocal()
	}

	// 准备 handler app
	svc := backend.NewPostgres(l, db, rdb, j, cfg.Security.SessionDuration)
	handlerApp := handlers.NewApp(l, svc, store, locker)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlerApp.Register(e, cfg.System.RoutePrefix)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if swgJson, err := apidocs.SpecJSON(context.Background(), cfg.System.RoutePrefix); err != nil {
			l.Error("error initializing admin swagger", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc(cfg.System.RoutePrefix, swgJson, apidocs.WithTitle("Article Admin API")))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
