package handlers

import (
	"article-admin/app/server/backend"
	"article-admin/app/server/lock"
	"article-admin/app/server/uploads"
	"go.uber.org/zap"
)

type App struct {
	l       *zap.Logger     // 日志
	svc     backend.Service // 认证与持久化服务
	uploads *uploads.Store  // 封面上传目录
	locker  lock.Locker     // 文章级别的互斥，避免并发替换/删除封面时互相覆盖
}

func NewApp(l *zap.Logger, svc backend.Service, store *uploads.Store, locker lock.Locker) *App {
	return &App{
		l:       l,
		svc:     svc,
		uploads: store,
		locker:  locker,
	}
}
