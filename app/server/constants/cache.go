package constants

import "time"

const (
	CacheKeyAdminInfo   = "articles:admin:info:%s"   // %s -> identity id
	CacheKeyArticleLock = "articles:article:lock:%d" // %d -> article id
)

const (
	CacheExpireAdminInfo = 10 * time.Minute
	LockExpireArticle    = 30 * time.Second // 持有者崩溃后锁自动释放
	LockRetryInterval    = 50 * time.Millisecond
)
