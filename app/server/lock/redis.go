package lock

import (
	"article-admin/app/server/constants"
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"sync"
	"time"
)

// 只有持有者（token 一致）才能释放
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis 在多实例之间共享锁，锁带过期时间，持有者崩溃后自动释放
type Redis struct {
	rdb   *redis.Client
	l     *zap.Logger
	ttl   time.Duration
	retry time.Duration
}

var _ Locker = (*Redis)(nil)

func NewRedis(rdb *redis.Client, l *zap.Logger) *Redis {
	return &Redis{
		rdb:   rdb,
		l:     l,
		ttl:   constants.LockExpireArticle,
		retry: constants.LockRetryInterval,
	}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	for {
		ok, err := r.rdb.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			var once sync.Once
			return func() {
				once.Do(func() {
					// 请求的 context 可能已经结束，释放时不使用它
					if err := releaseScript.Run(context.Background(), r.rdb, []string{key}, token).Err(); err != nil {
						r.l.Error("failed to release lock", zap.String("key", key), zap.Error(err))
					}
				})
			}, nil
		}

		select {
		case <-time.After(r.retry):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
