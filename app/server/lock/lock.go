package lock

import (
	"context"
	"sync"
)

// Locker 提供按 key 的互斥，返回的 unlock 可以重复调用
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Local 是进程内的实现，只能保护单实例部署
type Local struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

var _ Locker = (*Local)(nil)

func NewLocal() *Local {
	return &Local{held: make(map[string]chan struct{})}
}

func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	for {
		l.mu.Lock()
		released, busy := l.held[key]
		if !busy {
			released = make(chan struct{})
			l.held[key] = released
			l.mu.Unlock()

			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.held, key)
					l.mu.Unlock()
					close(released)
				})
			}, nil
		}
		l.mu.Unlock()

		// 等待当前持有者释放后重新抢占
		select {
		case <-released:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
