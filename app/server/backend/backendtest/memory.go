// Package backendtest 提供内存实现的 backend.Service ，供测试使用
package backendtest

import (
	"article-admin/app/server/backend"
	"article-admin/app/server/models"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"sort"
	"sync"
	"time"
)

var _ backend.Service = (*Memory)(nil)

type user struct {
	identity backend.Identity
	password string
}

type Memory struct {
	mu sync.Mutex

	users    map[string]user // email -> user
	sessions map[string]backend.Identity
	admins   map[uuid.UUID]models.Admin
	articles map[uint]models.Article
	nextID   uint

	// 调用计数
	calls map[string]int

	// 不为空时对应操作直接返回该错误，模拟上游故障
	fail map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]user),
		sessions: make(map[string]backend.Identity),
		admins:   make(map[uuid.UUID]models.Admin),
		articles: make(map[uint]models.Article),
		nextID:   1,
		calls:    make(map[string]int),
		fail:     make(map[string]error),
	}
}

func (m *Memory) enter(op string) error {
	m.calls[op]++
	return m.fail[op]
}

// AddUser 注册一个认证用户并返回其身份和一个可用的会话令牌
func (m *Memory) AddUser(email string, password string) (backend.Identity, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	identity := backend.Identity{ID: uuid.New(), Email: backend.NormalizeEmail(email)}
	m.users[identity.Email] = user{identity: identity, password: password}

	token := "token-" + identity.ID.String()
	m.sessions[token] = identity
	return identity, token
}

// AddAdmin 注册一个拥有 admins 记录的用户
func (m *Memory) AddAdmin(email string, password string) (backend.Identity, string) {
	identity, token := m.AddUser(email, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins[identity.ID] = models.Admin{
		ID:        identity.ID,
		Email:     identity.Email,
		Role:      "admin",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	return identity, token
}

func (m *Memory) SignInWithPassword(_ context.Context, email string, password string) (*backend.SignInResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SignInWithPassword"); err != nil {
		return nil, err
	}

	u, ok := m.users[backend.NormalizeEmail(email)]
	if !ok || u.password != password {
		return nil, backend.ErrInvalidCredentials
	}

	token := fmt.Sprintf("token-%s-%d", u.identity.ID, m.calls["SignInWithPassword"])
	m.sessions[token] = u.identity
	return &backend.SignInResult{
		Identity: u.identity,
		Session: backend.Session{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   3600,
			ExpiresAt:   time.Now().Add(time.Hour).Unix(),
		},
	}, nil
}

func (m *Memory) VerifySession(_ context.Context, token string) (*backend.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("VerifySession"); err != nil {
		return nil, err
	}

	identity, ok := m.sessions[token]
	if !ok {
		return nil, backend.ErrInvalidSession
	}
	return &identity, nil
}

func (m *Memory) GetAdmin(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("GetAdmin"); err != nil {
		return nil, err
	}

	admin, ok := m.admins[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &admin, nil
}

func (m *Memory) GetAdminProfile(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("GetAdminProfile"); err != nil {
		return nil, err
	}

	admin, ok := m.admins[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &admin, nil
}

// RemoveAdmin 删除 admins 记录，认证用户和会话保持不变
func (m *Memory) RemoveAdmin(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.admins, id)
}

func cloneArticle(a models.Article) models.Article {
	if a.Tags != nil {
		a.Tags = append([]string{}, a.Tags...)
	}
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		a.UpdatedAt = &t
	}
	return a
}

func (m *Memory) CreateArticle(_ context.Context, article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("CreateArticle"); err != nil {
		return err
	}

	article.ID = m.nextID
	m.nextID++
	m.articles[article.ID] = cloneArticle(*article)
	return nil
}

func (m *Memory) GetArticle(_ context.Context, id uint) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("GetArticle"); err != nil {
		return nil, err
	}

	article, ok := m.articles[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	article = cloneArticle(article)
	return &article, nil
}

func (m *Memory) ListArticles(_ context.Context, limit int, offset int) ([]models.Article, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListArticles"); err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(m.articles))
	for id := range m.articles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	if offset > 0 {
		if offset > len(ids) {
			offset = len(ids)
		}
		ids = ids[offset:]
	}
	if limit >= 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	list := make([]models.Article, 0, len(ids))
	for _, id := range ids {
		list = append(list, cloneArticle(m.articles[id]))
	}
	return list, int64(len(m.articles)), nil
}

func (m *Memory) UpdateArticle(_ context.Context, article *models.Article) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateArticle"); err != nil {
		return nil, err
	}

	existing, ok := m.articles[article.ID]
	if !ok {
		return nil, backend.ErrNotFound
	}

	existing.Title = article.Title
	existing.Excerpt = article.Excerpt
	existing.Content = article.Content
	existing.CoverImage = article.CoverImage
	existing.Author = article.Author
	existing.Tags = article.Tags
	existing.IsFeatured = article.IsFeatured
	existing.UpdatedAt = article.UpdatedAt
	m.articles[article.ID] = cloneArticle(existing)

	updated := cloneArticle(existing)
	return &updated, nil
}

func (m *Memory) DeleteArticle(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteArticle"); err != nil {
		return err
	}

	if _, ok := m.articles[id]; !ok {
		return backend.ErrNotFound
	}
	delete(m.articles, id)
	return nil
}

// Article 直接读取存储中的记录，不计入调用次数
func (m *Memory) Article(id uint) (models.Article, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.articles[id]
	return cloneArticle(a), ok
}

// PutArticle 直接写入一条记录，返回分配的 ID
func (m *Memory) PutArticle(a models.Article) uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.nextID
	m.nextID++
	m.articles[a.ID] = cloneArticle(a)
	return a.ID
}

// CallCount 返回某个操作被调用的次数
func (m *Memory) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// SetFailure 让某个操作返回指定错误，err 为空时恢复正常
func (m *Memory) SetFailure(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fail, op)
		return
	}
	m.fail[op] = err
}

var ErrUpstream = errors.New("upstream unavailable")
