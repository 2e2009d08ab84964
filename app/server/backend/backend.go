package backend

import (
	"article-admin/app/server/models"
	"context"
	"errors"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrNotFound           = errors.New("record not found")
)

// Identity 是认证服务确认过的调用者
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // second
	ExpiresAt   int64  `json:"expires_at"` // Unix second
}

type SignInResult struct {
	Identity Identity
	Session  Session
}

// Service 是认证与持久化服务，控制器只通过它访问身份和数据
type Service interface {
	SignInWithPassword(ctx context.Context, email string, password string) (*SignInResult, error)
	VerifySession(ctx context.Context, token string) (*Identity, error)

	// GetAdmin 用于授权判断，总是读取 admins 表
	GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	// GetAdminProfile 用于展示，允许使用缓存
	GetAdminProfile(ctx context.Context, id uuid.UUID) (*models.Admin, error)

	CreateArticle(ctx context.Context, article *models.Article) error
	GetArticle(ctx context.Context, id uint) (*models.Article, error)
	// ListArticles 中 limit 与 offset 为 -1 时表示不限制
	ListArticles(ctx context.Context, limit int, offset int) ([]models.Article, int64, error)
	UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	DeleteArticle(ctx context.Context, id uint) error
}
