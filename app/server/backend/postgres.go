package backend

import (
	"article-admin/app/server/constants"
	"article-admin/app/server/jwt"
	"article-admin/app/server/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"strings"
	"time"
)

var _ Service = (*Postgres)(nil)

type Postgres struct {
	l          *zap.Logger   // 日志
	db         *gorm.DB      // 数据库
	rdb        *redis.Client // Redis ，可以为空
	jwt        *jwt.JWT      // JWT ，用于无状态会话
	sessionTTL time.Duration // 会话有效期
}

func NewPostgres(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, sessionTTL time.Duration) *Postgres {
	return &Postgres{
		l:          l,
		db:         db,
		rdb:        rdb,
		jwt:        j,
		sessionTTL: sessionTTL,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *Postgres) SignInWithPassword(ctx context.Context, email string, password string) (*SignInResult, error) {
	var user models.AuthUser
	if err := p.db.WithContext(ctx).First(&user, "email = ?", NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		return nil, fmt.Errorf("check password: %w", err)
	} else if !match {
		return nil, ErrInvalidCredentials
	}

	// 签出 JWT
	expires := time.Now().Add(p.sessionTTL)
	token, err := p.jwt.SignToken(&jwt.Identity{
		ID:      user.ID,
		Email:   user.Email,
		Expires: expires.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &SignInResult{
		Identity: Identity{
			ID:    user.ID,
			Email: user.Email,
		},
		Session: Session{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int64(p.sessionTTL / time.Second),
			ExpiresAt:   expires.Unix(),
		},
	}, nil
}

func (p *Postgres) VerifySession(_ context.Context, token string) (*Identity, error) {
	identity, err := p.jwt.ParseIdentity(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	return &Identity{
		ID:    identity.ID,
		Email: identity.Email,
	}, nil
}

func (p *Postgres) GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := p.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (p *Postgres) GetAdminProfile(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	if p.rdb == nil {
		return p.GetAdmin(ctx, id)
	}

	// 查询缓存
	var admin models.Admin
	cacheKey := fmt.Sprintf(constants.CacheKeyAdminInfo, id)
	if cacheBytes, err := p.rdb.Get(ctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			p.l.Error("failed to query cache for admin info", zap.Stringer("id", id), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &admin); err != nil {
		p.l.Error("failed to unmarshal admin info", zap.Stringer("id", id), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		p.rdb.Del(ctx, cacheKey)
	} else {
		return &admin, nil
	}

	// 查询数据库
	found, err := p.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(found); err != nil {
		p.l.Error("failed to marshal admin info", zap.Stringer("id", id), zap.Error(err))
	} else if err = p.rdb.Set(ctx, cacheKey, cacheBytes, constants.CacheExpireAdminInfo).Err(); err != nil {
		p.l.Error("failed to cache admin info", zap.Stringer("id", id), zap.Error(err))
	}

	return found, nil
}

func (p *Postgres) CreateArticle(ctx context.Context, article *models.Article) error {
	if err := p.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

func (p *Postgres) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := p.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find article %d: %w", id, err)
	}
	return &article, nil
}

func (p *Postgres) ListArticles(ctx context.Context, limit int, offset int) ([]models.Article, int64, error) {
	var (
		articles []models.Article
		count    int64
	)

	if err := p.db.WithContext(ctx).
		Model(&models.Article{}).
		Order("publication_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	if err := p.db.WithContext(ctx).Model(&models.Article{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	return articles, count, nil
}

func (p *Postgres) UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	// 显式指定列，否则 false 和空数组之类的零值不会被写入
	res := p.db.WithContext(ctx).
		Model(article).
		Select("title", "excerpt", "content", "cover_image", "author", "tags", "is_featured", "updated_at").
		Updates(article)
	if res.Error != nil {
		return nil, fmt.Errorf("update article %d: %w", article.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	// 返回更新后的记录
	return p.GetArticle(ctx, article.ID)
}

func (p *Postgres) DeleteArticle(ctx context.Context, id uint) error {
	res := p.db.WithContext(ctx).Delete(&models.Article{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete article %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
