package backend

import (
	"article-admin/app/server/constants"
	"article-admin/app/server/jwt"
	"article-admin/app/server/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alexedwards/argon2id"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"testing"
	"time"
)

var articleColumns = []string{"id", "title", "excerpt", "content", "cover_image", "author", "tags", "is_featured", "publication_date", "updated_at"}

var adminColumns = []string{"id", "email", "role", "created_at"}

type testPostgres struct {
	*Postgres
	mock sqlmock.Sqlmock
	mr   *miniredis.Miniredis
}

// newTestPostgres 使用 sqlmock 代替数据库；withRedis 为 true 时接入 miniredis
func newTestPostgres(t *testing.T, withRedis bool) *testPostgres {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}

	j, err := jwt.New("test-signature-key")
	if err != nil {
		t.Fatal(err)
	}

	tp := &testPostgres{mock: mock}
	var rdb *redis.Client
	if withRedis {
		tp.mr = miniredis.RunT(t)
		rdb = redis.NewClient(&redis.Options{Addr: tp.mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
	}
	tp.Postgres = NewPostgres(zap.NewNop(), db, rdb, j, time.Hour)

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
	})
	return tp
}

func (tp *testPostgres) expectAdmin(admin *models.Admin) {
	rows := sqlmock.NewRows(adminColumns)
	if admin != nil {
		rows.AddRow(admin.ID.String(), admin.Email, admin.Role, admin.CreatedAt)
	}
	tp.mock.ExpectQuery(`SELECT \* FROM "admins" WHERE id = \$1`).WillReturnRows(rows)
}

func testAdmin() *models.Admin {
	return &models.Admin{
		ID:        uuid.New(),
		Email:     "admin@example.com",
		Role:      "admin",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// 测试用的低开销参数
var testHashParams = &argon2id.Params{Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestSignInWithPassword(t *testing.T) {
	tp := newTestPostgres(t, false)

	hash, err := argon2id.CreateHash("correct horse", testHashParams)
	if err != nil {
		t.Fatal(err)
	}
	userID := uuid.New()
	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "email", "password", "created_at"}).
			AddRow(userID.String(), "admin@example.com", hash, time.Now())
	}

	// 邮箱统一小写后查询
	tp.mock.ExpectQuery(`SELECT \* FROM "auth_users" WHERE email = \$1`).
		WithArgs("admin@example.com", 1).
		WillReturnRows(userRows())
	res, err := tp.SignInWithPassword(context.Background(), "  Admin@Example.com ", "correct horse")
	if err != nil {
		t.Fatalf("SignInWithPassword() error = %v", err)
	}
	if res.Identity.ID != userID || res.Identity.Email != "admin@example.com" {
		t.Errorf("identity = %+v", res.Identity)
	}
	if res.Session.TokenType != "bearer" || res.Session.ExpiresIn != 3600 || res.Session.AccessToken == "" {
		t.Errorf("session = %+v", res.Session)
	}

	// 签出的令牌可以被校验
	identity, err := tp.VerifySession(context.Background(), res.Session.AccessToken)
	if err != nil {
		t.Fatalf("VerifySession() error = %v", err)
	}
	if identity.ID != userID {
		t.Errorf("VerifySession() id = %s, want %s", identity.ID, userID)
	}

	tp.mock.ExpectQuery(`SELECT \* FROM "auth_users" WHERE email = \$1`).WillReturnRows(userRows())
	if _, err := tp.SignInWithPassword(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want %v", err, ErrInvalidCredentials)
	}

	tp.mock.ExpectQuery(`SELECT \* FROM "auth_users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "created_at"}))
	if _, err := tp.SignInWithPassword(context.Background(), "nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want %v", err, ErrInvalidCredentials)
	}

	tp.mock.ExpectQuery(`SELECT \* FROM "auth_users" WHERE email = \$1`).WillReturnError(errors.New("connection reset"))
	if _, err := tp.SignInWithPassword(context.Background(), "admin@example.com", "correct horse"); err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("db failure error = %v, want an upstream error", err)
	}
}

func TestVerifySessionRejects(t *testing.T) {
	tp := newTestPostgres(t, false)

	other, err := jwt.New("another-key")
	if err != nil {
		t.Fatal(err)
	}
	forged, err := other.SignToken(&jwt.Identity{ID: uuid.New(), Email: "x@example.com", Expires: time.Now().Add(time.Hour).Unix()})
	if err != nil {
		t.Fatal(err)
	}

	for _, token := range []string{"", "not-a-jwt", forged} {
		if _, err := tp.VerifySession(context.Background(), token); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("VerifySession(%q) error = %v, want %v", token, err, ErrInvalidSession)
		}
	}
}

func TestGetAdminNotCached(t *testing.T) {
	tp := newTestPostgres(t, true)
	admin := testAdmin()

	// 资料读取写入缓存
	tp.expectAdmin(admin)
	if _, err := tp.GetAdminProfile(context.Background(), admin.ID); err != nil {
		t.Fatalf("GetAdminProfile() error = %v", err)
	}
	if !tp.mr.Exists(fmt.Sprintf(constants.CacheKeyAdminInfo, admin.ID)) {
		t.Fatalf("admin profile not cached")
	}

	// admins 记录被删除后，授权判断立即生效
	tp.expectAdmin(nil)
	if _, err := tp.GetAdmin(context.Background(), admin.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetAdmin() after removal error = %v, want %v", err, ErrNotFound)
	}

	tp.mock.ExpectQuery(`SELECT \* FROM "admins" WHERE id = \$1`).WillReturnError(errors.New("connection reset"))
	if _, err := tp.GetAdmin(context.Background(), admin.ID); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("GetAdmin() db failure error = %v", err)
	}
}

func TestGetAdminProfileCache(t *testing.T) {
	tp := newTestPostgres(t, true)
	admin := testAdmin()
	key := fmt.Sprintf(constants.CacheKeyAdminInfo, admin.ID)

	tp.expectAdmin(admin)
	first, err := tp.GetAdminProfile(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("GetAdminProfile() error = %v", err)
	}
	if ttl := tp.mr.TTL(key); ttl != constants.CacheExpireAdminInfo {
		t.Errorf("cache ttl = %s, want %s", ttl, constants.CacheExpireAdminInfo)
	}

	// 第二次从缓存读取，不访问数据库
	second, err := tp.GetAdminProfile(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("cached GetAdminProfile() error = %v", err)
	}
	if second.ID != first.ID || second.Email != first.Email || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("cached profile = %+v, want %+v", second, first)
	}

	// 无效的缓存被丢弃并重新写入
	if err := tp.mr.Set(key, "{broken"); err != nil {
		t.Fatal(err)
	}
	tp.expectAdmin(admin)
	if _, err := tp.GetAdminProfile(context.Background(), admin.ID); err != nil {
		t.Fatalf("GetAdminProfile() with broken cache error = %v", err)
	}
	cached, err := tp.mr.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	var decoded models.Admin
	if err := json.Unmarshal([]byte(cached), &decoded); err != nil || decoded.ID != admin.ID {
		t.Errorf("cache = %q, err = %v", cached, err)
	}
}

func TestGetAdminProfileWithoutRedis(t *testing.T) {
	tp := newTestPostgres(t, false)
	admin := testAdmin()

	tp.expectAdmin(admin)
	tp.expectAdmin(admin)
	for i := 0; i < 2; i++ {
		if _, err := tp.GetAdminProfile(context.Background(), admin.ID); err != nil {
			t.Fatalf("GetAdminProfile() error = %v", err)
		}
	}

	tp.expectAdmin(nil)
	if _, err := tp.GetAdminProfile(context.Background(), admin.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAdminProfile() error = %v, want %v", err, ErrNotFound)
	}
}

func TestGetArticle(t *testing.T) {
	tp := newTestPostgres(t, false)
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	tp.mock.ExpectQuery(`SELECT \* FROM "articles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(3, "Title", "Excerpt", "Content", "/uploads/cover_image-1-1.png", "Ada", "{go,web}", true, published, nil))
	article, err := tp.GetArticle(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetArticle() error = %v", err)
	}
	if article.ID != 3 || !article.IsFeatured || fmt.Sprint(article.Tags) != "[go web]" || article.UpdatedAt != nil {
		t.Errorf("article = %+v", article)
	}

	tp.mock.ExpectQuery(`SELECT \* FROM "articles" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows(articleColumns))
	if _, err := tp.GetArticle(context.Background(), 4); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetArticle(missing) error = %v, want %v", err, ErrNotFound)
	}
}

func TestListArticles(t *testing.T) {
	tp := newTestPostgres(t, false)
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	tp.mock.ExpectQuery(`SELECT \* FROM "articles" ORDER BY publication_date DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(2, "B", "e", "c", "", "Ada", "{}", false, published, nil).
			AddRow(1, "A", "e", "c", "", "Ada", "{}", false, published, nil))
	tp.mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	articles, count, err := tp.ListArticles(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(articles) != 2 || articles[0].ID != 2 || count != 5 {
		t.Errorf("ListArticles() = %+v, %d", articles, count)
	}

	// -1 不限制数量
	tp.mock.ExpectQuery(`SELECT \* FROM "articles" ORDER BY publication_date DESC, id DESC$`).
		WillReturnRows(sqlmock.NewRows(articleColumns))
	tp.mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	if _, _, err := tp.ListArticles(context.Background(), -1, -1); err != nil {
		t.Fatalf("ListArticles(-1, -1) error = %v", err)
	}
}

func TestCreateArticle(t *testing.T) {
	tp := newTestPostgres(t, false)

	tp.mock.ExpectQuery(`INSERT INTO "articles" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	article := &models.Article{Title: "T", Excerpt: "E", Content: "C", Author: "A", Tags: pq.StringArray{}, PublicationDate: time.Now()}
	if err := tp.CreateArticle(context.Background(), article); err != nil {
		t.Fatalf("CreateArticle() error = %v", err)
	}
	if article.ID != 9 {
		t.Errorf("id = %d, want 9", article.ID)
	}
}

func TestUpdateArticlePersistsZeroValues(t *testing.T) {
	tp := newTestPostgres(t, false)
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	updated := published.Add(time.Hour)

	// false 和空数组也必须出现在 SET 中
	tp.mock.ExpectExec(`UPDATE "articles" SET "title"=\$1,"excerpt"=\$2,"content"=\$3,"cover_image"=\$4,"author"=\$5,"tags"=\$6,"is_featured"=\$7,"updated_at"=\$8 WHERE "id" = \$9`).
		WithArgs("T", "E", "C", "https://cdn.example.com/a.png", "A", "{}", false, sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	tp.mock.ExpectQuery(`SELECT \* FROM "articles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(7, "T", "E", "C", "https://cdn.example.com/a.png", "A", "{}", false, published, updated))

	got, err := tp.UpdateArticle(context.Background(), &models.Article{
		ID:         7,
		Title:      "T",
		Excerpt:    "E",
		Content:    "C",
		CoverImage: "https://cdn.example.com/a.png",
		Author:     "A",
		Tags:       pq.StringArray{},
		IsFeatured: false,
		UpdatedAt:  &updated,
	})
	if err != nil {
		t.Fatalf("UpdateArticle() error = %v", err)
	}
	if got.IsFeatured || got.Tags == nil || len(got.Tags) != 0 || got.UpdatedAt == nil || !got.UpdatedAt.Equal(updated) {
		t.Errorf("updated article = %+v", got)
	}
	if !got.PublicationDate.Equal(published) {
		t.Errorf("publication_date = %s, want %s", got.PublicationDate, published)
	}
}

func TestUpdateArticleNotFound(t *testing.T) {
	tp := newTestPostgres(t, false)
	now := time.Now()

	tp.mock.ExpectExec(`UPDATE "articles" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	if _, err := tp.UpdateArticle(context.Background(), &models.Article{ID: 8, Title: "T", UpdatedAt: &now}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateArticle(missing) error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteArticle(t *testing.T) {
	tp := newTestPostgres(t, false)

	tp.mock.ExpectExec(`DELETE FROM "articles" WHERE "articles"."id" = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := tp.DeleteArticle(context.Background(), 5); err != nil {
		t.Fatalf("DeleteArticle() error = %v", err)
	}

	tp.mock.ExpectExec(`DELETE FROM "articles"`).WillReturnResult(sqlmock.NewResult(0, 0))
	if err := tp.DeleteArticle(context.Background(), 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteArticle(missing) error = %v, want %v", err, ErrNotFound)
	}

	tp.mock.ExpectExec(`DELETE FROM "articles"`).WillReturnError(errors.New("connection reset"))
	if err := tp.DeleteArticle(context.Background(), 5); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteArticle() db failure error = %v", err)
	}
}
