package handlers

import (
	"article-admin/app/server/backend"
	"article-admin/app/server/constants"
	"article-admin/app/server/gen/oapi/admin"
	"article-admin/app/server/middlewares"
	"article-admin/app/server/models"
	"article-admin/app/server/uploads"
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"time"
)

// discardUpload 撤销本次请求已经写入磁盘的文件（补偿）
func (a *App) discardUpload(file *uploads.File) {
	if file == nil {
		return
	}
	if _, err := a.uploads.Remove(file.URL); err != nil {
		a.l.Error("failed to discard upload", zap.String("filename", file.Filename), zap.Error(err))
	}
}

// cleanupCover 在数据库变更成功后删除旧的本地封面。
// 失败不影响请求结果，但会记录警告并通过 Warning 头告知调用方。
func (a *App) cleanupCover(c echo.Context, coverImage string) {
	if removed, err := a.uploads.Remove(coverImage); err != nil {
		a.l.Warn("cover image cleanup failed", zap.String("coverImage", coverImage), zap.Error(err))
		c.Response().Header().Set("Warning", msgCoverCleanupWarning)
	} else if removed {
		a.l.Debug("cover image removed", zap.String("coverImage", coverImage))
	}
}

func (a *App) lockArticle(c echo.Context, id uint) (func(), error) {
	return a.locker.Lock(c.Request().Context(), fmt.Sprintf(constants.CacheKeyArticleLock, id))
}

func (a *App) getArticle(ctx context.Context, id uint) (*models.Article, error, int) {
	article, err := a.svc.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, fmt.Errorf("no such article"), http.StatusNotFound
		}
		return nil, fmt.Errorf("error query article: %w", err), http.StatusInternalServerError
	}
	return article, nil, http.StatusOK
}

func articleFetchMessage(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return msgArticleNotFound
	}
	return msgArticleFetchError
}

func (a *App) ArticleCreate(c echo.Context) error {
	rctx := c.Request().Context()
	upload := middlewares.UploadFrom(c)

	// 绑定请求体
	in, msg, ok := a.bindArticleInput(c)
	if !ok {
		a.discardUpload(upload)
		return a.er(c, http.StatusBadRequest, msg)
	}

	// 封面：上传的文件优先，其次是外部地址
	var coverImage string
	if upload != nil {
		coverImage = upload.URL
	} else if in.CoverImageUrl != "" {
		coverImage = in.CoverImageUrl
	} else {
		return a.er(c, http.StatusBadRequest, msgMissingCoverImage)
	}

	tags := in.tags
	if tags == nil {
		tags = []string{}
	}

	article := models.Article{
		Title:           in.Title,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		CoverImage:      coverImage,
		Author:          in.Author,
		Tags:            tags,
		IsFeatured:      in.isFeatured,
		PublicationDate: time.Now(),
	}

	if err := a.svc.CreateArticle(rctx, &article); err != nil {
		a.l.Error("failed to create article", zap.Any("article", article), zap.Error(err))
		a.discardUpload(upload)
		return a.er(c, http.StatusInternalServerError, msgArticleCreateError)
	}

	return c.JSON(http.StatusCreated, articleResponse(&article))
}

func (a *App) ArticleList(c echo.Context, params admin.ArticleListParams) error {
	rctx := c.Request().Context()

	showAll, page, limit, err := a.parsePagination(params.Page, params.Limit)
	if err != nil {
		return a.er(c, http.StatusBadRequest, msgInvalidPagination)
	}

	offset := page * limit
	if showAll {
		offset = -1
	}

	articles, count, err := a.svc.ListArticles(rctx, limit, offset)
	if err != nil {
		a.l.Error("failed to list articles", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, msgArticleFetchError)
	}

	list := make([]admin.Article, 0, len(articles))
	for i := range articles {
		list = append(list, *articleResponse(&articles[i]))
	}

	return c.JSON(http.StatusOK, &admin.ArticleList{
		Limit:   limit,
		PageMax: a.calcMaxPage(count, showAll, limit),
		List:    list,
	})
}

func (a *App) ArticleGet(c echo.Context, id uint) error {
	if id == 0 {
		return a.er(c, http.StatusBadRequest, msgInvalidArticleID)
	}

	article, err, statusCode := a.getArticle(c.Request().Context(), id)
	if err != nil {
		a.l.Error("failed to get article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, statusCode, articleFetchMessage(statusCode))
	}

	return c.JSON(http.StatusOK, articleResponse(article))
}

func (a *App) ArticleUpdate(c echo.Context, id uint) error {
	rctx := c.Request().Context()
	upload := middlewares.UploadFrom(c)

	if id == 0 {
		a.discardUpload(upload)
		return a.er(c, http.StatusBadRequest, msgInvalidArticleID)
	}

	// 绑定请求体
	in, msg, ok := a.bindArticleInput(c)
	if !ok {
		a.discardUpload(upload)
		return a.er(c, http.StatusBadRequest, msg)
	}

	// 同一篇文章的更新与删除串行执行
	unlock, err := a.lockArticle(c, id)
	if err != nil {
		a.l.Error("failed to lock article", zap.Uint("id", id), zap.Error(err))
		a.discardUpload(upload)
		return a.er(c, http.StatusInternalServerError, msgArticleUpdateError)
	}
	defer unlock()

	// 从数据库中获得指定的文章
	article, err, statusCode := a.getArticle(rctx, id)
	if err != nil {
		a.l.Error("failed to get article", zap.Uint("id", id), zap.Error(err))
		a.discardUpload(upload)
		return a.er(c, statusCode, articleFetchMessage(statusCode))
	}

	// 封面：新上传的文件优先，其次是新的外部地址，否则保持不变
	previousCover := article.CoverImage
	if upload != nil {
		article.CoverImage = upload.URL
	} else if in.CoverImageUrl != "" {
		article.CoverImage = in.CoverImageUrl
	}

	article.Title = in.Title
	article.Excerpt = in.Excerpt
	article.Content = in.Content
	article.Author = in.Author
	if in.tags != nil {
		article.Tags = in.tags
	}
	if in.IsFeatured != "" {
		article.IsFeatured = in.isFeatured
	}
	now := time.Now()
	article.UpdatedAt = &now

	updated, err := a.svc.UpdateArticle(rctx, article)
	if err != nil {
		// 新文件没有被任何记录引用，撤销
		a.discardUpload(upload)
		if errors.Is(err, backend.ErrNotFound) {
			return a.er(c, http.StatusNotFound, msgArticleNotFound)
		}
		a.l.Error("failed to update article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, msgArticleUpdateError)
	}

	// 记录已经指向新封面，旧的本地文件不再被引用
	if updated.CoverImage != previousCover && uploads.IsLocal(previousCover) {
		a.cleanupCover(c, previousCover)
	}

	return c.JSON(http.StatusOK, articleResponse(updated))
}

func (a *App) ArticleDelete(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	if id == 0 {
		return a.er(c, http.StatusBadRequest, msgInvalidArticleID)
	}

	unlock, err := a.lockArticle(c, id)
	if err != nil {
		a.l.Error("failed to lock article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, msgArticleDeleteError)
	}
	defer unlock()

	article, err, statusCode := a.getArticle(rctx, id)
	if err != nil {
		a.l.Error("failed to get article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, statusCode, articleFetchMessage(statusCode))
	}

	// 先删除记录，再删除文件
	if err := a.svc.DeleteArticle(rctx, id); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return a.er(c, http.StatusNotFound, msgArticleNotFound)
		}
		a.l.Error("failed to delete article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, msgArticleDeleteError)
	}

	if uploads.IsLocal(article.CoverImage) {
		a.cleanupCover(c, article.CoverImage)
	}

	return c.JSON(http.StatusOK, &admin.Message{
		Message: "Article deleted successfully",
	})
}
