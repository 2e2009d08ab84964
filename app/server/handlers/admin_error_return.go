package handlers

import (
	"article-admin/app/server/gen/oapi/admin"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// 面向用户的固定错误信息，具体原因只记录在日志中
const (
	msgInvalidBody         = "Invalid request body"
	msgMissingCredentials  = "Email and password are required"
	msgInvalidCredentials  = "Invalid credentials"
	msgNotAnAdmin          = "Access denied: not an admin"
	msgProfileFetchError   = "Failed to fetch profile"
	msgMissingCoverImage   = "Cover image is required"
	msgLocalCoverImageURL  = "cover_image_url must not point to the uploads directory"
	msgInvalidTags         = "tags must be a JSON array of strings"
	msgInvalidArticleID    = "Invalid article id"
	msgInvalidPagination   = "Invalid pagination parameters"
	msgArticleNotFound     = "Article not found"
	msgArticleFetchError   = "Failed to fetch article"
	msgArticleCreateError  = "Failed to create article"
	msgArticleUpdateError  = "Failed to update article"
	msgArticleDeleteError  = "Failed to delete article"
	msgCoverCleanupWarning = `199 - "cover image cleanup failed"`
)

func (a *App) er(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &admin.Error{
		Error: message,
	})
}

// HTTPErrorHandler 让框架层面的错误（路由不存在、请求体过大、 panic 等）也使用 {error} 格式
func (a *App) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		statusCode = he.Code
	}
	if statusCode >= http.StatusInternalServerError {
		a.l.Error("unhandled error", zap.String("URI", c.Request().RequestURI), zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(statusCode)
	} else {
		err = a.er(c, statusCode, http.StatusText(statusCode))
	}
	if err != nil {
		a.l.Error("failed to write error response", zap.Error(err))
	}
}
