package handlers

import (
	"article-admin/app/server/gen/oapi/admin"
	"article-admin/app/server/models"
	"article-admin/app/server/uploads"
	"article-admin/app/server/validate"
	"encoding/json"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"strconv"
)

// articleInput 是创建与更新共用的表单。
// multipart 表单中所有字段都是字符串，空字符串视为未提交。
type articleInput struct {
	admin.ArticleForm

	// 解析结果
	tags       []string
	isFeatured bool
}

var errInvalidTags = errors.New(msgInvalidTags)

func parseTags(raw string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return nil, errInvalidTags
	}
	return tags, nil
}

// bindArticleInput 绑定、校验并解析请求，失败时返回面向用户的错误信息
func (a *App) bindArticleInput(c echo.Context) (*articleInput, string, bool) {
	var in articleInput
	if err := c.Bind(&in.ArticleForm); err != nil {
		a.l.Debug("failed to bind article body", zap.Error(err))
		return nil, msgInvalidBody, false
	}

	// 外部地址原样使用，但不能借此引用上传目录里的文件
	if in.CoverImageUrl != "" && uploads.IsLocal(in.CoverImageUrl) {
		return nil, msgLocalCoverImageURL, false
	}

	if err := c.Validate(&in.ArticleForm); err != nil {
		return nil, validate.Message(err), false
	}

	if in.Tags != "" {
		tags, err := parseTags(in.Tags)
		if err != nil {
			return nil, msgInvalidTags, false
		}
		in.tags = tags
	}

	if in.IsFeatured != "" {
		in.isFeatured, _ = strconv.ParseBool(in.IsFeatured) // 已经过 oneof 校验
	}

	return &in, "", true
}

func articleResponse(article *models.Article) *admin.Article {
	tags := []string(article.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &admin.Article{
		Id:              article.ID,
		Title:           article.Title,
		Excerpt:         article.Excerpt,
		Content:         article.Content,
		CoverImage:      article.CoverImage,
		Author:          article.Author,
		Tags:            tags,
		IsFeatured:      article.IsFeatured,
		PublicationDate: article.PublicationDate,
		UpdatedAt:       article.UpdatedAt,
	}
}
