package middlewares

import (
	"article-admin/app/server/constants"
	"article-admin/app/server/gen/oapi/admin"
	"article-admin/app/server/uploads"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

// CoverUpload 在处理函数之前校验并保存封面文件，没有上传文件时直接放行。
// 保存成功后 *uploads.File 放在 context 中，由处理函数负责在失败时清理；
// 处理链返回错误时由这里清理。
func CoverUpload(store *uploads.Store, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fh, err := c.FormFile(constants.UploadFieldCoverImage)
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
					return next(c)
				}
				l.Error("failed to read multipart form", zap.Error(err))
				return c.JSON(http.StatusBadRequest, &admin.Error{
					Error: "Invalid multipart form",
				})
			}

			if msg, ok := CheckCoverFile(fh); !ok {
				return c.JSON(http.StatusBadRequest, &admin.Error{
					Error: msg,
				})
			}

			file, err := store.Save(constants.UploadFieldCoverImage, fh)
			if err != nil {
				l.Error("failed to save upload", zap.String("filename", fh.Filename), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &admin.Error{
					Error: "Failed to save upload",
				})
			}

			c.Set(constants.ContextKeyUpload, file)

			// 处理函数没有处理的错误（例如路径参数不合法）意味着文件不会被任何记录引用
			if err = next(c); err != nil {
				if _, rmErr := store.Remove(file.URL); rmErr != nil {
					l.Error("failed to discard upload", zap.String("filename", file.Filename), zap.Error(rmErr))
				}
			}
			return err
		}
	}
}

// CheckCoverFile 检查大小、扩展名与声明的 MIME 类型，三者都通过才接受
func CheckCoverFile(fh *multipart.FileHeader) (string, bool) {
	if fh.Size > constants.UploadMaxSize {
		return "File too large: maximum size is 5 MiB", false
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !slices.Contains(constants.UploadAllowedExtensions, ext) {
		return "Unsupported file type: only pdf, doc, docx, jpg, jpeg and png are allowed", false
	}

	mediaType, _, err := mime.ParseMediaType(fh.Header.Get(echo.HeaderContentType))
	if err != nil || !slices.Contains(constants.UploadAllowedMIMETypes, strings.ToLower(mediaType)) {
		return "Unsupported file type: only pdf, doc, docx, jpg, jpeg and png are allowed", false
	}

	return "", true
}

// UploadFrom 取出 CoverUpload 保存的文件，没有上传时返回 nil
func UploadFrom(c echo.Context) *uploads.File {
	file, _ := c.Get(constants.ContextKeyUpload).(*uploads.File)
	return file
}
