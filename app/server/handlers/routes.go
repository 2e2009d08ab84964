package handlers

import (
	"article-admin/app/server/constants"
	"article-admin/app/server/gen/oapi/admin"
	"article-admin/app/server/middlewares"
	"article-admin/app/server/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
	"strings"
)

var _ admin.ServerInterface = (*App)(nil)

// router 在生成的路由上按 方法+路径 挂载中间件
type router struct {
	admin.EchoRouter
	mw map[string][]echo.MiddlewareFunc
}

func (r *router) with(method string, path string, m []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	return append(r.mw[method+" "+path], m...)
}

func (r *router) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.GET(path, h, r.with(http.MethodGet, path, m)...)
}

func (r *router) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.POST(path, h, r.with(http.MethodPost, path, m)...)
}

func (r *router) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.PUT(path, h, r.with(http.MethodPut, path, m)...)
}

func (r *router) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.DELETE(path, h, r.with(http.MethodDelete, path, m)...)
}

// Register 挂载所有路由，prefix 为管理接口的前缀（例如 /api/admin ）
func (a *App) Register(e *echo.Echo, prefix string) {
	e.HTTPErrorHandler = a.HTTPErrorHandler
	e.Validator = validate.New()

	e.GET("/healthz", a.HealthCheck)
	e.Static(strings.TrimSuffix(constants.UploadURLPrefix, "/"), a.uploads.Dir())

	auth := middlewares.SessionAuth(a.svc, a.l)
	requireAdmin := middlewares.RequireAdmin(a.svc, a.l)
	cover := middlewares.CoverUpload(a.uploads, a.l)

	// 给上传留出表单字段的余量，文件本身的大小由 CoverUpload 检查
	g := e.Group(prefix, middleware.BodyLimit("8M"))

	admin.RegisterHandlers(&router{
		EchoRouter: g,
		mw: map[string][]echo.MiddlewareFunc{
			"GET /profile":         {auth},
			"GET /articles":        {auth, requireAdmin},
			"GET /articles/:id":    {auth, requireAdmin},
			"POST /articles":       {auth, requireAdmin, cover},
			"PUT /articles/:id":    {auth, requireAdmin, cover},
			"DELETE /articles/:id": {auth, requireAdmin},
		},
	}, a)
}
