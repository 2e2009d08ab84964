package handlers

import (
	"article-admin/app/server/backend"
	"article-admin/app/server/gen/oapi/admin"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req admin.AuthLoginJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind login body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, msgInvalidBody)
	}

	// 没有写邮箱或密码，不调用认证服务
	if req.Email == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, msgMissingCredentials)
	}

	// 先认证
	res, err := a.svc.SignInWithPassword(rctx, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, backend.ErrInvalidCredentials) {
			a.l.Error("failed to sign in", zap.Error(err))
		}
		return a.er(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	// 再确认是否为管理员，认证成功但没有 admins 记录同样不允许登录
	adminRow, err := a.svc.GetAdmin(rctx, res.Identity.ID)
	if err != nil {
		if !errors.Is(err, backend.ErrNotFound) {
			a.l.Error("failed to get admin", zap.Stringer("id", res.Identity.ID), zap.Error(err))
		}
		return a.er(c, http.StatusForbidden, msgNotAnAdmin)
	}

	return c.JSON(http.StatusOK, &admin.LoginResponse{
		Message: "Login successful",
		User: admin.LoginUser{
			Id:    res.Identity.ID,
			Email: res.Identity.Email,
			Role:  adminRow.Role,
		},
		Session: admin.Session{
			AccessToken: res.Session.AccessToken,
			TokenType:   res.Session.TokenType,
			ExpiresIn:   res.Session.ExpiresIn,
			ExpiresAt:   res.Session.ExpiresAt,
		},
	})
}
