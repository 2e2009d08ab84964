package handlers

import (
	"article-admin/app/server/gen/oapi/admin"
	"article-admin/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) ProfileGet(c echo.Context) error {
	identity, err := middlewares.IdentityFrom(c)
	if err != nil {
		a.l.Error("failed to get identity", zap.Error(err))
		return a.er(c, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	rctx := c.Request().Context()

	// 查询失败（包括记录不存在）统一按 500 处理
	profile, err := a.svc.GetAdminProfile(rctx, identity.ID)
	if err != nil {
		a.l.Error("failed to get profile", zap.Stringer("id", identity.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, msgProfileFetchError)
	}

	return c.JSON(http.StatusOK, &admin.Admin{
		Id:        profile.ID,
		Email:     profile.Email,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
	})
}
