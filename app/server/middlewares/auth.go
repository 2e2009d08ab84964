package middlewares

import (
	"article-admin/app/server/backend"
	"article-admin/app/server/constants"
	"article-admin/app/server/gen/oapi/admin"
	"errors"
	"fmt"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// SessionAuth 校验 Bearer 会话令牌，成功后把 *backend.Identity 放到 context 中
func SessionAuth(svc backend.Service, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  constants.ContextKeyIdentity,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return svc.VerifySession(c.Request().Context(), auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l.Debug("session rejected", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, &admin.Error{
				Error: "Unauthorized",
			})
		},
	})
}

// IdentityFrom 取出 SessionAuth 放入的身份
func IdentityFrom(c echo.Context) (*backend.Identity, error) {
	identity, ok := c.Get(constants.ContextKeyIdentity).(*backend.Identity)
	if !ok || identity == nil {
		return nil, fmt.Errorf("no identity in context")
	}
	return identity, nil
}

// RequireAdmin 要求调用者在 admins 中有记录，必须放在 SessionAuth 之后
func RequireAdmin(svc backend.Service, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := IdentityFrom(c)
			if err != nil {
				l.Error("require admin without identity", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, &admin.Error{
					Error: "Unauthorized",
				})
			}

			if _, err = svc.GetAdmin(c.Request().Context(), identity.ID); err != nil {
				if errors.Is(err, backend.ErrNotFound) {
					return c.JSON(http.StatusForbidden, &admin.Error{
						Error: "Access denied: not an admin",
					})
				}
				l.Error("failed to get admin", zap.Stringer("id", identity.ID), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &admin.Error{
					Error: "Failed to verify admin",
				})
			}

			// 继续处理
			return next(c)
		}
	}
}
