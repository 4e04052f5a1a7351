package middleware

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/cache"
	"github.com/MFrackowiak/mf-simple-calendar/core/controller"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/core/utils"

	"github.com/labstack/echo/v4"
)

// ContextKeyTokenData is where AuthMiddleware stores the parsed claims.
const ContextKeyTokenData = "token_data"

// ContextKeyRequestID is where RequestID stores the per-request id.
const ContextKeyRequestID = "request_id"

type Middleware struct {
	cache cache.Cache
	base  controller.BaseController
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{
		cache: c,
		base:  controller.NewBaseController(),
	}
}

// AuthMiddleware validates the Bearer token, rejects blacklisted (logged-out)
// tokens and stores the claims in the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c.Request().Header.Get("Authorization"))
			if err != nil {
				return m.base.Unauthorized(c, "missing or malformed authorization header")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return m.base.Unauthorized(c, "invalid or expired token")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:BlacklistCheck:Error:", err)
				} else if blacklisted {
					return m.base.Unauthorized(c, "token has been revoked")
				}
			}

			c.Set(ContextKeyTokenData, claims)
			return next(c)
		}
	}
}

// RequestID tags every request with a short id for log correlation.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := utils.GenerateRequestID()
			c.Set(ContextKeyRequestID, id)
			c.Response().Header().Set("X-Request-ID", id)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims set by AuthMiddleware.
func ClaimsFromContext(c echo.Context) (*utils.TokenClaims, bool) {
	claims, ok := c.Get(ContextKeyTokenData).(*utils.TokenClaims)
	return claims, ok && claims != nil
}
