package middleware // middleware contains reusable HTTP middleware functions

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-management/internal/apperr"
	"github.com/iliyamo/contact-management/internal/model"
	"github.com/iliyamo/contact-management/internal/repository"
)

// HeaderAPIToken is the request header carrying the opaque session token.
const HeaderAPIToken = "X-API-TOKEN"

// userContextKey is where the resolved user is stored on the Echo context.
const userContextKey = "user"

// APITokenAuth returns an Echo middleware that resolves the X-API-TOKEN
// header to a user record and stores it on the request context.  A missing
// header or a token matching no logged-in user short-circuits the request
// with 401; handlers behind this middleware can rely on CurrentUser.
func APITokenAuth(users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAPIToken)
			if token == "" {
				return apperr.Unauthorized("Unauthorized")
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := users.GetByToken(ctx, token)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return apperr.Unauthorized("Unauthorized")
				}
				return err
			}

			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user placed on the context by
// APITokenAuth. The boolean is false on routes that skipped the middleware.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(userContextKey).(model.User)
	return u, ok
}
