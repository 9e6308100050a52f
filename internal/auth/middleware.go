package auth

import (
	"context"
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
)

const (
	sessionContextKey = "session"
	userContextKey    = "user"
)

// UserLookup resolves the user a session refers to.
type UserLookup interface {
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
}

// RequireSession validates the bearer token and stores the *Session in the echo context.
func RequireSession(sessions *SessionService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  sessionContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return sessions.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, apperr.ErrExpiredToken) {
				return apperr.ErrExpiredToken
			}
			return apperr.ErrInvalidToken
		},
	})
}

// RequireUser confirms the session's user still exists. Must run after RequireSession.
func RequireUser(users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return apperr.ErrInvalidToken
			}
			user, err := users.CurrentUser(c.Request().Context(), session.UserID)
			if err != nil {
				return err
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// SessionFrom returns the verified session stored by RequireSession.
func SessionFrom(c echo.Context) (*Session, bool) {
	s, ok := c.Get(sessionContextKey).(*Session)
	return s, ok && s != nil
}

// UserFrom returns the user stored by RequireUser.
func UserFrom(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(userContextKey).(*model.User)
	return u, ok && u != nil
}
