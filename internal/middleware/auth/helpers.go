package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/petcute_backend/internal/models"
)

const (
	userContextKey  = "user"
	tokenContextKey = "accessToken"
)

func setUserContext(c echo.Context, user *models.User, token *models.AccessToken) {
	c.Set(userContextKey, user)
	c.Set(tokenContextKey, token)
}

func CurrentUser(c echo.Context) *models.User {
	if u, ok := c.Get(userContextKey).(*models.User); ok {
		return u
	}
	return nil
}

func CurrentToken(c echo.Context) *models.AccessToken {
	if t, ok := c.Get(tokenContextKey).(*models.AccessToken); ok {
		return t
	}
	return nil
}
