package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/petcute_backend/internal/service"
)

// RequireLogin resolves the bearer credential and attaches the user and
// token to the echo context. Infrastructure failures are not turned into
// 401s, they bubble up as server errors.
func RequireLogin(svc *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred, ok := bearerCredential(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
			}

			user, token, err := svc.Resolve(c.Request().Context(), cred)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
				}
				return err
			}

			setUserContext(c, user, token)
			return next(c)
		}
	}
}

func bearerCredential(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	cred := strings.TrimSpace(header[len(prefix):])
	return cred, cred != ""
}
