package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/petcute_backend/internal/middleware/auth"
	"github.com/Skotchmaster/petcute_backend/internal/mykafka"
	"github.com/Skotchmaster/petcute_backend/internal/repo"
	"github.com/Skotchmaster/petcute_backend/internal/service"
	"github.com/Skotchmaster/petcute_backend/internal/transport"
)

type AuthHandler struct {
	Service  *service.AuthService
	Producer *mykafka.Producer
}

func (h *AuthHandler) publish(c echo.Context, key string, event map[string]interface{}) {
	if err := h.Producer.PublishEvent(c.Request().Context(), "user_events", key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fieldError(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.Service.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return fieldError(c, "email", "this email is already registered")
		}
		return err
	}

	h.publish(c, user.Email, map[string]interface{}{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "user registered successfully",
		"user": transport.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fieldError(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.Service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fieldError(c, "email", "the provided credentials are incorrect")
		}
		return err
	}

	h.publish(c, result.User.Email, map[string]interface{}{
		"type":    "user_logged_in",
		"user_id": result.User.ID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "login successful",
		"token":   result.Token,
		"user": transport.UserResponse{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
		},
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	user := auth.CurrentUser(c)
	token := auth.CurrentToken(c)

	if err := h.Service.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	h.publish(c, user.Email, map[string]interface{}{
		"type":    "user_logged_out",
		"user_id": user.ID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "logged out",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, auth.CurrentUser(c))
}
