package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vigilia/contracts-api/internal/api/metrics"
	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// AuthHandler handles registration, login, and logout. Successful auth
// transitions are published on the broker; the session controller reacts by
// installing or destroying the user's session.
type AuthHandler struct {
	authService ports.AuthService
	broker      *app.Broker
}

func NewAuthHandler(authService ports.AuthService, broker *app.Broker) *AuthHandler {
	return &AuthHandler{authService: authService, broker: broker}
}

// Register creates a new account and signs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	h.broker.Publish(app.AuthEvent{Kind: app.SignedIn, UserID: user.ID, Email: user.Email})

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates an account and returns a JWT.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	h.broker.Publish(app.AuthEvent{Kind: app.SignedIn, UserID: user.ID, Email: user.Email})

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout publishes the sign-out transition so the session controller clears
// all cached state for the user. The JWT itself stays valid until expiry.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	h.broker.Publish(app.AuthEvent{Kind: app.SignedOut, UserID: userID, Email: email})
	return c.NoContent(http.StatusNoContent)
}
