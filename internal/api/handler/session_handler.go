package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vigilia/contracts-api/internal/api/metrics"
	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/domain"
	"github.com/vigilia/contracts-api/internal/core/ports"
	"github.com/vigilia/contracts-api/internal/ui"
)

// SessionHandler exposes the navigation and cart surface of the per-user
// session, plus the rendered current screen.
type SessionHandler struct {
	sessions app.Store
	accounts ports.AccountService
	catalog  ports.CatalogRepository
}

func NewSessionHandler(sessions app.Store, accounts ports.AccountService, catalog ports.CatalogRepository) *SessionHandler {
	return &SessionHandler{sessions: sessions, accounts: accounts, catalog: catalog}
}

// Navigate switches the current view. Entering new-contract resets the cart.
//
// @Summary      Navigate to a view
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      navigateRequest  true  "Target view"
// @Success      200   {object}  navigateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/session/navigate [post]
func (h *SessionHandler) Navigate(c echo.Context) error {
	userID, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view := app.View(req.View)
	if !app.ValidView(view) {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown view %q", req.View))
	}

	ctx := c.Request().Context()
	sess := loadSession(ctx, h.sessions, userID, email)
	sess.Navigate(view)
	if err := h.sessions.Save(ctx, sess); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, navigateResponse{View: sess.View})
}

// ToggleCart flips one service in the cart. The price comes from the
// catalog, never from the client.
//
// @Summary      Toggle a service in the cart
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      toggleCartRequest  true  "Service to toggle"
// @Success      200   {object}  toggleCartResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session/cart/toggle [post]
func (h *SessionHandler) ToggleCart(c echo.Context) error {
	userID, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req toggleCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	sess := loadSession(ctx, h.sessions, userID, email)
	if sess.View != app.ViewNewContract {
		return echo.NewHTTPError(http.StatusConflict, "cart is only available on the new-contract screen")
	}

	services, err := h.catalog.ListServices(ctx)
	if err != nil {
		return err
	}
	var price int64
	found := false
	for _, svc := range services {
		if svc.ID == req.ServiceID {
			price = svc.Price
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrUnknownService, req.ServiceID)
	}

	selected := sess.ToggleService(req.ServiceID, price)
	if err := h.sessions.Save(ctx, sess); err != nil {
		return err
	}

	result := "deselected"
	if selected {
		result = "selected"
	}
	metrics.CartTogglesTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, toggleCartResponse{
		Selected: selected,
		Total:    sess.Cart.Total,
		Services: sess.Cart.ServiceIDs(),
	})
}

// Screen renders the session's current view as plain text.
//
// @Summary      Render the current screen
// @Tags         session
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  errorResponse
// @Router       /v1/session/screen [get]
func (h *SessionHandler) Screen(c echo.Context) error {
	userID, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	snap, err := h.accounts.Snapshot(ctx, userID)
	if err != nil {
		return err
	}

	sess := loadSession(ctx, h.sessions, userID, email)
	return c.String(http.StatusOK, ui.Screen(sess, snap, time.Now().UTC()))
}
