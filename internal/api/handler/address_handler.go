package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vigilia/contracts-api/internal/api/metrics"
	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// AddressHandler handles address registration.
type AddressHandler struct {
	addresses ports.AddressService
	sessions  app.Store
	guard     SubmitGuard
}

func NewAddressHandler(addresses ports.AddressService, sessions app.Store, guard SubmitGuard) *AddressHandler {
	return &AddressHandler{addresses: addresses, sessions: sessions, guard: guard}
}

// Create registers a new address for the caller. On success the session
// moves to the new-contract screen: a freshly saved address leads straight
// into building a contract for it.
//
// @Summary      Register an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAddressRequest  true  "Address form"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	userID, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	release, err := acquireSubmit(ctx, h.guard, userID, "create_address")
	if err != nil {
		return err
	}
	defer release()

	sess := loadSession(ctx, h.sessions, userID, email)
	now := time.Now().UTC()

	if err := h.addresses.Create(ctx, ports.CreateAddressInput{
		UserID: userID,
		Alias:  req.Alias,
		Street: req.Street,
		City:   req.City,
	}); err != nil {
		sess.SetNotice("Error al guardar direccion", app.NoticeError, now)
		_ = h.sessions.Save(ctx, sess)
		return err
	}

	metrics.AddressesCreatedTotal.Inc()
	sess.SetNotice("Direccion guardada", app.NoticeSuccess, now)
	sess.Navigate(app.ViewNewContract)
	_ = h.sessions.Save(ctx, sess)

	return c.JSON(http.StatusCreated, messageResponse{Message: "address created"})
}
