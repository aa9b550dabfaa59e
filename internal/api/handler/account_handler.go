package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vigilia/contracts-api/internal/api/metrics"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// AccountHandler serves the full account snapshot the client renders from.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Overview returns the catalog plus the caller's addresses and contracts.
//
// @Summary      Fetch the account snapshot
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AccountSnapshot
// @Failure      401  {object}  errorResponse
// @Router       /v1/overview [get]
func (h *AccountHandler) Overview(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	start := time.Now()
	snap, err := h.accounts.Snapshot(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	metrics.SnapshotDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, snap)
}
