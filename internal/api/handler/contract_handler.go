package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vigilia/contracts-api/internal/api/metrics"
	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/ports"
	"github.com/vigilia/contracts-api/internal/ui"
)

// ContractHandler handles the contract lifecycle endpoints.
type ContractHandler struct {
	contracts ports.ContractService
	sessions  app.Store
	guard     SubmitGuard
}

func NewContractHandler(contracts ports.ContractService, sessions app.Store, guard SubmitGuard) *ContractHandler {
	return &ContractHandler{contracts: contracts, sessions: sessions, guard: guard}
}

// Create signs a new contract from the selected services and address. On
// success the session lands on the contract list.
//
// @Summary      Create a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContractRequest  true  "Selected services and address"
// @Success      201   {object}  domain.Contract
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	userID, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	release, err := acquireSubmit(ctx, h.guard, userID, "create_contract")
	if err != nil {
		return err
	}
	defer release()

	sess := loadSession(ctx, h.sessions, userID, email)
	now := time.Now().UTC()

	contract, err := h.contracts.Create(ctx, ports.CreateContractInput{
		UserID:     userID,
		UserEmail:  email,
		ServiceIDs: req.ServiceIDs,
		AddressID:  req.AddressID,
	})
	if err != nil {
		sess.SetNotice("Error al crear contrato", app.NoticeError, now)
		_ = h.sessions.Save(ctx, sess)
		return err
	}

	metrics.ContractsCreatedTotal.Inc()
	sess.SetNotice("Contrato guardado en tu cuenta", app.NoticeSuccess, now)
	sess.Navigate(app.ViewMyContracts)
	_ = h.sessions.Save(ctx, sess)

	return c.JSON(http.StatusCreated, contract)
}

// Renew extends an owned contract by one calendar year.
//
// @Summary      Renew a contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contract id"
// @Success      200  {object}  domain.Contract
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/contracts/{id}/renew [post]
func (h *ContractHandler) Renew(c echo.Context) error {
	userID, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	release, err := acquireSubmit(ctx, h.guard, userID, "renew_contract")
	if err != nil {
		return err
	}
	defer release()

	sess := loadSession(ctx, h.sessions, userID, email)
	now := time.Now().UTC()

	contract, err := h.contracts.Renew(ctx, c.Param("id"), userID)
	if err != nil {
		sess.SetNotice("Error al renovar", app.NoticeError, now)
		_ = h.sessions.Save(ctx, sess)
		return err
	}

	metrics.ContractsRenewedTotal.Inc()
	sess.SetNotice("Renovado exitosamente", app.NoticeSuccess, now)
	sess.Navigate(app.ViewMyContracts)
	_ = h.sessions.Save(ctx, sess)

	return c.JSON(http.StatusOK, contract)
}

// Delete removes an owned contract.
//
// @Summary      Delete a contract
// @Tags         contracts
// @Security     BearerAuth
// @Param        id   path  string  true  "Contract id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/contracts/{id} [delete]
func (h *ContractHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.contracts.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Details renders the contract-details overlay as plain text.
//
// @Summary      Contract details screen
// @Tags         contracts
// @Produce      plain
// @Security     BearerAuth
// @Param        id   path  string  true  "Contract id"
// @Success      200  {string}  string
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/contracts/{id}/screen [get]
func (h *ContractHandler) Details(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	contract, err := h.contracts.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, ui.ContractDetails(contract))
}
