package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/markethub/lib/responses"
	"github.com/openmarket/markethub/lib/service"
)

// AccountController : Account controller struct
//
// Thin read-only proxies over the external ledgers, so callers can check
// what they hold and what they can spend without talking to the
// collaborators directly.
type AccountController struct {
	svc *service.MarketService
}

func NewAccountController(svc *service.MarketService) *AccountController {
	return &AccountController{svc: svc}
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

type HoldingsResponse struct {
	AssetID  string `json:"asset_id"`
	Quantity uint64 `json:"quantity"`
}

// Balance godoc
// @Summary      Retrieve balance
// @Description  Current account's balance on the currency ledger
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      200  {object}  BalanceResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v2/balance [get]
// @Security     OAuth2Password
func (controller *AccountController) Balance(c echo.Context) error {
	accountID := c.Get("AccountID").(string)
	balance, err := controller.svc.Currency.Balance(c.Request().Context(), accountID)
	if err != nil {
		c.Logger().Errorf("Error fetching balance for account_id:%v error: %v", accountID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, &BalanceResponse{
		Balance: balance,
	})
}

// Holdings godoc
// @Summary      Retrieve asset holdings
// @Description  How much of the asset the current account owns per the ownership registry
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        asset_id  path      string  true  "Asset ID"
// @Success      200       {object}  HoldingsResponse
// @Failure      400       {object}  responses.ErrorResponse
// @Router       /v2/holdings/{asset_id} [get]
// @Security     OAuth2Password
func (controller *AccountController) Holdings(c echo.Context) error {
	accountID := c.Get("AccountID").(string)
	assetID := c.Param("asset_id")
	owned, err := controller.svc.Registry.AmountOwned(c.Request().Context(), assetID, accountID)
	if err != nil {
		c.Logger().Errorf("Error fetching holdings for account_id:%v asset_id:%v error: %v", accountID, assetID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, &HoldingsResponse{
		AssetID:  assetID,
		Quantity: owned,
	})
}
