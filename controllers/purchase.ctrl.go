package controllers

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/openmarket/markethub/currency"
	"github.com/openmarket/markethub/lib/responses"
	"github.com/openmarket/markethub/lib/service"
)

// PurchaseController : Purchase controller struct
type PurchaseController struct {
	svc *service.MarketService
}

func NewPurchaseController(svc *service.MarketService) *PurchaseController {
	return &PurchaseController{svc: svc}
}

type PurchaseRequestBody struct {
	AssetID  string `json:"asset_id" validate:"required"`
	SellerID string `json:"seller_id" validate:"required"`
	Quantity uint64 `json:"quantity" validate:"required"`
}

type PurchaseResponseBody struct {
	AssetID           string `json:"asset_id"`
	SellerID          string `json:"seller_id"`
	Quantity          uint64 `json:"quantity"`
	TotalPaid         int64  `json:"total_paid"`
	FullFill          bool   `json:"full_fill"`
	RemainingQuantity uint64 `json:"remaining_quantity"`
}

// Purchase godoc
// @Summary      Buy from a listing
// @Description  Buy a quantity of an asset from a seller's listing, settling payment and delivery
// @Accept       json
// @Produce      json
// @Tags         Purchase
// @Param        PurchaseRequest  body      PurchaseRequestBody  True  "Purchase to settle"
// @Success      200              {object}  PurchaseResponseBody
// @Failure      400              {object}  responses.ErrorResponse
// @Failure      500              {object}  responses.ErrorResponse
// @Router       /v2/purchases [post]
// @Security     OAuth2Password
func (controller *PurchaseController) Purchase(c echo.Context) error {
	accountID := c.Get("AccountID").(string)
	reqBody := PurchaseRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load purchase request body: account_id:%v error: %v", accountID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid purchase request body account_id:%v error: %v", accountID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	result, err := controller.svc.Purchase(c.Request().Context(), accountID, reqBody.AssetID, reqBody.SellerID, reqBody.Quantity)
	if err != nil {
		if resp := saleErrorResponse(err); resp != nil {
			c.Logger().Errorf("Rejected purchase account_id:%v asset_id:%v seller_id:%v error: %v", accountID, reqBody.AssetID, reqBody.SellerID, err)
			return c.JSON(resp.HttpStatusCode, resp)
		}
		c.Logger().Errorf("Purchase failed account_id:%v asset_id:%v seller_id:%v error: %v", accountID, reqBody.AssetID, reqBody.SellerID, err)
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetExtra("asset_id", reqBody.AssetID)
				scope.SetExtra("seller_id", reqBody.SellerID)
				hub.CaptureException(err)
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   true,
			"code":    10,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, &PurchaseResponseBody{
		AssetID:           reqBody.AssetID,
		SellerID:          reqBody.SellerID,
		Quantity:          result.Quantity,
		TotalPaid:         result.TotalPaid,
		FullFill:          result.FullFill,
		RemainingQuantity: result.Listing.Quantity,
	})
}

// saleErrorResponse maps the sale error kinds to their response bodies. A nil
// return means the error is not a rejection of the caller's arguments.
func saleErrorResponse(err error) *responses.ErrorResponse {
	switch {
	case errors.Is(err, service.ErrZeroAmount):
		return &responses.ZeroAmountError
	case errors.Is(err, service.ErrNotEnoughOwned):
		return &responses.NotEnoughOwnedError
	case errors.Is(err, service.ErrNotEnoughInSale):
		return &responses.NotEnoughInSaleError
	case errors.Is(err, service.ErrConversion):
		return &responses.ConversionError
	case errors.Is(err, currency.ErrInsufficientFunds):
		return &responses.NotEnoughBalanceError
	case errors.Is(err, currency.ErrBalanceTooLow):
		return &responses.BalanceTooLowError
	}
	return nil
}
