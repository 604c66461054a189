package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var ZeroAmountError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "listing quantity must be greater than zero",
	HttpStatusCode: 400,
}

var NotEnoughOwnedError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "seller does not hold enough of the asset",
	HttpStatusCode: 400,
}

var NotEnoughInSaleError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "requested quantity exceeds the quantity on sale",
	HttpStatusCode: 400,
}

var ConversionError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "requested quantity cannot be priced",
	HttpStatusCode: 400,
}

var NotEnoughBalanceError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "not enough balance to settle the purchase",
	HttpStatusCode: 400,
}

var BalanceTooLowError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "purchase would drop the balance below the required minimum",
	HttpStatusCode: 400,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("AccountID", c.Get("AccountID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// auth failures are request noise, not defects; keep them out of sentry
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	m, ok := he.Message.(echo.Map)
	if !ok {
		return true
	}
	return m["code"] != 1
}
