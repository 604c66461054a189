package transport

import (
	"github.com/labstack/echo/v4"

	"github.com/openmarket/markethub/controllers"
	"github.com/openmarket/markethub/lib/service"
)

func RegisterEndpoints(svc *service.MarketService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, logMw echo.MiddlewareFunc) {
	listingCtrl := controllers.NewListingController(svc)
	purchaseCtrl := controllers.NewPurchaseController(svc)
	accountCtrl := controllers.NewAccountController(svc)
	healthCtrl := controllers.NewHealthController(svc)

	e.GET("/health", healthCtrl.Check)

	// the public asset view is hot and read-only, cache it briefly
	cacheClient := CreateCacheClient()
	e.GET("/v2/listings/:asset_id", listingCtrl.GetListingsForAsset, cacheClient.Middleware(), logMw)
	e.GET("/v2/listings/:asset_id/:seller_id", listingCtrl.GetListing, logMw)

	secured.GET("/v2/listings", listingCtrl.GetMyListings)
	secured.POST("/v2/listings", listingCtrl.PutListing)
	securedWithStrictRateLimit.POST("/v2/purchases", purchaseCtrl.Purchase)
	secured.GET("/v2/balance", accountCtrl.Balance)
	secured.GET("/v2/holdings/:asset_id", accountCtrl.Holdings)
}
