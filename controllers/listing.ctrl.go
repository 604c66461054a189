package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/markethub/db/models"
	"github.com/openmarket/markethub/lib/responses"
	"github.com/openmarket/markethub/lib/service"
)

// ListingController : Listing controller struct
type ListingController struct {
	svc *service.MarketService
}

func NewListingController(svc *service.MarketService) *ListingController {
	return &ListingController{svc: svc}
}

type PutListingRequestBody struct {
	AssetID   string `json:"asset_id" validate:"required"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
	Quantity  uint64 `json:"quantity" validate:"required"`
}

type ListingResponse struct {
	AssetID   string    `json:"asset_id"`
	SellerID  string    `json:"seller_id"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  uint64    `json:"quantity"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func newListingResponse(listing models.Listing) ListingResponse {
	return ListingResponse{
		AssetID:   listing.AssetID,
		SellerID:  listing.SellerID,
		UnitPrice: listing.UnitPrice,
		Quantity:  listing.Quantity,
		CreatedAt: listing.CreatedAt,
	}
}

// PutListing godoc
// @Summary      Put an asset up for sale
// @Description  Offer a quantity of an asset at a unit price, replacing any prior offer for the same asset
// @Accept       json
// @Produce      json
// @Tags         Listing
// @Param        PutListingRequest  body      PutListingRequestBody  True  "Listing to create"
// @Success      200                {object}  ListingResponse
// @Failure      400                {object}  responses.ErrorResponse
// @Failure      500                {object}  responses.ErrorResponse
// @Router       /v2/listings [post]
// @Security     OAuth2Password
func (controller *ListingController) PutListing(c echo.Context) error {
	accountID := c.Get("AccountID").(string)
	reqBody := PutListingRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load listing request body: account_id:%v error: %v", accountID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid listing request body account_id:%v error: %v", accountID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	listing, err := controller.svc.List(c.Request().Context(), accountID, reqBody.AssetID, reqBody.UnitPrice, reqBody.Quantity)
	if err != nil {
		if resp := saleErrorResponse(err); resp != nil {
			c.Logger().Errorf("Rejected listing account_id:%v asset_id:%v error: %v", accountID, reqBody.AssetID, err)
			return c.JSON(resp.HttpStatusCode, resp)
		}
		c.Logger().Errorf("Failed to store listing account_id:%v asset_id:%v error: %v", accountID, reqBody.AssetID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, newListingResponse(*listing))
}

// GetListingsForAsset godoc
// @Summary      Retrieve listings for an asset
// @Description  Returns every seller's standing offer for the asset
// @Accept       json
// @Produce      json
// @Tags         Listing
// @Param        asset_id  path      string  true  "Asset ID"
// @Success      200       {object}  []ListingResponse
// @Failure      500       {object}  responses.ErrorResponse
// @Router       /v2/listings/{asset_id} [get]
func (controller *ListingController) GetListingsForAsset(c echo.Context) error {
	assetID := c.Param("asset_id")

	listings, err := controller.svc.ListingsForAsset(c.Request().Context(), assetID)
	if err != nil {
		c.Logger().Errorf("Failed to fetch listings asset_id:%v error: %v", assetID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	response := make([]ListingResponse, len(listings))
	for i, listing := range listings {
		response[i] = newListingResponse(listing)
	}
	return c.JSON(http.StatusOK, response)
}

// GetListing godoc
// @Summary      Retrieve a single listing
// @Description  Returns the seller's offer for the asset. An absent pair reads as a zero-quantity offer.
// @Accept       json
// @Produce      json
// @Tags         Listing
// @Param        asset_id   path      string  true  "Asset ID"
// @Param        seller_id  path      string  true  "Seller account ID"
// @Success      200        {object}  ListingResponse
// @Failure      500        {object}  responses.ErrorResponse
// @Router       /v2/listings/{asset_id}/{seller_id} [get]
func (controller *ListingController) GetListing(c echo.Context) error {
	assetID := c.Param("asset_id")
	sellerID := c.Param("seller_id")

	listing, err := controller.svc.FindListing(c.Request().Context(), assetID, sellerID)
	if err != nil {
		c.Logger().Errorf("Failed to fetch listing asset_id:%v seller_id:%v error: %v", assetID, sellerID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, newListingResponse(listing))
}

// GetMyListings godoc
// @Summary      Retrieve own listings
// @Description  Returns the caller's standing offers across all assets
// @Accept       json
// @Produce      json
// @Tags         Listing
// @Success      200  {object}  []ListingResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/listings [get]
// @Security     OAuth2Password
func (controller *ListingController) GetMyListings(c echo.Context) error {
	accountID := c.Get("AccountID").(string)

	listings, err := controller.svc.ListingsForSeller(c.Request().Context(), accountID)
	if err != nil {
		c.Logger().Errorf("Failed to fetch listings account_id:%v error: %v", accountID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	response := make([]ListingResponse, len(listings))
	for i, listing := range listings {
		response[i] = newListingResponse(listing)
	}
	return c.JSON(http.StatusOK, response)
}
