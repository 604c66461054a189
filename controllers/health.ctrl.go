package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/markethub/lib/service"
)

type HealthController struct {
	svc *service.MarketService
}

func NewHealthController(svc *service.MarketService) *HealthController {
	return &HealthController{svc: svc}
}

type HealthResponse struct {
	Result string `json:"result"`
}

// Health godoc
// @Summary      Check system health
// @Description  Check system health
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      200  {object}  HealthResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /health [get]
func (controller *HealthController) Check(c echo.Context) error {
	if controller.svc.DB != nil {
		if err := controller.svc.DB.PingContext(c.Request().Context()); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Result: "OK",
	})
}
