package transport

import (
	"fmt"

	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/ziflex/lecho/v3"

	"github.com/openmarket/markethub/lib/service"
)

// StartPrometheusEcho serves /metrics on its own port while instrumenting
// the main echo instance.
func StartPrometheusEcho(logger *lecho.Logger, svc *service.MarketService, e *echo.Echo) {
	echoPrometheus := echo.New()
	echoPrometheus.HideBanner = true
	echoPrometheus.Logger = logger

	prom := prometheus.NewPrometheus("markethub", nil)
	prom.SetMetricsPath(echoPrometheus)
	e.Use(prom.HandlerFunc)

	echoPrometheus.Logger.Fatal(echoPrometheus.Start(fmt.Sprintf(":%d", svc.Config.PrometheusPort)))
}
