package http

import (
	"log/slog"
	"net/http"

	"takeout/internal/generated/servers"
	"takeout/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const bodyLimit = "10M"

type RouterConfig struct {
	Doc      *openapi3.T
	Metrics  *metrics.ServerMetrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewRouter builds the echo instance serving the API of s together with
// health, metrics and swagger endpoints.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger.With("component", "http")))
	e.Use(middleware.BodyLimit(bodyLimit))
	if cfg.Metrics != nil {
		e.Use(Metrics(cfg.Metrics))
	}
	if cfg.Doc != nil {
		validator, err := RequestValidator(cfg.Doc)
		if err != nil {
			return nil, err
		}
		e.Use(validator)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Gatherer)))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)
	return e, nil
}
