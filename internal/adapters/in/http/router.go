package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const apiPrefix = "/api/"

type pinger interface {
	PingContext(ctx context.Context) error
}

type routerObserver interface {
	requestObserver
	Handler() http.Handler
}

// RouterConfig carries the cross-cutting settings of the HTTP surface.
type RouterConfig struct {
	JWTSecret        []byte
	OperationTimeout time.Duration
}

// NewRouter assembles the echo instance: the generated API routes behind
// authentication and request validation, plus health, metrics and docs.
func NewRouter(
	server *Server,
	db pinger,
	observer routerObserver,
	cfg RouterConfig,
	logger *slog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler(logger)
	e.Validator = NewBodyValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return kernel.NewUUID().String() },
	}))
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(Metrics(observer))
	if cfg.OperationTimeout > 0 {
		e.Use(middleware.ContextTimeout(cfg.OperationTimeout))
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	api := e.Group("", JWTAuth(cfg.JWTSecret, skipNonAPI), validator)
	servers.RegisterHandlers(api, server)

	health := func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			logger.WarnContext(c.Request().Context(), "Health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:    http.StatusServiceUnavailable,
				Message: "store unavailable",
			})
		}
		return c.String(http.StatusOK, "Healthy")
	}
	e.GET("/health", health)
	e.GET("/health-check", health)
	e.GET("/metrics", echo.WrapHandler(observer.Handler()))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.RawSpec())
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	return e, nil
}

func skipNonAPI(c echo.Context) bool {
	return !strings.HasPrefix(c.Request().URL.Path, apiPrefix)
}
