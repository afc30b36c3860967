package http

import (
	"context"

	"tradier-trading/internal/service"
	"tradier-trading/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(middleware.NewRateLimiterMiddleware())

	base := h.echo.Group("/api")
	h.SetupAnalysis(base)
	h.SetupOrders(base)
	h.SetupAutoTrade(base)
}
