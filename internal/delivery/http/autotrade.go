package http

import (
	"errors"
	"net/http"
	"strings"

	"tradier-trading/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAutoTrade(base *echo.Group) {
	autotradeGroup := base.Group("/autotrade")
	autotradeGroup.POST("/propose", h.proposeTrades)
}

func (h *HttpAPIHandler) proposeTrades(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.AutoTradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	proposal, err := h.service.AutoTradeService.Propose(ctx, strings.ToUpper(req.Symbol))
	if err != nil {
		if errors.Is(err, dto.ErrDataUnavailable) {
			return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, err.Error(), nil))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to propose trades", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("proposal complete", proposal))
}
