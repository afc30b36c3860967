package http

import (
	"errors"
	"net/http"

	"tradier-trading/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupOrders(base *echo.Group) {
	ordersGroup := base.Group("/orders")
	ordersGroup.POST("/equity", h.placeEquityOrder)
	ordersGroup.POST("/option", h.placeOptionOrder)
	ordersGroup.POST("/spread", h.placeSpreadOrder)
	ordersGroup.POST("/condor", h.placeCondorOrder)
}

func (h *HttpAPIHandler) placeEquityOrder(c echo.Context) error {
	req := new(dto.EquityOrderRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return h.placeOrder(c, &dto.EquityOrder{
		Symbol:     req.Symbol,
		Side:       dto.OrderSide(req.Side),
		Quantity:   req.Quantity,
		OrderType:  dto.OrderType(req.OrderType),
		Duration:   dto.OrderDuration(req.Duration),
		LimitPrice: req.LimitPrice,
		StopPrice:  req.StopPrice,
	})
}

func (h *HttpAPIHandler) placeOptionOrder(c echo.Context) error {
	req := new(dto.SingleOptionOrderRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return h.placeOrder(c, &dto.SingleOptionOrder{
		Underlying: req.Underlying,
		Expiration: req.Expiration,
		OptionType: dto.OptionType(req.OptionType),
		Strike:     req.Strike,
		Side:       dto.OrderSide(req.Side),
		Quantity:   req.Quantity,
		OrderType:  dto.OrderType(req.OrderType),
		Duration:   dto.OrderDuration(req.Duration),
		LimitPrice: req.LimitPrice,
	})
}

func (h *HttpAPIHandler) placeSpreadOrder(c echo.Context) error {
	req := new(dto.VerticalSpreadOrderRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return h.placeOrder(c, &dto.VerticalSpreadOrder{
		Underlying:  req.Underlying,
		Expiration:  req.Expiration,
		SpreadType:  dto.OptionType(req.SpreadType),
		ShortStrike: req.ShortStrike,
		LongStrike:  req.LongStrike,
		Quantity:    req.Quantity,
		NetType:     dto.NetType(req.NetType),
		Duration:    dto.OrderDuration(req.Duration),
		LimitPrice:  req.LimitPrice,
	})
}

func (h *HttpAPIHandler) placeCondorOrder(c echo.Context) error {
	req := new(dto.IronCondorOrderRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return h.placeOrder(c, &dto.IronCondorOrder{
		Underlying:      req.Underlying,
		Expiration:      req.Expiration,
		LongPutStrike:   req.LongPutStrike,
		ShortPutStrike:  req.ShortPutStrike,
		ShortCallStrike: req.ShortCallStrike,
		LongCallStrike:  req.LongCallStrike,
		Quantity:        req.Quantity,
		Duration:        dto.OrderDuration(req.Duration),
		LimitPrice:      req.LimitPrice,
	})
}

func (h *HttpAPIHandler) placeOrder(c echo.Context, order dto.StrategyOrder) error {
	ctx := c.Request().Context()

	result, err := h.service.TradeService.PlaceStrategyOrder(ctx, order)
	if err != nil {
		if isOrderValidationError(err) {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to place order", nil))
	}

	switch result.Outcome {
	case dto.OutcomeSuccess:
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("order submitted", result))
	case dto.OutcomeFailure:
		return c.JSON(http.StatusUnprocessableEntity, dto.NewBaseResponse(http.StatusUnprocessableEntity, "order rejected", result))
	default:
		return c.JSON(http.StatusBadGateway, dto.NewBaseResponse(http.StatusBadGateway, "order outcome unknown", result))
	}
}

func isOrderValidationError(err error) bool {
	return errors.Is(err, dto.ErrMissingRequiredField) ||
		errors.Is(err, dto.ErrInvalidStrikeOrder) ||
		errors.Is(err, dto.ErrInvalidSymbol) ||
		errors.Is(err, dto.ErrInvalidDate) ||
		errors.Is(err, dto.ErrInvalidStrike)
}
