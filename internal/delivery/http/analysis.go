package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tradier-trading/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalysis(base *echo.Group) {
	base.GET("/analysis/:symbol", h.supportResistance)
	base.GET("/options/:symbol/expirations", h.optionExpirations)
	base.GET("/options/:symbol/chain", h.optionChain)
}

func (h *HttpAPIHandler) supportResistance(c echo.Context) error {
	ctx := c.Request().Context()

	symbol := strings.ToUpper(c.Param("symbol"))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("symbol is required"))
	}

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("days must be a positive integer"))
		}
		days = parsed
	}

	result, err := h.service.AnalysisService.SupportResistance(ctx, symbol, days)
	if err != nil {
		if errors.Is(err, dto.ErrDataUnavailable) {
			return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, err.Error(), nil))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to analyze symbol", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("analysis complete", result))
}

func (h *HttpAPIHandler) optionExpirations(c echo.Context) error {
	ctx := c.Request().Context()

	symbol := strings.ToUpper(c.Param("symbol"))
	dates, err := h.service.AnalysisService.OptionExpirations(ctx, symbol)
	if err != nil {
		if errors.Is(err, dto.ErrDataUnavailable) {
			return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, err.Error(), nil))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch expirations", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("expirations fetched", dates))
}

func (h *HttpAPIHandler) optionChain(c echo.Context) error {
	ctx := c.Request().Context()

	symbol := strings.ToUpper(c.Param("symbol"))
	expiration := c.QueryParam("expiration")
	if expiration == "" {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("expiration is required"))
	}

	strikes, err := h.service.AnalysisService.OptionChain(ctx, symbol, expiration)
	if err != nil {
		if errors.Is(err, dto.ErrDataUnavailable) {
			return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, err.Error(), nil))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch option chain", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("chain fetched", strikes))
}
