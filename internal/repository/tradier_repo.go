package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"tradier-trading/config"
	"tradier-trading/internal/dto"
	"tradier-trading/pkg/httpclient"
	"tradier-trading/pkg/logger"
	"tradier-trading/pkg/utils"

	"golang.org/x/time/rate"
)

// TradierRepository is the broker collaborator: market data in, orders out.
type TradierRepository interface {
	GetHistoricalPrices(ctx context.Context, symbol string, periodDays int) ([]dto.PriceBar, error)
	GetQuote(ctx context.Context, symbol string) (*dto.TradierQuote, error)
	GetOptionExpirations(ctx context.Context, symbol string) ([]string, error)
	GetOptionChain(ctx context.Context, symbol, expiration string) ([]float64, error)
	PlaceOrder(ctx context.Context, payload *dto.OrderPayload) (*dto.OrderResult, error)
}

type tradierRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewTradierRepository creates a new instance of tradierRepository.
func NewTradierRepository(cfg *config.Config, log *logger.Logger) TradierRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Tradier.MaxRequestPerMin)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &tradierRepository{
		httpClient:     httpclient.New(cfg.Tradier.BaseURL, cfg.Tradier.Timeout, cfg.Tradier.AccessToken),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *tradierRepository) GetHistoricalPrices(ctx context.Context, symbol string, periodDays int) ([]dto.PriceBar, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	start, end := utils.HistoryRange(periodDays)
	queryParams := map[string]string{
		"symbol":   symbol,
		"interval": "daily",
		"start":    start,
		"end":      end,
	}

	var historyResp dto.TradierHistoryResponse
	resp, err := r.httpClient.Get(ctx, "/markets/history", queryParams, &historyResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history from tradier: %w", err)
	}
	if !resp.IsSuccess() {
		r.logger.ErrorContext(ctx, "Tradier history returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("tradier history returned status: %d", resp.StatusCode)
	}

	if len(historyResp.History.Day) == 0 {
		return nil, fmt.Errorf("%w: no history for symbol %s", dto.ErrDataUnavailable, symbol)
	}

	bars := make([]dto.PriceBar, 0, len(historyResp.History.Day))
	for _, day := range historyResp.History.Day {
		date, err := utils.ParseAPIDate(day.Date)
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping bar with malformed date",
				logger.StringField("date", day.Date))
			continue
		}
		bars = append(bars, dto.PriceBar{Date: date, Close: day.Close})
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no valid bars for symbol %s", dto.ErrDataUnavailable, symbol)
	}

	return bars, nil
}

func (r *tradierRepository) GetQuote(ctx context.Context, symbol string) (*dto.TradierQuote, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var quotesResp dto.TradierQuotesResponse
	resp, err := r.httpClient.Get(ctx, "/markets/quotes", map[string]string{"symbols": symbol}, &quotesResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote from tradier: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("tradier quotes returned status: %d", resp.StatusCode)
	}

	if len(quotesResp.Quotes.Quote) == 0 {
		return nil, fmt.Errorf("%w: no quote for symbol %s", dto.ErrDataUnavailable, symbol)
	}

	return &quotesResp.Quotes.Quote[0], nil
}

func (r *tradierRepository) GetOptionExpirations(ctx context.Context, symbol string) ([]string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var expResp dto.TradierExpirationsResponse
	resp, err := r.httpClient.Get(ctx, "/markets/options/expirations", map[string]string{"symbol": symbol}, &expResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expirations from tradier: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("tradier expirations returned status: %d", resp.StatusCode)
	}

	if len(expResp.Expirations.Date) == 0 {
		return nil, fmt.Errorf("%w: no expirations for symbol %s", dto.ErrDataUnavailable, symbol)
	}

	return expResp.Expirations.Date, nil
}

func (r *tradierRepository) GetOptionChain(ctx context.Context, symbol, expiration string) ([]float64, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	queryParams := map[string]string{
		"symbol":     symbol,
		"expiration": expiration,
	}

	var chainResp dto.TradierChainResponse
	resp, err := r.httpClient.Get(ctx, "/markets/options/chains", queryParams, &chainResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch option chain from tradier: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("tradier chain returned status: %d", resp.StatusCode)
	}

	if len(chainResp.Options.Option) == 0 {
		return nil, fmt.Errorf("%w: no chain for %s %s", dto.ErrDataUnavailable, symbol, expiration)
	}

	// Calls and puts share strike values; collapse to unique ascending strikes.
	seen := make(map[float64]struct{}, len(chainResp.Options.Option))
	strikes := make([]float64, 0, len(chainResp.Options.Option))
	for _, opt := range chainResp.Options.Option {
		if _, ok := seen[opt.Strike]; ok {
			continue
		}
		seen[opt.Strike] = struct{}{}
		strikes = append(strikes, opt.Strike)
	}
	sort.Float64s(strikes)

	return strikes, nil
}

func (r *tradierRepository) PlaceOrder(ctx context.Context, payload *dto.OrderPayload) (*dto.OrderResult, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/accounts/%s/orders", r.cfg.Tradier.AccountID)
	form := encodeOrderForm(payload)

	var orderResp dto.TradierOrderResponse
	resp, err := r.httpClient.PostForm(ctx, endpoint, form, &orderResp)
	if err != nil {
		return nil, fmt.Errorf("failed to submit order to tradier: %w", err)
	}

	// Rejections come back with a non-2xx status and an errors envelope in the
	// body; recover it so the caller can classify instead of guessing.
	if !resp.IsSuccess() && orderResp.Order == nil && orderResp.Errors == nil {
		if jsonErr := json.Unmarshal(resp.Body, &orderResp); jsonErr != nil {
			r.logger.ErrorContext(ctx, "Tradier order returned undecodable non-OK response",
				logger.IntField("status_code", resp.StatusCode),
				logger.StringField("body", string(resp.Body)))
			return &dto.OrderResult{}, nil
		}
	}

	result := &dto.OrderResult{}
	if orderResp.Order != nil {
		result.Order = &dto.OrderAck{ID: orderResp.Order.ID, Status: orderResp.Order.Status}
	}
	if orderResp.Errors != nil {
		result.Errors = orderResp.Errors.Error
	}

	return result, nil
}

// encodeOrderForm maps the normalized payload onto Tradier's form keys. Prices
// are fixed to two decimals, quantities to integer strings, and multileg legs
// to indexed option_symbol[i]/side[i]/quantity[i] keys.
func encodeOrderForm(payload *dto.OrderPayload) map[string]string {
	form := map[string]string{
		"class":    string(payload.Class),
		"symbol":   payload.Symbol,
		"type":     payload.Type,
		"duration": string(payload.Duration),
	}

	if payload.Side != "" {
		form["side"] = string(payload.Side)
	}
	if payload.Quantity > 0 {
		form["quantity"] = strconv.Itoa(payload.Quantity)
	}
	if payload.OptionSymbol != "" {
		form["option_symbol"] = payload.OptionSymbol
	}
	if payload.Price != nil {
		form["price"] = formatPrice(*payload.Price)
	}
	if payload.Stop != nil {
		form["stop"] = formatPrice(*payload.Stop)
	}

	for i, leg := range payload.Legs {
		form[fmt.Sprintf("option_symbol[%d]", i)] = leg.OptionSymbol
		form[fmt.Sprintf("side[%d]", i)] = string(leg.Side)
		form[fmt.Sprintf("quantity[%d]", i)] = strconv.Itoa(leg.Quantity)
	}

	return form
}

func formatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
