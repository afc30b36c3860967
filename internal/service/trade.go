package service

import (
	"context"

	"tradier-trading/config"
	"tradier-trading/internal/dto"
	"tradier-trading/internal/repository"
	"tradier-trading/pkg/logger"
)

type TradeService interface {
	// PlaceStrategyOrder builds the payload for a strategy order and submits
	// it. Build failures are returned as errors before any network call.
	PlaceStrategyOrder(ctx context.Context, order dto.StrategyOrder) (*dto.ExecutionResult, error)

	// Submit sends an already-built payload to the broker exactly once and
	// classifies the response.
	Submit(ctx context.Context, payload *dto.OrderPayload) *dto.ExecutionResult
}

type tradeService struct {
	cfg         *config.Config
	log         *logger.Logger
	tradierRepo repository.TradierRepository
}

func NewTradeService(cfg *config.Config, log *logger.Logger, tradierRepo repository.TradierRepository) TradeService {
	return &tradeService{
		cfg:         cfg,
		log:         log,
		tradierRepo: tradierRepo,
	}
}

func (s *tradeService) PlaceStrategyOrder(ctx context.Context, order dto.StrategyOrder) (*dto.ExecutionResult, error) {
	payload, err := BuildOrderPayload(order)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, payload), nil
}

// Submit never retries: resubmitting an order the broker may already hold is
// unsafe. A transport failure or a response with neither an acknowledgment
// nor an error list stays Unknown.
func (s *tradeService) Submit(ctx context.Context, payload *dto.OrderPayload) *dto.ExecutionResult {
	result, err := s.tradierRepo.PlaceOrder(ctx, payload)
	if err != nil {
		s.log.ErrorContext(ctx, "Order submission transport failure",
			logger.StringField("symbol", payload.Symbol),
			logger.StringField("class", string(payload.Class)),
			logger.ErrorField(err))
		return &dto.ExecutionResult{Outcome: dto.OutcomeUnknown}
	}

	switch {
	case result.Order != nil:
		s.log.InfoContext(ctx, "Order accepted",
			logger.StringField("symbol", payload.Symbol),
			logger.StringField("class", string(payload.Class)),
			logger.IntField("order_id", result.Order.ID),
			logger.StringField("status", result.Order.Status))
		return &dto.ExecutionResult{Outcome: dto.OutcomeSuccess, Status: result.Order.Status}
	case len(result.Errors) > 0:
		s.log.WarnContext(ctx, "Order rejected",
			logger.StringField("symbol", payload.Symbol),
			logger.Field("errors", result.Errors))
		return &dto.ExecutionResult{Outcome: dto.OutcomeFailure, Messages: result.Errors}
	default:
		s.log.WarnContext(ctx, "Order response had neither acknowledgment nor errors",
			logger.StringField("symbol", payload.Symbol))
		return &dto.ExecutionResult{Outcome: dto.OutcomeUnknown}
	}
}
