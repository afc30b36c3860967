package service

import (
	"context"
	"errors"
	"testing"

	"tradier-trading/config"
	"tradier-trading/internal/dto"
	"tradier-trading/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockTradierRepo struct {
	bars        []dto.PriceBar
	quote       *dto.TradierQuote
	expirations []string
	strikes     []float64
	chainErr    error

	placeResult *dto.OrderResult
	placeErr    error
	placeCalls  int
	lastPayload *dto.OrderPayload
}

func (m *mockTradierRepo) GetHistoricalPrices(ctx context.Context, symbol string, periodDays int) ([]dto.PriceBar, error) {
	if m.bars == nil {
		return nil, dto.ErrDataUnavailable
	}
	return m.bars, nil
}

func (m *mockTradierRepo) GetQuote(ctx context.Context, symbol string) (*dto.TradierQuote, error) {
	if m.quote == nil {
		return nil, dto.ErrDataUnavailable
	}
	return m.quote, nil
}

func (m *mockTradierRepo) GetOptionExpirations(ctx context.Context, symbol string) ([]string, error) {
	if m.expirations == nil {
		return nil, dto.ErrDataUnavailable
	}
	return m.expirations, nil
}

func (m *mockTradierRepo) GetOptionChain(ctx context.Context, symbol, expiration string) ([]float64, error) {
	if m.chainErr != nil {
		return nil, m.chainErr
	}
	if m.strikes == nil {
		return nil, dto.ErrDataUnavailable
	}
	return m.strikes, nil
}

func (m *mockTradierRepo) PlaceOrder(ctx context.Context, payload *dto.OrderPayload) (*dto.OrderResult, error) {
	m.placeCalls++
	m.lastPayload = payload
	return m.placeResult, m.placeErr
}

func newTestTradeService(repo *mockTradierRepo) TradeService {
	log := &logger.Logger{Logger: zap.NewNop()}
	return NewTradeService(&config.Config{}, log, repo)
}

func TestTradeService_Submit_Classification(t *testing.T) {
	tests := []struct {
		name        string
		placeResult *dto.OrderResult
		placeErr    error
		want        *dto.ExecutionResult
	}{
		{
			name:        "acknowledgment maps to success",
			placeResult: &dto.OrderResult{Order: &dto.OrderAck{ID: 8042, Status: "ok"}},
			want:        &dto.ExecutionResult{Outcome: dto.OutcomeSuccess, Status: "ok"},
		},
		{
			name:        "error list maps to failure",
			placeResult: &dto.OrderResult{Errors: []string{"quantity exceeds buying power", "market closed"}},
			want: &dto.ExecutionResult{
				Outcome:  dto.OutcomeFailure,
				Messages: []string{"quantity exceeds buying power", "market closed"},
			},
		},
		{
			name:        "neither acknowledgment nor errors is unknown",
			placeResult: &dto.OrderResult{},
			want:        &dto.ExecutionResult{Outcome: dto.OutcomeUnknown},
		},
		{
			name:     "transport failure is unknown",
			placeErr: errors.New("connection reset"),
			want:     &dto.ExecutionResult{Outcome: dto.OutcomeUnknown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTradierRepo{placeResult: tt.placeResult, placeErr: tt.placeErr}
			svc := newTestTradeService(repo)

			got := svc.Submit(context.Background(), &dto.OrderPayload{
				Class: dto.ClassEquity, Symbol: "AAPL", Type: "market", Duration: dto.DurationDay,
			})

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, repo.placeCalls, "the broker must be called exactly once, never retried")
		})
	}
}

func TestTradeService_PlaceStrategyOrder_BuildFailureSkipsBroker(t *testing.T) {
	repo := &mockTradierRepo{}
	svc := newTestTradeService(repo)

	_, err := svc.PlaceStrategyOrder(context.Background(), &dto.IronCondorOrder{
		Underlying: "SPY", Expiration: "2025-03-21",
		LongPutStrike: 100, ShortPutStrike: 95, ShortCallStrike: 110, LongCallStrike: 120,
		Quantity: 1, Duration: dto.DurationDay, LimitPrice: 1,
	})

	assert.ErrorIs(t, err, dto.ErrInvalidStrikeOrder)
	assert.Zero(t, repo.placeCalls, "an invalid order must never reach the broker")
}

func TestTradeService_PlaceStrategyOrder_SubmitsBuiltPayload(t *testing.T) {
	repo := &mockTradierRepo{placeResult: &dto.OrderResult{Order: &dto.OrderAck{ID: 1, Status: "pending"}}}
	svc := newTestTradeService(repo)

	result, err := svc.PlaceStrategyOrder(context.Background(), &dto.VerticalSpreadOrder{
		Underlying: "TSLA", Expiration: "2024-01-05", SpreadType: dto.OptionPut,
		ShortStrike: 240, LongStrike: 235, Quantity: 1,
		NetType: dto.NetCredit, Duration: dto.DurationDay, LimitPrice: 1.25,
	})

	require.NoError(t, err)
	assert.Equal(t, dto.OutcomeSuccess, result.Outcome)
	require.NotNil(t, repo.lastPayload)
	assert.Equal(t, dto.ClassMultileg, repo.lastPayload.Class)
	assert.Len(t, repo.lastPayload.Legs, 2)
}
