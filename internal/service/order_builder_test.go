package service

import (
	"testing"

	"tradier-trading/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildEquityPayload(t *testing.T) {
	tests := []struct {
		name    string
		order   *dto.EquityOrder
		wantErr error
		check   func(t *testing.T, payload *dto.OrderPayload)
	}{
		{
			name: "market order needs no prices",
			order: &dto.EquityOrder{
				Symbol: "aapl", Side: dto.SideBuy, Quantity: 10,
				OrderType: dto.OrderTypeMarket, Duration: dto.DurationDay,
			},
			check: func(t *testing.T, payload *dto.OrderPayload) {
				assert.Equal(t, dto.ClassEquity, payload.Class)
				assert.Equal(t, "AAPL", payload.Symbol)
				assert.Equal(t, "market", payload.Type)
				assert.Equal(t, dto.SideBuy, payload.Side)
				assert.Equal(t, 10, payload.Quantity)
				assert.Nil(t, payload.Price)
				assert.Nil(t, payload.Stop)
			},
		},
		{
			name: "stop limit carries both prices",
			order: &dto.EquityOrder{
				Symbol: "TSLA", Side: dto.SideSell, Quantity: 5,
				OrderType: dto.OrderTypeStopLimit, Duration: dto.DurationGTC,
				LimitPrice: floatPtr(249.5), StopPrice: floatPtr(251),
			},
			check: func(t *testing.T, payload *dto.OrderPayload) {
				require.NotNil(t, payload.Price)
				require.NotNil(t, payload.Stop)
				assert.Equal(t, 249.5, *payload.Price)
				assert.Equal(t, 251.0, *payload.Stop)
			},
		},
		{
			name: "limit order without limit price",
			order: &dto.EquityOrder{
				Symbol: "AAPL", Side: dto.SideBuy, Quantity: 10,
				OrderType: dto.OrderTypeLimit, Duration: dto.DurationDay,
			},
			wantErr: dto.ErrMissingRequiredField,
		},
		{
			name: "stop order without stop price",
			order: &dto.EquityOrder{
				Symbol: "AAPL", Side: dto.SideSell, Quantity: 10,
				OrderType: dto.OrderTypeStop, Duration: dto.DurationDay,
			},
			wantErr: dto.ErrMissingRequiredField,
		},
		{
			name: "zero quantity",
			order: &dto.EquityOrder{
				Symbol: "AAPL", Side: dto.SideBuy, Quantity: 0,
				OrderType: dto.OrderTypeMarket, Duration: dto.DurationDay,
			},
			wantErr: dto.ErrMissingRequiredField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := BuildOrderPayload(tt.order)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, payload)
		})
	}
}

func TestBuildSingleOptionPayload(t *testing.T) {
	payload, err := BuildOrderPayload(&dto.SingleOptionOrder{
		Underlying: "aapl", Expiration: "2025-12-19", OptionType: dto.OptionCall,
		Strike: 175.5, Side: dto.SideBuyToOpen, Quantity: 2,
		OrderType: dto.OrderTypeLimit, Duration: dto.DurationDay, LimitPrice: floatPtr(3.1),
	})

	require.NoError(t, err)
	assert.Equal(t, dto.ClassOption, payload.Class)
	assert.Equal(t, "AAPL", payload.Symbol)
	assert.Equal(t, "AAPL  251219C00175500", payload.OptionSymbol)
	assert.Equal(t, dto.SideBuyToOpen, payload.Side)
	assert.Equal(t, 2, payload.Quantity)
	assert.Empty(t, payload.Legs)
}

func TestBuildSingleOptionPayload_PropagatesEncodingError(t *testing.T) {
	_, err := BuildOrderPayload(&dto.SingleOptionOrder{
		Underlying: "AAPL", Expiration: "not-a-date", OptionType: dto.OptionCall,
		Strike: 175.5, Side: dto.SideBuyToOpen, Quantity: 1,
		OrderType: dto.OrderTypeMarket, Duration: dto.DurationDay,
	})

	assert.ErrorIs(t, err, dto.ErrInvalidDate)
}

func TestBuildVerticalSpreadPayload_LegOrder(t *testing.T) {
	// The short leg always sits at index 0 with sell_to_open and the long leg
	// at index 1 with buy_to_open, whether the spread is a credit or a debit.
	for _, netType := range []dto.NetType{dto.NetCredit, dto.NetDebit} {
		t.Run(string(netType), func(t *testing.T) {
			payload, err := BuildOrderPayload(&dto.VerticalSpreadOrder{
				Underlying: "TSLA", Expiration: "2024-01-05", SpreadType: dto.OptionPut,
				ShortStrike: 240, LongStrike: 235, Quantity: 3,
				NetType: netType, Duration: dto.DurationDay, LimitPrice: 1.25,
			})

			require.NoError(t, err)
			assert.Equal(t, dto.ClassMultileg, payload.Class)
			assert.Equal(t, string(netType), payload.Type)
			require.Len(t, payload.Legs, 2)

			assert.Equal(t, "TSLA  240105P00240000", payload.Legs[0].OptionSymbol)
			assert.Equal(t, dto.SideSellToOpen, payload.Legs[0].Side)
			assert.Equal(t, "TSLA  240105P00235000", payload.Legs[1].OptionSymbol)
			assert.Equal(t, dto.SideBuyToOpen, payload.Legs[1].Side)

			for _, leg := range payload.Legs {
				assert.Equal(t, 3, leg.Quantity)
			}
		})
	}
}

func TestBuildIronCondorPayload(t *testing.T) {
	payload, err := BuildOrderPayload(&dto.IronCondorOrder{
		Underlying: "SPY", Expiration: "2025-03-21",
		LongPutStrike: 470, ShortPutStrike: 480, ShortCallStrike: 520, LongCallStrike: 530,
		Quantity: 1, Duration: dto.DurationGTC, LimitPrice: 2.4,
	})

	require.NoError(t, err)
	assert.Equal(t, string(dto.NetCredit), payload.Type)
	require.Len(t, payload.Legs, 4)

	wantSides := []dto.OrderSide{dto.SideBuyToOpen, dto.SideSellToOpen, dto.SideSellToOpen, dto.SideBuyToOpen}
	wantSymbols := []string{
		"SPY   250321P00470000",
		"SPY   250321P00480000",
		"SPY   250321C00520000",
		"SPY   250321C00530000",
	}
	for i, leg := range payload.Legs {
		assert.Equal(t, wantSides[i], leg.Side, "leg %d side", i)
		assert.Equal(t, wantSymbols[i], leg.OptionSymbol, "leg %d symbol", i)
		assert.Equal(t, 1, leg.Quantity, "leg %d quantity", i)
	}
}

func TestBuildIronCondorPayload_RejectsUnorderedStrikes(t *testing.T) {
	tests := []struct {
		name    string
		strikes [4]float64
	}{
		{name: "long put above short put", strikes: [4]float64{100, 95, 110, 120}},
		{name: "short call below short put", strikes: [4]float64{90, 95, 94, 120}},
		{name: "equal strikes", strikes: [4]float64{95, 95, 110, 120}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildOrderPayload(&dto.IronCondorOrder{
				Underlying: "SPY", Expiration: "2025-03-21",
				LongPutStrike: tt.strikes[0], ShortPutStrike: tt.strikes[1],
				ShortCallStrike: tt.strikes[2], LongCallStrike: tt.strikes[3],
				Quantity: 1, Duration: dto.DurationDay, LimitPrice: 1,
			})

			assert.ErrorIs(t, err, dto.ErrInvalidStrikeOrder)
		})
	}
}
