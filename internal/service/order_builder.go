package service

import (
	"fmt"
	"strings"

	"tradier-trading/internal/dto"
	"tradier-trading/internal/helper"
)

// BuildOrderPayload maps a validated strategy order onto the normalized
// broker payload. The switch is exhaustive over the closed StrategyOrder
// union; each variant has one build function.
func BuildOrderPayload(order dto.StrategyOrder) (*dto.OrderPayload, error) {
	switch o := order.(type) {
	case *dto.EquityOrder:
		return buildEquityPayload(o)
	case *dto.SingleOptionOrder:
		return buildSingleOptionPayload(o)
	case *dto.VerticalSpreadOrder:
		return buildVerticalSpreadPayload(o)
	case *dto.IronCondorOrder:
		return buildIronCondorPayload(o)
	default:
		return nil, fmt.Errorf("unsupported strategy order type %T", order)
	}
}

func buildEquityPayload(o *dto.EquityOrder) (*dto.OrderPayload, error) {
	if o.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity", dto.ErrMissingRequiredField)
	}
	if o.OrderType == dto.OrderTypeLimit || o.OrderType == dto.OrderTypeStopLimit {
		if o.LimitPrice == nil {
			return nil, fmt.Errorf("%w: limit price for %s order", dto.ErrMissingRequiredField, o.OrderType)
		}
	}
	if o.OrderType == dto.OrderTypeStop || o.OrderType == dto.OrderTypeStopLimit {
		if o.StopPrice == nil {
			return nil, fmt.Errorf("%w: stop price for %s order", dto.ErrMissingRequiredField, o.OrderType)
		}
	}

	return &dto.OrderPayload{
		Class:    dto.ClassEquity,
		Symbol:   strings.ToUpper(o.Symbol),
		Type:     string(o.OrderType),
		Duration: o.Duration,
		Side:     o.Side,
		Quantity: o.Quantity,
		Price:    o.LimitPrice,
		Stop:     o.StopPrice,
	}, nil
}

func buildSingleOptionPayload(o *dto.SingleOptionOrder) (*dto.OrderPayload, error) {
	if o.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity", dto.ErrMissingRequiredField)
	}
	if o.OrderType == dto.OrderTypeLimit && o.LimitPrice == nil {
		return nil, fmt.Errorf("%w: limit price for limit order", dto.ErrMissingRequiredField)
	}

	optionSymbol, err := helper.OCCSymbol(o.Underlying, o.Expiration, o.OptionType, o.Strike)
	if err != nil {
		return nil, err
	}

	return &dto.OrderPayload{
		Class:        dto.ClassOption,
		Symbol:       strings.ToUpper(o.Underlying),
		Type:         string(o.OrderType),
		Duration:     o.Duration,
		Side:         o.Side,
		Quantity:     o.Quantity,
		OptionSymbol: optionSymbol,
		Price:        o.LimitPrice,
	}, nil
}

// buildVerticalSpreadPayload emits the short leg at index 0 (sell to open)
// and the long leg at index 1 (buy to open) for credit and debit spreads
// alike; the net type only selects the broker transaction type.
func buildVerticalSpreadPayload(o *dto.VerticalSpreadOrder) (*dto.OrderPayload, error) {
	if o.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity", dto.ErrMissingRequiredField)
	}

	shortSymbol, err := helper.OCCSymbol(o.Underlying, o.Expiration, o.SpreadType, o.ShortStrike)
	if err != nil {
		return nil, err
	}
	longSymbol, err := helper.OCCSymbol(o.Underlying, o.Expiration, o.SpreadType, o.LongStrike)
	if err != nil {
		return nil, err
	}

	price := o.LimitPrice
	return &dto.OrderPayload{
		Class:    dto.ClassMultileg,
		Symbol:   strings.ToUpper(o.Underlying),
		Type:     string(o.NetType),
		Duration: o.Duration,
		Price:    &price,
		Legs: []dto.OrderLeg{
			{OptionSymbol: shortSymbol, Side: dto.SideSellToOpen, Quantity: o.Quantity},
			{OptionSymbol: longSymbol, Side: dto.SideBuyToOpen, Quantity: o.Quantity},
		},
	}, nil
}

// buildIronCondorPayload emits the four legs in fixed order: long put, short
// put, short call, long call. Always a credit transaction.
func buildIronCondorPayload(o *dto.IronCondorOrder) (*dto.OrderPayload, error) {
	if o.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity", dto.ErrMissingRequiredField)
	}
	if !(o.LongPutStrike < o.ShortPutStrike && o.ShortPutStrike < o.ShortCallStrike && o.ShortCallStrike < o.LongCallStrike) {
		return nil, fmt.Errorf("%w: got %v < %v < %v < %v", dto.ErrInvalidStrikeOrder,
			o.LongPutStrike, o.ShortPutStrike, o.ShortCallStrike, o.LongCallStrike)
	}

	longPut, err := helper.OCCSymbol(o.Underlying, o.Expiration, dto.OptionPut, o.LongPutStrike)
	if err != nil {
		return nil, err
	}
	shortPut, err := helper.OCCSymbol(o.Underlying, o.Expiration, dto.OptionPut, o.ShortPutStrike)
	if err != nil {
		return nil, err
	}
	shortCall, err := helper.OCCSymbol(o.Underlying, o.Expiration, dto.OptionCall, o.ShortCallStrike)
	if err != nil {
		return nil, err
	}
	longCall, err := helper.OCCSymbol(o.Underlying, o.Expiration, dto.OptionCall, o.LongCallStrike)
	if err != nil {
		return nil, err
	}

	price := o.LimitPrice
	return &dto.OrderPayload{
		Class:    dto.ClassMultileg,
		Symbol:   strings.ToUpper(o.Underlying),
		Type:     string(dto.NetCredit),
		Duration: o.Duration,
		Price:    &price,
		Legs: []dto.OrderLeg{
			{OptionSymbol: longPut, Side: dto.SideBuyToOpen, Quantity: o.Quantity},
			{OptionSymbol: shortPut, Side: dto.SideSellToOpen, Quantity: o.Quantity},
			{OptionSymbol: shortCall, Side: dto.SideSellToOpen, Quantity: o.Quantity},
			{OptionSymbol: longCall, Side: dto.SideBuyToOpen, Quantity: o.Quantity},
		},
	}, nil
}
