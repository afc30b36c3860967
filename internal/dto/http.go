package dto

import "net/http"

type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusBadRequest, message, nil)
}

func NewSuccessResponse(message string, data interface{}) *BaseResponse {
	return NewBaseResponse(http.StatusOK, message, data)
}

type EquityOrderRequest struct {
	Symbol     string   `json:"symbol" validate:"required,max=6"`
	Side       string   `json:"side" validate:"required,oneof=buy sell"`
	Quantity   int      `json:"quantity" validate:"required,gt=0"`
	OrderType  string   `json:"order_type" validate:"required,oneof=market limit stop stop_limit"`
	Duration   string   `json:"duration" validate:"required,oneof=day gtc"`
	LimitPrice *float64 `json:"limit_price,omitempty"`
	StopPrice  *float64 `json:"stop_price,omitempty"`
}

type SingleOptionOrderRequest struct {
	Underlying string   `json:"underlying" validate:"required,max=6"`
	Expiration string   `json:"expiration" validate:"required"`
	OptionType string   `json:"option_type" validate:"required,oneof=call put"`
	Strike     float64  `json:"strike" validate:"required,gt=0"`
	Side       string   `json:"side" validate:"required,oneof=buy_to_open buy_to_close sell_to_open sell_to_close"`
	Quantity   int      `json:"quantity" validate:"required,gt=0"`
	OrderType  string   `json:"order_type" validate:"required,oneof=market limit"`
	Duration   string   `json:"duration" validate:"required,oneof=day gtc"`
	LimitPrice *float64 `json:"limit_price,omitempty"`
}

type VerticalSpreadOrderRequest struct {
	Underlying  string  `json:"underlying" validate:"required,max=6"`
	Expiration  string  `json:"expiration" validate:"required"`
	SpreadType  string  `json:"spread_type" validate:"required,oneof=call put"`
	ShortStrike float64 `json:"short_strike" validate:"required,gt=0"`
	LongStrike  float64 `json:"long_strike" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	NetType     string  `json:"net_type" validate:"required,oneof=credit debit"`
	Duration    string  `json:"duration" validate:"required,oneof=day gtc"`
	LimitPrice  float64 `json:"limit_price" validate:"required,gt=0"`
}

type IronCondorOrderRequest struct {
	Underlying      string  `json:"underlying" validate:"required,max=6"`
	Expiration      string  `json:"expiration" validate:"required"`
	LongPutStrike   float64 `json:"long_put_strike" validate:"required,gt=0"`
	ShortPutStrike  float64 `json:"short_put_strike" validate:"required,gt=0"`
	ShortCallStrike float64 `json:"short_call_strike" validate:"required,gt=0"`
	LongCallStrike  float64 `json:"long_call_strike" validate:"required,gt=0"`
	Quantity        int     `json:"quantity" validate:"required,gt=0"`
	Duration        string  `json:"duration" validate:"required,oneof=day gtc"`
	LimitPrice      float64 `json:"limit_price" validate:"required,gt=0"`
}

type AutoTradeRequest struct {
	Symbol string `json:"symbol,omitempty" validate:"omitempty,max=6"`
}
