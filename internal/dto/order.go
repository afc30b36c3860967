package dto

type OrderSide string

const (
	SideBuy         OrderSide = "buy"
	SideSell        OrderSide = "sell"
	SideBuyToOpen   OrderSide = "buy_to_open"
	SideBuyToClose  OrderSide = "buy_to_close"
	SideSellToOpen  OrderSide = "sell_to_open"
	SideSellToClose OrderSide = "sell_to_close"
)

type OrderType string

const (
	OrderTypeMarket    OrderType = "market"
	OrderTypeLimit     OrderType = "limit"
	OrderTypeStop      OrderType = "stop"
	OrderTypeStopLimit OrderType = "stop_limit"
)

type OrderDuration string

const (
	DurationDay OrderDuration = "day"
	DurationGTC OrderDuration = "gtc"
)

type OptionType string

const (
	OptionCall OptionType = "call"
	OptionPut  OptionType = "put"
)

type NetType string

const (
	NetCredit NetType = "credit"
	NetDebit  NetType = "debit"
)

type OrderClass string

const (
	ClassEquity   OrderClass = "equity"
	ClassOption   OrderClass = "option"
	ClassMultileg OrderClass = "multileg"
)

// StrategyOrder is a closed union over the four supported trade shapes. The
// order builder matches it exhaustively; nothing outside this package can add
// a variant.
type StrategyOrder interface {
	isStrategyOrder()
}

type EquityOrder struct {
	Symbol     string
	Side       OrderSide
	Quantity   int
	OrderType  OrderType
	Duration   OrderDuration
	LimitPrice *float64
	StopPrice  *float64
}

type SingleOptionOrder struct {
	Underlying string
	Expiration string
	OptionType OptionType
	Strike     float64
	Side       OrderSide
	Quantity   int
	OrderType  OrderType
	Duration   OrderDuration
	LimitPrice *float64
}

// VerticalSpreadOrder is a two-leg spread of one option type: short leg first,
// long leg second, same expiration and quantity for both.
type VerticalSpreadOrder struct {
	Underlying  string
	Expiration  string
	SpreadType  OptionType
	ShortStrike float64
	LongStrike  float64
	Quantity    int
	NetType     NetType
	Duration    OrderDuration
	LimitPrice  float64
}

// IronCondorOrder is a four-leg credit strategy. Strikes must satisfy
// LongPutStrike < ShortPutStrike < ShortCallStrike < LongCallStrike.
type IronCondorOrder struct {
	Underlying      string
	Expiration      string
	LongPutStrike   float64
	ShortPutStrike  float64
	ShortCallStrike float64
	LongCallStrike  float64
	Quantity        int
	Duration        OrderDuration
	LimitPrice      float64
}

func (*EquityOrder) isStrategyOrder()         {}
func (*SingleOptionOrder) isStrategyOrder()   {}
func (*VerticalSpreadOrder) isStrategyOrder() {}
func (*IronCondorOrder) isStrategyOrder()     {}

type OrderLeg struct {
	OptionSymbol string    `json:"option_symbol"`
	Side         OrderSide `json:"side"`
	Quantity     int       `json:"quantity"`
}

// OrderPayload is the normalized broker-agnostic order description produced by
// the order builder. The wire formatting (form keys, price strings) belongs to
// the broker repository, not here.
type OrderPayload struct {
	Class        OrderClass    `json:"class"`
	Symbol       string        `json:"symbol"`
	Type         string        `json:"type"`
	Duration     OrderDuration `json:"duration"`
	Side         OrderSide     `json:"side,omitempty"`
	Quantity     int           `json:"quantity,omitempty"`
	OptionSymbol string        `json:"option_symbol,omitempty"`
	Price        *float64      `json:"price,omitempty"`
	Stop         *float64      `json:"stop,omitempty"`
	Legs         []OrderLeg    `json:"legs,omitempty"`
}

type ExecutionOutcome string

const (
	OutcomeSuccess ExecutionOutcome = "success"
	OutcomeFailure ExecutionOutcome = "failure"
	OutcomeUnknown ExecutionOutcome = "unknown"
)

// ExecutionResult is the three-way classification of one order submission.
// The broker does not guarantee a single response shape on failure paths, so
// anything without an acknowledgment or an error list stays Unknown.
type ExecutionResult struct {
	Outcome  ExecutionOutcome `json:"outcome"`
	Status   string           `json:"status,omitempty"`
	Messages []string         `json:"messages,omitempty"`
}

// OrderAck is the broker acknowledgment of an accepted order.
type OrderAck struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// OrderResult is the parsed broker response to an order submission: an
// acknowledgment, an error list, or neither.
type OrderResult struct {
	Order  *OrderAck `json:"order,omitempty"`
	Errors []string  `json:"errors,omitempty"`
}
