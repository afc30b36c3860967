package dto

import (
	"bytes"
	"encoding/json"
)

// Tradier collapses single-element arrays into bare objects and renders empty
// envelopes as the JSON string "null", so every list field below carries a
// tolerant unmarshaler.

type TradierHistoryResponse struct {
	History TradierHistory `json:"history"`
}

type TradierHistory struct {
	Day []TradierDay `json:"day"`
}

type TradierDay struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

func (h *TradierHistory) UnmarshalJSON(b []byte) error {
	if isNullEnvelope(b) {
		return nil
	}
	var full struct {
		Day tradierDayList `json:"day"`
	}
	if err := json.Unmarshal(b, &full); err != nil {
		return err
	}
	h.Day = full.Day
	return nil
}

type tradierDayList []TradierDay

func (d *tradierDayList) UnmarshalJSON(b []byte) error {
	var many []TradierDay
	if err := json.Unmarshal(b, &many); err == nil {
		*d = many
		return nil
	}
	var one TradierDay
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*d = tradierDayList{one}
	return nil
}

type TradierQuotesResponse struct {
	Quotes TradierQuotes `json:"quotes"`
}

type TradierQuotes struct {
	Quote []TradierQuote `json:"quote"`
}

type TradierQuote struct {
	Symbol      string  `json:"symbol"`
	Description string  `json:"description"`
	Last        float64 `json:"last"`
}

func (q *TradierQuotes) UnmarshalJSON(b []byte) error {
	if isNullEnvelope(b) {
		return nil
	}
	var full struct {
		Quote tradierQuoteList `json:"quote"`
	}
	if err := json.Unmarshal(b, &full); err != nil {
		return err
	}
	q.Quote = full.Quote
	return nil
}

type tradierQuoteList []TradierQuote

func (q *tradierQuoteList) UnmarshalJSON(b []byte) error {
	var many []TradierQuote
	if err := json.Unmarshal(b, &many); err == nil {
		*q = many
		return nil
	}
	var one TradierQuote
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*q = tradierQuoteList{one}
	return nil
}

type TradierExpirationsResponse struct {
	Expirations TradierExpirations `json:"expirations"`
}

type TradierExpirations struct {
	Date []string `json:"date"`
}

func (e *TradierExpirations) UnmarshalJSON(b []byte) error {
	if isNullEnvelope(b) {
		return nil
	}
	var full struct {
		Date StringOrList `json:"date"`
	}
	if err := json.Unmarshal(b, &full); err != nil {
		return err
	}
	e.Date = full.Date
	return nil
}

type TradierChainResponse struct {
	Options TradierChain `json:"options"`
}

type TradierChain struct {
	Option []TradierOption `json:"option"`
}

type TradierOption struct {
	Symbol     string  `json:"symbol"`
	Strike     float64 `json:"strike"`
	OptionType string  `json:"option_type"`
}

func (c *TradierChain) UnmarshalJSON(b []byte) error {
	if isNullEnvelope(b) {
		return nil
	}
	var full struct {
		Option tradierOptionList `json:"option"`
	}
	if err := json.Unmarshal(b, &full); err != nil {
		return err
	}
	c.Option = full.Option
	return nil
}

type tradierOptionList []TradierOption

func (o *tradierOptionList) UnmarshalJSON(b []byte) error {
	var many []TradierOption
	if err := json.Unmarshal(b, &many); err == nil {
		*o = many
		return nil
	}
	var one TradierOption
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*o = tradierOptionList{one}
	return nil
}

type TradierOrderResponse struct {
	Order  *TradierOrderAck   `json:"order"`
	Errors *TradierOrderError `json:"errors"`
}

type TradierOrderAck struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

type TradierOrderError struct {
	Error StringOrList `json:"error"`
}

// StringOrList accepts either a JSON string or an array of strings.
type StringOrList []string

func (s *StringOrList) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*s = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*s = StringOrList{one}
	return nil
}

func isNullEnvelope(b []byte) bool {
	t := bytes.TrimSpace(b)
	return bytes.Equal(t, []byte("null")) || bytes.Equal(t, []byte(`"null"`))
}
