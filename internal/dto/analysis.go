package dto

import "time"

// PriceBar is one daily bar of a close series, ordered ascending by date.
type PriceBar struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

type LevelKind string

const (
	LevelSupport    LevelKind = "support"
	LevelResistance LevelKind = "resistance"
)

type Level struct {
	Price float64   `json:"price"`
	Kind  LevelKind `json:"kind"`
}

type AnalysisResult struct {
	Symbol      string    `json:"symbol"`
	LastClose   float64   `json:"last_close"`
	Bars        int       `json:"bars"`
	Supports    []float64 `json:"supports"`
	Resistances []float64 `json:"resistances"`
}

// Levels returns the detected levels of both kinds as one tagged list,
// supports first, each kind ascending.
func (r *AnalysisResult) Levels() []Level {
	levels := make([]Level, 0, len(r.Supports)+len(r.Resistances))
	for _, s := range r.Supports {
		levels = append(levels, Level{Price: s, Kind: LevelSupport})
	}
	for _, rs := range r.Resistances {
		levels = append(levels, Level{Price: rs, Kind: LevelResistance})
	}
	return levels
}

type SpreadProposal struct {
	ShortStrike float64 `json:"short_strike"`
	LongStrike  float64 `json:"long_strike"`
}

// AutoTradeProposal is the analysis-driven trade suggestion: a put credit
// spread anchored under the nearest support and a call credit spread anchored
// over the nearest resistance. Either side can be absent.
type AutoTradeProposal struct {
	Symbol       string          `json:"symbol"`
	CurrentPrice float64         `json:"current_price"`
	Expiration   string          `json:"expiration,omitempty"`
	PutSpread    *SpreadProposal `json:"put_spread,omitempty"`
	CallSpread   *SpreadProposal `json:"call_spread,omitempty"`
	Warnings     []string        `json:"warnings,omitempty"`
}
