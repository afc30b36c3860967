package helper

import (
	"fmt"
	"strings"
	"time"

	"tradier-trading/internal/dto"
)

const occStrikeMax = 99999999

// OCCSymbol builds the 21-character OCC option symbol: 6 chars of padded
// underlying, YYMMDD expiration, C/P, and the strike in thousandths zero-padded
// to 8 digits, e.g. "AAPL  251219C00175500".
//
// The strike is truncated after the x1000 scale, not rounded; live symbols are
// matched byte-for-byte so the truncation semantics must not change.
func OCCSymbol(underlying, expiration string, optionType dto.OptionType, strike float64) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(underlying))
	if len(symbol) == 0 || len(symbol) > 6 {
		return "", fmt.Errorf("%w: %q", dto.ErrInvalidSymbol, underlying)
	}

	exp, err := time.Parse("2006-01-02", expiration)
	if err != nil {
		return "", fmt.Errorf("%w: %q", dto.ErrInvalidDate, expiration)
	}

	typeChar := byte('P')
	if strings.EqualFold(string(optionType), string(dto.OptionCall)) {
		typeChar = 'C'
	}

	scaled := int64(strike * 1000)
	if scaled < 0 || scaled > occStrikeMax {
		return "", fmt.Errorf("%w: %v", dto.ErrInvalidStrike, strike)
	}

	return fmt.Sprintf("%-6s%s%c%08d", symbol, exp.Format("060102"), typeChar, scaled), nil
}
