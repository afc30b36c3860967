package service

import (
	"context"
	"fmt"
	"math"

	"tradier-trading/config"
	"tradier-trading/internal/dto"
	"tradier-trading/internal/repository"
	"tradier-trading/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type AutoTradeService interface {
	// Propose derives credit spread candidates for a symbol from its current
	// price and detected levels. An empty symbol uses the configured default.
	Propose(ctx context.Context, symbol string) (*dto.AutoTradeProposal, error)
}

type autoTradeService struct {
	cfg         *config.Config
	log         *logger.Logger
	analysisSvc AnalysisService
	tradierRepo repository.TradierRepository
	policy      LevelPolicy
}

func NewAutoTradeService(cfg *config.Config, log *logger.Logger, analysisSvc AnalysisService, tradierRepo repository.TradierRepository) AutoTradeService {
	return &autoTradeService{
		cfg:         cfg,
		log:         log,
		analysisSvc: analysisSvc,
		tradierRepo: tradierRepo,
		policy:      NewLevelPolicy(cfg.Analysis),
	}
}

func (s *autoTradeService) Propose(ctx context.Context, symbol string) (*dto.AutoTradeProposal, error) {
	if symbol == "" {
		symbol = s.cfg.AutoTrade.Symbol
	}

	var (
		quote       *dto.TradierQuote
		analysis    *dto.AnalysisResult
		expirations []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quote, err = s.tradierRepo.GetQuote(gctx, symbol)
		return err
	})
	g.Go(func() error {
		var err error
		analysis, err = s.analysisSvc.SupportResistance(gctx, symbol, 0)
		return err
	})
	g.Go(func() error {
		var err error
		expirations, err = s.analysisSvc.OptionExpirations(gctx, symbol)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	proposal := &dto.AutoTradeProposal{
		Symbol:       symbol,
		CurrentPrice: quote.Last,
	}

	width := s.cfg.AutoTrade.SpreadWidth

	// Put credit spread: sell the nearest support under the market, buy one
	// width lower.
	if short, ok := highestBelow(analysis.Supports, quote.Last); ok {
		shortStrike := s.policy.Round(short)
		proposal.PutSpread = &dto.SpreadProposal{
			ShortStrike: shortStrike,
			LongStrike:  shortStrike - width,
		}
	} else {
		proposal.Warnings = append(proposal.Warnings, "no support below the current price")
	}

	// Call credit spread: sell the nearest resistance over the market, buy
	// one width higher.
	if short, ok := lowestAbove(analysis.Resistances, quote.Last); ok {
		shortStrike := s.policy.Round(short)
		proposal.CallSpread = &dto.SpreadProposal{
			ShortStrike: shortStrike,
			LongStrike:  shortStrike + width,
		}
	} else {
		proposal.Warnings = append(proposal.Warnings, "no resistance above the current price")
	}

	idx := s.cfg.AutoTrade.ExpirationIndex
	if idx < len(expirations) {
		proposal.Expiration = expirations[idx]
	} else {
		proposal.Warnings = append(proposal.Warnings,
			fmt.Sprintf("not enough expirations to select index %d", idx))
	}

	if proposal.Expiration != "" {
		s.snapToChain(ctx, proposal)
	}

	s.log.InfoContext(ctx, "AutoTrade proposal complete",
		logger.StringField("symbol", symbol),
		logger.Float64Field("current_price", quote.Last),
		logger.Field("put_spread", proposal.PutSpread),
		logger.Field("call_spread", proposal.CallSpread))

	return proposal, nil
}

// snapToChain aligns proposed strikes with the strikes actually listed for
// the chosen expiration. A chain fetch failure downgrades to a warning; the
// computed strikes are still usable as a starting point.
func (s *autoTradeService) snapToChain(ctx context.Context, proposal *dto.AutoTradeProposal) {
	strikes, err := s.analysisSvc.OptionChain(ctx, proposal.Symbol, proposal.Expiration)
	if err != nil {
		s.log.WarnContext(ctx, "Could not fetch chain to snap strikes",
			logger.StringField("symbol", proposal.Symbol),
			logger.StringField("expiration", proposal.Expiration),
			logger.ErrorField(err))
		proposal.Warnings = append(proposal.Warnings, "proposed strikes not verified against the option chain")
		return
	}

	if proposal.PutSpread != nil {
		proposal.PutSpread.ShortStrike = nearestStrike(strikes, proposal.PutSpread.ShortStrike)
		proposal.PutSpread.LongStrike = nearestStrike(strikes, proposal.PutSpread.LongStrike)
	}
	if proposal.CallSpread != nil {
		proposal.CallSpread.ShortStrike = nearestStrike(strikes, proposal.CallSpread.ShortStrike)
		proposal.CallSpread.LongStrike = nearestStrike(strikes, proposal.CallSpread.LongStrike)
	}
}

// highestBelow returns the largest level strictly below price. Levels are
// ascending.
func highestBelow(levels []float64, price float64) (float64, bool) {
	for i := len(levels) - 1; i >= 0; i-- {
		if levels[i] < price {
			return levels[i], true
		}
	}
	return 0, false
}

// lowestAbove returns the smallest level strictly above price.
func lowestAbove(levels []float64, price float64) (float64, bool) {
	for _, level := range levels {
		if level > price {
			return level, true
		}
	}
	return 0, false
}

func nearestStrike(strikes []float64, target float64) float64 {
	if len(strikes) == 0 {
		return target
	}
	best := strikes[0]
	for _, strike := range strikes[1:] {
		if math.Abs(strike-target) < math.Abs(best-target) {
			best = strike
		}
	}
	return best
}
