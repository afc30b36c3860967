package service

import (
	"context"
	"fmt"

	"tradier-trading/config"
	"tradier-trading/internal/dto"
	"tradier-trading/internal/repository"
	"tradier-trading/pkg/cache"
	"tradier-trading/pkg/common"
	"tradier-trading/pkg/logger"
)

type AnalysisService interface {
	// SupportResistance detects support and resistance levels from the daily
	// close history of a symbol. days <= 0 falls back to the configured range.
	SupportResistance(ctx context.Context, symbol string, days int) (*dto.AnalysisResult, error)

	OptionExpirations(ctx context.Context, symbol string) ([]string, error)
	OptionChain(ctx context.Context, symbol, expiration string) ([]float64, error)
}

type analysisService struct {
	cfg         *config.Config
	log         *logger.Logger
	cache       cache.Cache
	tradierRepo repository.TradierRepository
	policy      LevelPolicy
}

func NewAnalysisService(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, tradierRepo repository.TradierRepository) AnalysisService {
	return &analysisService{
		cfg:         cfg,
		log:         log,
		cache:       inmemoryCache,
		tradierRepo: tradierRepo,
		policy:      NewLevelPolicy(cfg.Analysis),
	}
}

func (s *analysisService) SupportResistance(ctx context.Context, symbol string, days int) (*dto.AnalysisResult, error) {
	if days <= 0 {
		days = s.cfg.Analysis.HistoryDays
	}

	bars, err := s.history(ctx, symbol, days)
	if err != nil {
		return nil, err
	}

	supports, resistances := DetectLevels(bars, s.policy)

	result := &dto.AnalysisResult{
		Symbol:      symbol,
		Bars:        len(bars),
		Supports:    supports,
		Resistances: resistances,
	}
	if len(bars) > 0 {
		result.LastClose = bars[len(bars)-1].Close
	}

	s.log.InfoContext(ctx, "Support/resistance analysis complete",
		logger.StringField("symbol", symbol),
		logger.IntField("bars", len(bars)),
		logger.IntField("supports", len(supports)),
		logger.IntField("resistances", len(resistances)))

	return result, nil
}

func (s *analysisService) OptionExpirations(ctx context.Context, symbol string) ([]string, error) {
	key := fmt.Sprintf(common.KEY_EXPIRATIONS, symbol)
	if cached, found := s.cache.Get(key); found {
		if dates, ok := cached.([]string); ok {
			return dates, nil
		}
	}

	dates, err := s.tradierRepo.GetOptionExpirations(ctx, symbol)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, dates, s.cfg.Cache.DefaultExpiration)
	return dates, nil
}

func (s *analysisService) OptionChain(ctx context.Context, symbol, expiration string) ([]float64, error) {
	key := fmt.Sprintf(common.KEY_CHAIN, symbol, expiration)
	if cached, found := s.cache.Get(key); found {
		if strikes, ok := cached.([]float64); ok {
			return strikes, nil
		}
	}

	strikes, err := s.tradierRepo.GetOptionChain(ctx, symbol, expiration)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, strikes, s.cfg.Cache.DefaultExpiration)
	return strikes, nil
}

func (s *analysisService) history(ctx context.Context, symbol string, days int) ([]dto.PriceBar, error) {
	key := fmt.Sprintf(common.KEY_HISTORY, symbol, days)
	if cached, found := s.cache.Get(key); found {
		if bars, ok := cached.([]dto.PriceBar); ok {
			return bars, nil
		}
	}

	bars, err := s.tradierRepo.GetHistoricalPrices(ctx, symbol, days)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, bars, s.cfg.Cache.DefaultExpiration)
	return bars, nil
}
