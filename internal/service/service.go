package service

import (
	"tradier-trading/config"
	"tradier-trading/internal/repository"
	"tradier-trading/pkg/cache"
	"tradier-trading/pkg/logger"
)

type Service struct {
	AnalysisService  AnalysisService
	AutoTradeService AutoTradeService
	TradeService     TradeService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	analysisService := NewAnalysisService(cfg, log, inmemoryCache, repo.TradierRepo)

	return &Service{
		AnalysisService:  analysisService,
		AutoTradeService: NewAutoTradeService(cfg, log, analysisService, repo.TradierRepo),
		TradeService:     NewTradeService(cfg, log, repo.TradierRepo),
	}
}
