package repository

import (
	"tradier-trading/config"
	"tradier-trading/pkg/logger"
)

type Repository struct {
	TradierRepo TradierRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) *Repository {
	return &Repository{
		TradierRepo: NewTradierRepository(cfg, log),
	}
}
