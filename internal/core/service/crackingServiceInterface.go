package service

import (
	"context"

	"hashcrack/internal/core/domain"
	"hashcrack/internal/port"
)

type CrackingServiceInterface interface {
	Prepare(cfg domain.AttackConfig) (*Attack, error)
	Crack(ctx context.Context, cfg domain.AttackConfig, sink port.StatsSink) (domain.CrackResult, error)
	CrackAll(ctx context.Context, cfgs []domain.AttackConfig) ([]domain.CrackResult, error)
}

var _ CrackingServiceInterface = (*CrackingService)(nil)
