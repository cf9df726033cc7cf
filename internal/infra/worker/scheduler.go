package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Job é uma execução completa do lote.
type Job func(ctx context.Context) error

// Scheduler repete o job a cada intervalo até o contexto acabar. As execuções nunca se
// sobrepõem: se uma passar do intervalo, o próximo tick espera ela terminar.
type Scheduler struct {
	interval time.Duration
	logger   *zap.Logger
}

func NewScheduler(interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Run(ctx context.Context, job Job) error {
	s.logger.Info("🕒 Agendador iniciado", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx, job)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("⚠️ Agendador encerrado")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx, job)
		}
	}
}

// runOnce: falha de uma execução não derruba o agendador, a próxima tenta de novo
func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}
	if err := job(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("❌ Execução agendada falhou", zap.Error(err))
	}
}
