package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/infra/queue"
)

// Hooks são os canais laterais de cada linha processada. Todos opcionais.
type Hooks struct {
	Events  EventPublisher
	Metrics MetricsRecorder
}

func (h Hooks) record(ctx context.Context, logger *zap.Logger, summary *RunSummary, r RowResult) {
	summary.Add(r)

	if h.Metrics != nil {
		h.Metrics.RecordRow(summary.Mode, string(r.Status))
	}

	if h.Events == nil {
		return
	}
	event := queue.SyncEvent{
		RunID:      summary.RunID,
		Mode:       summary.Mode,
		Key:        r.Key,
		Status:     string(r.Status),
		Code:       r.Code,
		Reason:     r.Reason,
		OdooID:     r.RemoteID,
		OccurredAt: time.Now().UTC(),
	}
	// Evento perdido não derruba o lote
	if err := h.Events.PublishSyncEvent(ctx, event); err != nil {
		logger.Warn("⚠️ Falha ao publicar evento de sincronização", zap.String("key", r.Key), zap.Error(err))
	}
}
