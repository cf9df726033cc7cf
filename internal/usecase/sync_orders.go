package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// SyncOrdersUseCase leva os pedidos do Supabase para sale.order no Odoo.
type SyncOrdersUseCase struct {
	Source   SourceRepository
	Gateway  ERPGateway
	Partners *PartnerResolver
	Products *ProductFinder
	Orders   *OrderCreator
	Hooks    Hooks
	Logger   *zap.Logger
}

func NewSyncOrdersUseCase(source SourceRepository, gateway ERPGateway, hooks Hooks, logger *zap.Logger) *SyncOrdersUseCase {
	return &SyncOrdersUseCase{
		Source:   source,
		Gateway:  gateway,
		Partners: NewPartnerResolver(gateway, logger),
		Products: NewProductFinder(gateway, logger),
		Orders:   NewOrderCreator(gateway, logger),
		Hooks:    hooks,
		Logger:   logger,
	}
}

func (uc *SyncOrdersUseCase) Execute(ctx context.Context) (*RunSummary, error) {
	summary := &RunSummary{RunID: uuid.NewString(), Mode: ModeSync, StartedAt: time.Now()}
	log := uc.Logger.With(zap.String("run_id", summary.RunID))
	defer func() { summary.FinishedAt = time.Now() }()

	log.Info("⏳ Sincronização Supabase ➝ Odoo...")
	log.Info("📡 Buscando pedidos no Supabase...")

	orders, err := uc.Source.ListOrders(ctx)
	if err != nil {
		return summary, fmt.Errorf("falha ao ler pedidos do Supabase: %w", err)
	}
	if len(orders) == 0 {
		log.Info("ℹ️ Nenhum pedido encontrado no Supabase")
		return summary, nil
	}
	log.Info(fmt.Sprintf("📊 %d pedidos para processar", len(orders)))

	for _, row := range orders {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		uc.Hooks.record(ctx, log, summary, uc.syncRow(ctx, log, row))
	}

	log.Info(fmt.Sprintf("🎉 Sincronização concluída. %d pedidos criados.", summary.Created),
		zap.Int("existing", summary.Existing), zap.Int("skipped", summary.Skipped), zap.Int("failed", summary.Failed))
	return summary, nil
}

func (uc *SyncOrdersUseCase) syncRow(ctx context.Context, log *zap.Logger, row entity.OrderRow) RowResult {
	if err := row.Validate(); err != nil {
		log.Warn("⛔ Dados incompletos", zap.Any("row", row), zap.Error(err))
		return skipped(row.OrderRef, CodeMissingFields, err.Error())
	}

	// Evita duplicar: o OrderCreator confere de novo logo antes do create
	found, err := uc.Gateway.OrderExists(ctx, row.OrderRef)
	if err != nil {
		log.Error("❌ Erro ao verificar pedido existente", zap.String("ref", row.OrderRef), zap.Error(err))
		return fromError(row.OrderRef, erpFailure("falha ao verificar pedido "+row.OrderRef, err))
	}
	if found {
		log.Info("🔁 Pedido já existe no Odoo, ignorado", zap.String("ref", row.OrderRef))
		return exists(row.OrderRef, 0)
	}

	partnerID, err := uc.Partners.Resolve(ctx, row.Email, row.FullName())
	if err != nil {
		return fromError(row.OrderRef, err)
	}

	product, err := uc.Products.Find(ctx, row.PackageID)
	if err != nil {
		return fromError(row.OrderRef, err)
	}

	orderID, isNew, err := uc.Orders.Create(ctx, partnerID, *product, row.OrderRef, row.CreatedAt)
	if err != nil {
		return fromError(row.OrderRef, err)
	}
	if !isNew {
		return exists(row.OrderRef, orderID)
	}

	log.Info("✅ Pedido Odoo criado", zap.Int64("order_id", orderID), zap.String("customer", row.FullName()))
	return created(row.OrderRef, orderID)
}
