package usecase

import (
	"context"

	"github.com/xavierca1/odoo-sync/internal/entity"
	"github.com/xavierca1/odoo-sync/internal/infra/queue"
)

// SourceRepository lê as tabelas do Supabase. Sempre a coleção inteira.
type SourceRepository interface {
	ListPackages(ctx context.Context) ([]entity.PackageRow, error)
	ListOrders(ctx context.Context) ([]entity.OrderRow, error)
}

// ERPGateway são as operações que o job faz no Odoo. Buscas retornam zero/nil quando não
// encontram nada; erro é só falha remota.
type ERPGateway interface {
	FindPartnerByEmail(ctx context.Context, email string) (int64, error)
	CreatePartner(ctx context.Context, p entity.Partner) (int64, error)

	FindProductByCode(ctx context.Context, code string) (*entity.Product, error)
	ProductExists(ctx context.Context, code string) (bool, error)
	CreateProduct(ctx context.Context, tpl entity.ProductTemplate) (int64, error)

	FindOrderByRef(ctx context.Context, ref string) (int64, error)
	OrderExists(ctx context.Context, ref string) (bool, error)
	CreateOrder(ctx context.Context, o entity.SaleOrder) (int64, error)
	CreateOrderLine(ctx context.Context, l entity.SaleOrderLine) (int64, error)
}

type EventPublisher interface {
	PublishSyncEvent(ctx context.Context, event queue.SyncEvent) error
}

type MetricsRecorder interface {
	RecordRow(mode, status string)
}
