package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// OrderCreator cria o sale.order com uma única linha. Sem transação: se a linha falhar depois
// do cabeçalho, o cabeçalho fica no Odoo.
type OrderCreator struct {
	Gateway ERPGateway
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewOrderCreator(gateway ERPGateway, logger *zap.Logger) *OrderCreator {
	return &OrderCreator{Gateway: gateway, Logger: logger, Now: time.Now}
}

// Create devolve o ID do pedido e se ele foi criado agora (false quando já existia).
func (c *OrderCreator) Create(ctx context.Context, partnerID int64, product entity.Product, orderRef, createdAt string) (int64, bool, error) {
	existing, err := c.Gateway.FindOrderByRef(ctx, orderRef)
	if err != nil {
		c.Logger.Error("❌ Erro ao verificar pedido existente", zap.String("ref", orderRef), zap.Error(err))
		return 0, false, erpFailure("falha ao verificar pedido "+orderRef, err)
	}
	if existing != 0 {
		c.Logger.Info("📋 Pedido já existe", zap.String("ref", orderRef), zap.Int64("order_id", existing))
		return existing, false, nil
	}

	orderID, err := c.Gateway.CreateOrder(ctx, entity.SaleOrder{
		PartnerID:      partnerID,
		ClientOrderRef: orderRef,
		DateOrder:      FormatOdooDatetime(createdAt, c.Now()),
	})
	if err != nil {
		c.Logger.Error("❌ Erro ao criar pedido", zap.String("ref", orderRef), zap.Error(err))
		return 0, false, erpFailure("falha ao criar pedido "+orderRef, err)
	}

	if _, err := c.Gateway.CreateOrderLine(ctx, entity.NewSaleOrderLine(orderID, product)); err != nil {
		c.Logger.Error("❌ Pedido criado sem linha",
			zap.String("ref", orderRef), zap.Int64("order_id", orderID), zap.Error(err))
		return 0, false, erpFailure("falha ao criar linha do pedido "+orderRef, err)
	}

	c.Logger.Info("📋 Pedido criado", zap.Int64("order_id", orderID), zap.String("ref", orderRef))
	return orderID, true, nil
}
