package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// ProductFinder só consulta. Na sincronização de pedidos produto ausente é pulado, nunca criado.
type ProductFinder struct {
	Gateway ERPGateway
	Logger  *zap.Logger
}

func NewProductFinder(gateway ERPGateway, logger *zap.Logger) *ProductFinder {
	return &ProductFinder{Gateway: gateway, Logger: logger}
}

func (f *ProductFinder) Find(ctx context.Context, code string) (*entity.Product, error) {
	product, err := f.Gateway.FindProductByCode(ctx, code)
	if err != nil {
		f.Logger.Error("❌ Erro ao buscar produto", zap.String("default_code", code), zap.Error(err))
		return nil, erpFailure("falha ao buscar produto "+code, err)
	}
	if product == nil {
		f.Logger.Warn("❌ Produto não encontrado", zap.String("default_code", code))
		return nil, &DomainError{Code: CodeProductNotFound, Message: "produto não encontrado: " + code}
	}

	f.Logger.Info("📦 Produto encontrado", zap.String("name", product.Name), zap.Int64("product_id", product.ID))
	return product, nil
}
