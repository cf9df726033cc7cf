package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// MissingProductsUseCase lista os package_id dos pedidos que não têm product.product no Odoo.
// Só consulta; serve para rodar o import antes de sincronizar pedidos.
type MissingProductsUseCase struct {
	Source  SourceRepository
	Gateway ERPGateway
	Logger  *zap.Logger
}

func NewMissingProductsUseCase(source SourceRepository, gateway ERPGateway, logger *zap.Logger) *MissingProductsUseCase {
	return &MissingProductsUseCase{
		Source:  source,
		Gateway: gateway,
		Logger:  logger,
	}
}

// Execute devolve os códigos ausentes na ordem em que aparecem nos pedidos, sem repetição.
func (uc *MissingProductsUseCase) Execute(ctx context.Context) ([]string, error) {
	orders, err := uc.Source.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler pedidos do Supabase: %w", err)
	}

	seen := make(map[string]struct{}, len(orders))
	var missing []string
	for _, row := range orders {
		code := strings.TrimSpace(row.PackageID)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		found, err := uc.Gateway.ProductExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("falha ao verificar produto %s: %w", code, err)
		}
		if !found {
			missing = append(missing, code)
		}
	}

	if len(missing) == 0 {
		uc.Logger.Info("✅ Todos os pacotes dos pedidos existem no Odoo", zap.Int("checked", len(seen)))
	} else {
		uc.Logger.Warn("⚠️ Pacotes sem produto no Odoo", zap.Strings("package_ids", missing))
	}
	return missing, nil
}
