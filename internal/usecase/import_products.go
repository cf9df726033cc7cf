package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// ImportProductsUseCase cria no Odoo os pacotes Airalo que ainda não existem como produto.
type ImportProductsUseCase struct {
	Source  SourceRepository
	Gateway ERPGateway
	Hooks   Hooks
	Logger  *zap.Logger
}

func NewImportProductsUseCase(source SourceRepository, gateway ERPGateway, hooks Hooks, logger *zap.Logger) *ImportProductsUseCase {
	return &ImportProductsUseCase{
		Source:  source,
		Gateway: gateway,
		Hooks:   hooks,
		Logger:  logger,
	}
}

// Execute só retorna erro quando o lote inteiro não pode seguir (leitura da origem ou
// cancelamento). Falha de uma linha fica no RunSummary.
func (uc *ImportProductsUseCase) Execute(ctx context.Context) (*RunSummary, error) {
	summary := &RunSummary{RunID: uuid.NewString(), Mode: ModeImport, StartedAt: time.Now()}
	log := uc.Logger.With(zap.String("run_id", summary.RunID))
	defer func() { summary.FinishedAt = time.Now() }()

	log.Info("🚀 Importando produtos Airalo do Supabase para o Odoo...")

	packages, err := uc.Source.ListPackages(ctx)
	if err != nil {
		return summary, fmt.Errorf("falha ao ler pacotes do Supabase: %w", err)
	}
	if len(packages) == 0 {
		log.Info("ℹ️ Nenhum pacote encontrado no Supabase")
		return summary, nil
	}
	log.Info(fmt.Sprintf("📦 %d pacotes para processar", len(packages)))

	for _, row := range packages {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		uc.Hooks.record(ctx, log, summary, uc.importRow(ctx, log, row))
	}

	log.Info(fmt.Sprintf("🎉 Import concluído. %d produtos criados.", summary.Created),
		zap.Int("existing", summary.Existing), zap.Int("skipped", summary.Skipped), zap.Int("failed", summary.Failed))
	return summary, nil
}

func (uc *ImportProductsUseCase) importRow(ctx context.Context, log *zap.Logger, row entity.PackageRow) RowResult {
	if err := row.Validate(); err != nil {
		log.Warn("⛔ Pacote incompleto (airalo_id ou name faltando)", zap.Any("row", row), zap.Error(err))
		return skipped(row.AiraloID, CodeMissingFields, err.Error())
	}

	// Uma consulta por linha: outra execução pode ter criado o produto no meio do caminho
	found, err := uc.Gateway.ProductExists(ctx, row.AiraloID)
	if err != nil {
		log.Error("❌ Erro ao verificar produto existente", zap.String("airalo_id", row.AiraloID), zap.Error(err))
		return fromError(row.AiraloID, erpFailure("falha ao verificar produto "+row.AiraloID, err))
	}
	if found {
		log.Info("🔁 Produto já existente", zap.String("airalo_id", row.AiraloID))
		return exists(row.AiraloID, 0)
	}

	tpl := row.ToProductTemplate()
	id, err := uc.Gateway.CreateProduct(ctx, tpl)
	if err != nil {
		log.Error("❌ Erro ao criar produto", zap.String("name", tpl.Name), zap.Error(err))
		return fromError(row.AiraloID, erpFailure("falha ao criar produto "+tpl.Name, err))
	}

	log.Info("✅ Produto criado no Odoo", zap.String("name", tpl.Name), zap.Int64("product_id", id))
	return created(row.AiraloID, id)
}
