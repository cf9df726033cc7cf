package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// PartnerResolver acha o res.partner pelo email ou cria um novo.
type PartnerResolver struct {
	Gateway ERPGateway
	Logger  *zap.Logger
}

func NewPartnerResolver(gateway ERPGateway, logger *zap.Logger) *PartnerResolver {
	return &PartnerResolver{Gateway: gateway, Logger: logger}
}

// Resolve nunca deixa a linha quebrar o lote: todo erro já sai logado e o chamador só pula.
func (r *PartnerResolver) Resolve(ctx context.Context, email, name string) (int64, error) {
	partner := entity.NewPartner(email, name)
	if partner.Email == "" {
		r.Logger.Error("❌ Parceiro sem email, não dá para resolver")
		return 0, &DomainError{Code: CodeMissingEmail, Message: "email é obrigatório para o parceiro"}
	}

	id, err := r.Gateway.FindPartnerByEmail(ctx, partner.Email)
	if err != nil {
		r.Logger.Error("❌ Erro ao buscar parceiro", zap.String("email", partner.Email), zap.Error(err))
		return 0, erpFailure("falha ao buscar parceiro "+partner.Email, err)
	}
	if id != 0 {
		r.Logger.Info("📧 Parceiro existente encontrado", zap.String("email", partner.Email), zap.Int64("partner_id", id))
		return id, nil
	}

	id, err = r.Gateway.CreatePartner(ctx, partner)
	if err != nil {
		r.Logger.Error("❌ Erro ao criar parceiro", zap.String("email", partner.Email), zap.Error(err))
		return 0, erpFailure("falha ao criar parceiro "+partner.Email, err)
	}

	r.Logger.Info("👤 Novo parceiro criado",
		zap.String("name", partner.Name), zap.String("email", partner.Email), zap.Int64("partner_id", id))
	return id, nil
}
