package entity

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingPackageID   = errors.New("airalo_id ausente")
	ErrMissingPackageName = errors.New("name ausente")
)

// PackageRow é uma linha da tabela airalo_packages. Só leitura.
type PackageRow struct {
	AiraloID      string              `json:"airalo_id"`
	Name          string              `json:"name"`
	Region        string              `json:"region"`
	FinalPriceEUR decimal.NullDecimal `json:"final_price_eur"`
	PriceEUR      decimal.NullDecimal `json:"price_eur"`
	Description   string              `json:"description"`
	DataAmount    decimal.NullDecimal `json:"data_amount"`
	DataUnit      string              `json:"data_unit"`
	ValidityDays  *int                `json:"validity_days"`
}

func (p PackageRow) Validate() error {
	if strings.TrimSpace(p.AiraloID) == "" {
		return ErrMissingPackageID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingPackageName
	}
	return nil
}

// DisplayName: "1GB Europe [EU]", ou só o nome quando não há região.
func (p PackageRow) DisplayName() string {
	if p.Region != "" {
		return p.Name + " [" + p.Region + "]"
	}
	return p.Name
}

// FullDescription junta a descrição base, a linha de dados/validade e a região.
// O texto fica em francês porque é o que aparece no catálogo do Odoo.
func (p PackageRow) FullDescription() string {
	desc := p.Description
	if line := p.dataLine(); line != "" {
		desc += "\n" + line
	}
	desc = strings.TrimSpace(desc)

	if p.Region != "" {
		desc += "\nRégion : " + p.Region
	}
	return desc
}

func (p PackageRow) dataLine() string {
	if !p.DataAmount.Valid || p.ValidityDays == nil {
		return ""
	}
	amount := p.DataAmount.Decimal.String()
	if p.DataUnit != "" {
		amount += " " + p.DataUnit
	}
	return amount + " pour " + strconv.Itoa(*p.ValidityDays) + " jours"
}

// ResolvedPrice: preço final (com desconto), senão preço base, senão zero.
// Zero conta como ausente.
func (p PackageRow) ResolvedPrice() decimal.Decimal {
	if p.FinalPriceEUR.Valid && !p.FinalPriceEUR.Decimal.IsZero() {
		return p.FinalPriceEUR.Decimal
	}
	if p.PriceEUR.Valid && !p.PriceEUR.Decimal.IsZero() {
		return p.PriceEUR.Decimal
	}
	return decimal.Zero
}

// ToProductTemplate monta os valores de criação do product.product.
func (p PackageRow) ToProductTemplate() ProductTemplate {
	return ProductTemplate{
		Name:        p.DisplayName(),
		DefaultCode: p.AiraloID,
		ListPrice:   p.ResolvedPrice(),
		Type:        ProductTypeService,
		SaleOK:      true,
		PurchaseOK:  false,
		Description: p.FullDescription(),
	}
}
