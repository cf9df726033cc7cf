package entity

// SaleOrder é o cabeçalho do sale.order. DateOrder já vem no formato do Odoo.
type SaleOrder struct {
	PartnerID      int64
	ClientOrderRef string
	DateOrder      string
}

// SaleOrderLine: sempre uma linha por pedido, quantidade 1.
type SaleOrderLine struct {
	OrderID   int64
	ProductID int64
	Quantity  float64
	PriceUnit float64
	Name      string
}

func NewSaleOrderLine(orderID int64, product Product) SaleOrderLine {
	return SaleOrderLine{
		OrderID:   orderID,
		ProductID: product.ID,
		Quantity:  1,
		PriceUnit: product.ListPrice,
		Name:      product.Name,
	}
}
