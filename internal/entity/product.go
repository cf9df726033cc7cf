package entity

import "github.com/shopspring/decimal"

const ProductTypeService = "service"

// Product é o que a sincronização de pedidos precisa de um product.product.
type Product struct {
	ID        int64
	Name      string
	ListPrice float64
}

// ProductTemplate são os valores enviados no create do product.product durante o import.
type ProductTemplate struct {
	Name        string
	DefaultCode string
	ListPrice   decimal.Decimal
	Type        string
	SaleOK      bool
	PurchaseOK  bool
	Description string
}
