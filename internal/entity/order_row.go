package entity

import (
	"errors"
	"strings"
)

var (
	ErrMissingEmail      = errors.New("email ausente")
	ErrMissingPackageRef = errors.New("package_id ausente")
	ErrMissingOrderRef   = errors.New("order_id ausente")
)

// OrderRow é uma linha da tabela airalo_orders. O order_id vira o client_order_ref no Odoo.
type OrderRow struct {
	Email     string `json:"email"`
	FirstName string `json:"prenom"`
	LastName  string `json:"nom"`
	PackageID string `json:"package_id"`
	OrderRef  string `json:"order_id"`
	CreatedAt string `json:"created_at"`
}

func (o OrderRow) Validate() error {
	if strings.TrimSpace(o.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(o.PackageID) == "" {
		return ErrMissingPackageRef
	}
	if strings.TrimSpace(o.OrderRef) == "" {
		return ErrMissingOrderRef
	}
	return nil
}

func (o OrderRow) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}
