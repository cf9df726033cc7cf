package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// SourceRepository lê airalo_packages/airalo_orders direto no Postgres do Supabase.
type SourceRepository struct {
	DB            *sql.DB
	PackagesTable string
	OrdersTable   string
}

func NewSourceRepository(db *sql.DB, packagesTable, ordersTable string) *SourceRepository {
	return &SourceRepository{DB: db, PackagesTable: packagesTable, OrdersTable: ordersTable}
}

func (r *SourceRepository) ListPackages(ctx context.Context) ([]entity.PackageRow, error) {
	query := fmt.Sprintf(`
		SELECT
			airalo_id::text,
			name,
			region,
			final_price_eur,
			price_eur,
			description,
			data_amount,
			data_unit,
			validity_days
		FROM %s
	`, pq.QuoteIdentifier(r.PackagesTable))

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", r.PackagesTable, err)
	}
	defer rows.Close()

	var packages []entity.PackageRow
	for rows.Next() {
		var (
			airaloID, name, region, description, dataUnit sql.NullString
			finalPrice, price, dataAmount                 decimal.NullDecimal
			validity                                      sql.NullInt64
		)
		if err := rows.Scan(&airaloID, &name, &region, &finalPrice, &price, &description,
			&dataAmount, &dataUnit, &validity); err != nil {
			return nil, fmt.Errorf("erro ao escanear pacote: %w", err)
		}

		row := entity.PackageRow{
			AiraloID:      airaloID.String,
			Name:          name.String,
			Region:        region.String,
			FinalPriceEUR: finalPrice,
			PriceEUR:      price,
			Description:   description.String,
			DataAmount:    dataAmount,
			DataUnit:      dataUnit.String,
		}
		if validity.Valid {
			days := int(validity.Int64)
			row.ValidityDays = &days
		}
		packages = append(packages, row)
	}
	return packages, rows.Err()
}

func (r *SourceRepository) ListOrders(ctx context.Context) ([]entity.OrderRow, error) {
	query := fmt.Sprintf(`
		SELECT
			email,
			prenom,
			nom,
			package_id::text,
			order_id::text,
			created_at
		FROM %s
	`, pq.QuoteIdentifier(r.OrdersTable))

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", r.OrdersTable, err)
	}
	defer rows.Close()

	var orders []entity.OrderRow
	for rows.Next() {
		var (
			email, firstName, lastName, packageID, orderRef sql.NullString
			createdAt                                       sql.NullTime
		)
		if err := rows.Scan(&email, &firstName, &lastName, &packageID, &orderRef, &createdAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		row := entity.OrderRow{
			Email:     email.String,
			FirstName: firstName.String,
			LastName:  lastName.String,
			PackageID: packageID.String,
			OrderRef:  orderRef.String,
		}
		// Mesmo formato que a API REST devolveria
		if createdAt.Valid {
			row.CreatedAt = createdAt.Time.Format(time.RFC3339Nano)
		}
		orders = append(orders, row)
	}
	return orders, rows.Err()
}
