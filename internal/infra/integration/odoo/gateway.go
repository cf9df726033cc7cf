package odoo

import (
	"context"
	"strings"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// Executor é o que o Gateway precisa do Client (facilita o teste).
type Executor interface {
	ExecuteKw(ctx context.Context, model, method string, args []interface{}, kwargs map[string]interface{}, reply interface{}) error
}

// Gateway traduz as operações da sincronização para search/search_read/create no Odoo.
type Gateway struct {
	exec      Executor
	partnerOp string
}

// NewGateway: partnerMatch "partial" usa ilike (substring); o padrão é
// =ilike, igualdade sem diferenciar maiúsculas.
func NewGateway(exec Executor, partnerMatch string) *Gateway {
	op := "=ilike"
	if partnerMatch == PartnerMatchPartial {
		op = "ilike"
	}
	return &Gateway{exec: exec, partnerOp: op}
}

func (g *Gateway) FindPartnerByEmail(ctx context.Context, email string) (int64, error) {
	value := email
	if g.partnerOp == "=ilike" {
		value = escapeLike(email)
	}

	rows, err := g.searchRead(ctx, ModelPartner, Where(Cond("email", g.partnerOp, value)), []string{"id"}, 1)
	if err != nil || len(rows) == 0 {
		return 0, err
	}
	return asInt64(rows[0]["id"]), nil
}

func (g *Gateway) CreatePartner(ctx context.Context, p entity.Partner) (int64, error) {
	return g.create(ctx, ModelPartner, map[string]interface{}{
		"name":  p.Name,
		"email": p.Email,
	})
}

func (g *Gateway) FindProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	rows, err := g.searchRead(ctx, ModelProduct, Where(Cond("default_code", "=", code)),
		[]string{"id", "name", "list_price"}, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &entity.Product{
		ID:        asInt64(rows[0]["id"]),
		Name:      asString(rows[0]["name"]),
		ListPrice: asFloat64(rows[0]["list_price"]),
	}, nil
}

func (g *Gateway) ProductExists(ctx context.Context, code string) (bool, error) {
	ids, err := g.search(ctx, ModelProduct, Where(Cond("default_code", "=", code)), 1)
	return len(ids) > 0, err
}

func (g *Gateway) CreateProduct(ctx context.Context, tpl entity.ProductTemplate) (int64, error) {
	return g.create(ctx, ModelProduct, map[string]interface{}{
		"name":         tpl.Name,
		"default_code": tpl.DefaultCode,
		"list_price":   tpl.ListPrice.InexactFloat64(),
		"type":         tpl.Type,
		"sale_ok":      tpl.SaleOK,
		"purchase_ok":  tpl.PurchaseOK,
		"description":  tpl.Description,
	})
}

func (g *Gateway) FindOrderByRef(ctx context.Context, ref string) (int64, error) {
	rows, err := g.searchRead(ctx, ModelOrder, Where(Cond("client_order_ref", "=", ref)), []string{"id"}, 1)
	if err != nil || len(rows) == 0 {
		return 0, err
	}
	return asInt64(rows[0]["id"]), nil
}

func (g *Gateway) OrderExists(ctx context.Context, ref string) (bool, error) {
	ids, err := g.search(ctx, ModelOrder, Where(Cond("client_order_ref", "=", ref)), 1)
	return len(ids) > 0, err
}

func (g *Gateway) CreateOrder(ctx context.Context, o entity.SaleOrder) (int64, error) {
	return g.create(ctx, ModelOrder, map[string]interface{}{
		"partner_id":       o.PartnerID,
		"client_order_ref": o.ClientOrderRef,
		"date_order":       o.DateOrder,
	})
}

func (g *Gateway) CreateOrderLine(ctx context.Context, l entity.SaleOrderLine) (int64, error) {
	return g.create(ctx, ModelOrderLine, map[string]interface{}{
		"order_id":        l.OrderID,
		"product_id":      l.ProductID,
		"product_uom_qty": l.Quantity,
		"price_unit":      l.PriceUnit,
		"name":            l.Name,
	})
}

// Count é usado pelo sample de conexão.
func (g *Gateway) Count(ctx context.Context, model string, domain Domain) (int64, error) {
	var n int64
	err := g.exec.ExecuteKw(ctx, model, MethodSearchCount, []interface{}{domain}, nil, &n)
	return n, err
}

func (g *Gateway) searchRead(ctx context.Context, model string, domain Domain, fields []string, limit int) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	kwargs := map[string]interface{}{"fields": fields, "limit": limit}
	if err := g.exec.ExecuteKw(ctx, model, MethodSearchRead, []interface{}{domain}, kwargs, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (g *Gateway) search(ctx context.Context, model string, domain Domain, limit int) ([]int64, error) {
	var ids []int64
	kwargs := map[string]interface{}{"limit": limit}
	if err := g.exec.ExecuteKw(ctx, model, MethodSearch, []interface{}{domain}, kwargs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (g *Gateway) create(ctx context.Context, model string, values map[string]interface{}) (int64, error) {
	var id int64
	if err := g.exec.ExecuteKw(ctx, model, MethodCreate, []interface{}{values}, nil, &id); err != nil {
		return 0, err
	}
	return id, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike evita que '_' e '%' de um email virem curinga no =ilike
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
