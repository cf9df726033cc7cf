package odoo

const (
	ModelPartner   = "res.partner"
	ModelProduct   = "product.product"
	ModelOrder     = "sale.order"
	ModelOrderLine = "sale.order.line"
)

const (
	MethodSearch      = "search"
	MethodSearchRead  = "search_read"
	MethodCreate      = "create"
	MethodSearchCount = "search_count"
)

const (
	PartnerMatchExact   = "exact"
	PartnerMatchPartial = "partial"
)

// Domain é a lista de filtros do Odoo: [[campo, operador, valor], ...]
type Domain []interface{}

func Cond(field, operator string, value interface{}) []interface{} {
	return []interface{}{field, operator, value}
}

func Where(conds ...[]interface{}) Domain {
	d := make(Domain, 0, len(conds))
	for _, c := range conds {
		d = append(d, c)
	}
	return d
}

// Odoo devolve false no lugar de campos vazios; estes helpers normalizam.

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
