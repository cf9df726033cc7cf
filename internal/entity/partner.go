package entity

import "strings"

// Partner é o res.partner do Odoo, identificado pelo email normalizado.
type Partner struct {
	ID    int64
	Name  string
	Email string
}

// NormalizeEmail: trim + minúsculas. É a chave de busca do parceiro.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FallbackName usa a parte local do email quando o pedido não traz nome.
func FallbackName(email string) string {
	normalized := NormalizeEmail(email)
	if i := strings.Index(normalized, "@"); i >= 0 {
		return normalized[:i]
	}
	return normalized
}

// NewPartner aplica a normalização e o nome de fallback.
func NewPartner(email, name string) Partner {
	normalized := NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name = FallbackName(normalized)
	}
	return Partner{Name: name, Email: normalized}
}
