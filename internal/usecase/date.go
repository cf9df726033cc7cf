package usecase

import (
	"strings"
	"time"
)

// OdooDatetimeLayout é o formato dos campos Datetime do Odoo (sempre UTC, sem fuso).
const OdooDatetimeLayout = "2006-01-02 15:04:05"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatOdooDatetime converte um ISO-8601 (com ou sem 'Z'/offset) para o formato do Odoo.
// Com offset, converte para UTC. Vazio ou inválido: usa now.
func FormatOdooDatetime(iso string, now time.Time) string {
	iso = strings.TrimSpace(iso)
	if iso != "" {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, iso); err == nil {
				return t.UTC().Format(OdooDatetimeLayout)
			}
		}
	}
	return now.UTC().Format(OdooDatetimeLayout)
}
