package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Source  SourceConfig
	Odoo    OdooConfig
	Events  EventsConfig
	Mail    MailConfig
	Metrics MetricsConfig
	Log     LogConfig
}

// SourceConfig aponta para o Supabase. Com SUPABASE_DB_URL a leitura vai direto no Postgres
// e a API REST deixa de ser obrigatória.
type SourceConfig struct {
	URL           string `env:"SUPABASE_URL" validate:"required_without=DatabaseURL,omitempty,url"`
	Key           string `env:"SUPABASE_KEY" validate:"required_without=DatabaseURL"`
	DatabaseURL   string `env:"SUPABASE_DB_URL"`
	PackagesTable string `env:"SUPABASE_PACKAGES_TABLE" validate:"required"`
	OrdersTable   string `env:"SUPABASE_ORDERS_TABLE" validate:"required"`
}

type OdooConfig struct {
	URL          string  `env:"ODOO_URL" validate:"required,url"`
	DB           string  `env:"ODOO_DB" validate:"required"`
	User         string  `env:"ODOO_USER" validate:"required"`
	Password     string  `env:"ODOO_PASSWORD" validate:"required"`
	MaxRPS       float64 `env:"ODOO_MAX_RPS" validate:"gte=0"`
	PartnerMatch string  `env:"ODOO_PARTNER_MATCH" validate:"oneof=exact partial"`
}

type EventsConfig struct {
	AMQPURL string `env:"SYNC_EVENTS_AMQP_URL"`
}

// MailConfig: MAIL_REPORT_TO aceita uma lista separada por vírgula.
type MailConfig struct {
	Host     string   `env:"MAIL_HOST"`
	Port     int      `env:"MAIL_PORT" validate:"gte=0,lte=65535"`
	User     string   `env:"MAIL_USER"`
	Password string   `env:"MAIL_PASS"`
	From     string   `env:"MAIL_FROM" validate:"omitempty,email"`
	ReportTo []string `env:"MAIL_REPORT_TO" validate:"omitempty,dive,email"`
}

type MetricsConfig struct {
	PushgatewayURL string `env:"PUSHGATEWAY_URL" validate:"omitempty,url"`
	Job            string `env:"METRICS_JOB"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT" validate:"oneof=console json"`
}

func (m MailConfig) Enabled() bool {
	return m.Host != "" && len(m.ReportTo) > 0
}

func (c SourceConfig) UseDatabase() bool {
	return c.DatabaseURL != ""
}

// Load lê o .env (opcional) e as variáveis de ambiente. Falha antes de qualquer chamada de rede
// se faltar algo obrigatório.
func Load() (*Config, error) {
	// .env é opcional: em produção tudo vem do ambiente
	_ = godotenv.Load()

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SUPABASE_PACKAGES_TABLE", "airalo_packages")
	v.SetDefault("SUPABASE_ORDERS_TABLE", "airalo_orders")
	v.SetDefault("ODOO_MAX_RPS", 0)
	v.SetDefault("ODOO_PARTNER_MATCH", "exact")
	v.SetDefault("MAIL_PORT", 587)
	v.SetDefault("MAIL_FROM", "nao-responda@odoo-sync.local")
	v.SetDefault("METRICS_JOB", "odoo_sync")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	return v
}

// FromViper monta e valida o Config a partir de uma instância já preparada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Source: SourceConfig{
			URL:           strings.TrimRight(strings.TrimSpace(v.GetString("SUPABASE_URL")), "/"),
			Key:           strings.TrimSpace(v.GetString("SUPABASE_KEY")),
			DatabaseURL:   strings.TrimSpace(v.GetString("SUPABASE_DB_URL")),
			PackagesTable: v.GetString("SUPABASE_PACKAGES_TABLE"),
			OrdersTable:   v.GetString("SUPABASE_ORDERS_TABLE"),
		},
		Odoo: OdooConfig{
			URL:          strings.TrimRight(strings.TrimSpace(v.GetString("ODOO_URL")), "/"),
			DB:           strings.TrimSpace(v.GetString("ODOO_DB")),
			User:         strings.TrimSpace(v.GetString("ODOO_USER")),
			Password:     v.GetString("ODOO_PASSWORD"),
			MaxRPS:       v.GetFloat64("ODOO_MAX_RPS"),
			PartnerMatch: strings.ToLower(strings.TrimSpace(v.GetString("ODOO_PARTNER_MATCH"))),
		},
		Events: EventsConfig{
			AMQPURL: strings.TrimSpace(v.GetString("SYNC_EVENTS_AMQP_URL")),
		},
		Mail: MailConfig{
			Host:     strings.TrimSpace(v.GetString("MAIL_HOST")),
			Port:     v.GetInt("MAIL_PORT"),
			User:     v.GetString("MAIL_USER"),
			Password: v.GetString("MAIL_PASS"),
			From:     strings.TrimSpace(v.GetString("MAIL_FROM")),
			ReportTo: splitList(v.GetString("MAIL_REPORT_TO")),
		},
		Metrics: MetricsConfig{
			PushgatewayURL: strings.TrimSpace(v.GetString("PUSHGATEWAY_URL")),
			Job:            v.GetString("METRICS_JOB"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func validate(cfg *Config) error {
	v := validator.New()
	// Erros saem com o nome da variável de ambiente, não o do campo Go
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("configuração inválida: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return fe.Field() + " é obrigatório"
	case "url":
		return fe.Field() + " deve ser uma URL válida"
	case "email":
		return fe.Field() + " deve ser um email válido"
	case "oneof":
		return fmt.Sprintf("%s deve ser um de [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
	}
}
