package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/config"
	"github.com/xavierca1/odoo-sync/internal/infra/database"
	"github.com/xavierca1/odoo-sync/internal/infra/integration/odoo"
	"github.com/xavierca1/odoo-sync/internal/infra/integration/supabase"
	"github.com/xavierca1/odoo-sync/internal/infra/mail"
	"github.com/xavierca1/odoo-sync/internal/infra/metrics"
	"github.com/xavierca1/odoo-sync/internal/infra/queue"
	"github.com/xavierca1/odoo-sync/internal/logger"
	"github.com/xavierca1/odoo-sync/internal/usecase"
)

const finalizeTimeout = 15 * time.Second

type runner interface {
	Execute(ctx context.Context) (*usecase.RunSummary, error)
}

// app segura as dependências de uma execução. Montado uma vez por processo.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	source  usecase.SourceRepository
	gateway usecase.ERPGateway
	hooks   usecase.Hooks
	metrics *metrics.Recorder
	mailer  *mail.EmailSender

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}),
	}

	// 1. Origem
	if err := a.connectSource(ctx); err != nil {
		a.close()
		return nil, err
	}

	// 2. Odoo
	client, err := odoo.Dial(ctx, odoo.Config{
		URL:      cfg.Odoo.URL,
		DB:       cfg.Odoo.DB,
		User:     cfg.Odoo.User,
		Password: cfg.Odoo.Password,
		MaxRPS:   cfg.Odoo.MaxRPS,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.closers = append(a.closers, client.Close)
	a.gateway = odoo.NewGateway(client, cfg.Odoo.PartnerMatch)
	a.logger.Info("🔐 Conectado ao Odoo", zap.String("url", cfg.Odoo.URL), zap.Int64("uid", client.UID()))

	// 3. Canais laterais, todos opcionais
	a.metrics = metrics.NewRecorder(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job)
	a.hooks.Metrics = a.metrics

	if cfg.Events.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.Events.AMQPURL)
		if err != nil {
			// Sem fila o lote ainda roda; só perde os eventos
			a.logger.Warn("⚠️ RabbitMQ indisponível, eventos desativados", zap.Error(err))
		} else {
			a.closers = append(a.closers, rabbitMQ.Close)
			a.hooks.Events = queue.NewProducer(rabbitMQ.Ch)
		}
	}

	if cfg.Mail.Enabled() {
		a.mailer = mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	}

	return a, nil
}

func (a *app) connectSource(ctx context.Context) error {
	src := a.cfg.Source
	if !src.UseDatabase() {
		a.source = supabase.NewClient(src.URL, src.Key, src.PackagesTable, src.OrdersTable)
		return nil
	}

	db, err := database.NewDBConnection(ctx, src.DatabaseURL)
	if err != nil {
		return fmt.Errorf("falha ao conectar no Postgres do Supabase: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	a.source = database.NewSourceRepository(db, src.PackagesTable, src.OrdersTable)
	a.logger.Info("🗄️ Lendo direto do Postgres do Supabase")
	return nil
}

func (a *app) runner(mode string) runner {
	if mode == usecase.ModeImport {
		return usecase.NewImportProductsUseCase(a.source, a.gateway, a.hooks, a.logger)
	}
	return usecase.NewSyncOrdersUseCase(a.source, a.gateway, a.hooks, a.logger)
}

func (a *app) run(ctx context.Context, mode string) error {
	summary, err := a.runner(mode).Execute(ctx)
	a.finalize(ctx, mode, summary, err)
	return err
}

// finalize publica métricas e manda o relatório mesmo quando o lote foi interrompido.
func (a *app) finalize(ctx context.Context, mode string, summary *usecase.RunSummary, runErr error) {
	if summary == nil {
		return
	}

	fields := []zap.Field{
		zap.String("run_id", summary.RunID),
		zap.Int("total", summary.Total),
		zap.Int("created", summary.Created),
		zap.Int("existing", summary.Existing),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration()),
	}
	if runErr != nil {
		a.metrics.RecordAbort(mode)
		a.logger.Warn("⚠️ Execução encerrada antes do fim", append(fields, zap.Error(runErr))...)
	} else {
		a.logger.Info("📊 Resumo da execução", fields...)
	}

	finalizeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	a.metrics.RecordRun(mode, summary.Duration(), summary.FinishedAt)
	if err := a.metrics.Push(finalizeCtx, mode); err != nil {
		a.logger.Warn("⚠️ Falha ao enviar métricas ao Pushgateway", zap.Error(err))
	}

	if a.mailer != nil {
		if err := a.mailer.SendSyncReport(finalizeCtx, a.cfg.Mail.ReportTo, summary); err != nil {
			a.logger.Warn("⚠️ Falha ao enviar relatório por email", zap.Error(err))
		} else {
			a.logger.Info("📧 Relatório enviado", zap.Strings("to", a.cfg.Mail.ReportTo))
		}
	}
}

func (a *app) close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	_ = a.logger.Sync()
	return err
}
