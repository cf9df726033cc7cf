package mail

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/xavierca1/odoo-sync/internal/usecase"
	"gopkg.in/gomail.v2"
)

const reportTemplate = `Execução {{.Summary.RunID}} ({{.Summary.Mode}})
Início: {{.Summary.StartedAt.Format "2006-01-02 15:04:05"}}
Duração: {{.Duration}}

Linhas: {{.Summary.Total}}
Criadas: {{.Summary.Created}}
Já existentes: {{.Summary.Existing}}
Puladas: {{.Summary.Skipped}}
Falhas: {{.Summary.Failed}}
{{if .Summary.Problems}}
Problemas:
{{range .Summary.Problems}}- {{.Key}} [{{.Status}}] {{.Code}}: {{.Reason}}
{{end}}{{end}}`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// RenderReport monta o corpo texto do relatório da execução.
func RenderReport(summary *usecase.RunSummary) (string, error) {
	data := ReportData{
		Summary:  summary,
		Duration: summary.Duration().Round(time.Millisecond).String(),
	}

	var body bytes.Buffer
	if err := reportTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

func ReportSubject(summary *usecase.RunSummary) string {
	status := "✅"
	if summary.Failed > 0 {
		status = "⚠️"
	}
	return fmt.Sprintf("%s odoo-sync %s: %d criadas, %d falhas", status, summary.Mode, summary.Created, summary.Failed)
}

func (s *EmailSender) buildMessage(to []string, summary *usecase.RunSummary) (*gomail.Message, error) {
	body, err := RenderReport(summary)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", ReportSubject(summary))
	m.SetBody("text/plain", body)
	return m, nil
}

// SendSyncReport envia o resumo para os destinatários. O SMTP do gomail não tem timeout na
// conversa, então o envio desiste quando ctx expira (a conexão presa morre com o processo).
func (s *EmailSender) SendSyncReport(ctx context.Context, to []string, summary *usecase.RunSummary) error {
	if len(to) == 0 {
		return fmt.Errorf("nenhum destinatário para o relatório")
	}

	m, err := s.buildMessage(to, summary)
	if err != nil {
		return err
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("erro ao enviar email SMTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("envio do relatório abandonado: %w", ctx.Err())
	}
}
