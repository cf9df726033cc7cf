package mail

import "github.com/xavierca1/odoo-sync/internal/usecase"

type ReportData struct {
	Summary  *usecase.RunSummary
	Duration string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
