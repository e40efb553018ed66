package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jhaverenterprises/uniform-admin/config"
	"github.com/jhaverenterprises/uniform-admin/internal/adapters/backend"
	"github.com/jhaverenterprises/uniform-admin/internal/adapters/invoicepdf"
	"github.com/jhaverenterprises/uniform-admin/internal/adapters/whatsapp"
	"github.com/jhaverenterprises/uniform-admin/internal/data"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// AdapterContainer holds the outbound adapters the services are built on.
type AdapterContainer struct {
	Backend  ports.Backend
	Renderer ports.InvoiceRenderer
	// Sender is nil when WhatsApp delivery is disabled.
	Sender ports.DocumentSender
	// Audit is nil when the audit trail is disabled.
	Audit ports.AuditRepository
}

// AdapterDeps contains what BuildAdapters needs.
type AdapterDeps struct {
	Config *config.AppConfig
	// DB is the audit database; nil disables the audit trail.
	DB     *sql.DB
	Logger *slog.Logger
}

// BuildAdapters creates the backend client, the invoice renderer, and the
// optional WhatsApp and audit adapters.
func BuildAdapters(deps AdapterDeps) (AdapterContainer, error) {
	if deps.Config == nil {
		return AdapterContainer{}, fmt.Errorf("build adapters: config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	client, err := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return AdapterContainer{}, fmt.Errorf("create backend client: %w", err)
	}

	out := AdapterContainer{
		Backend:  client,
		Renderer: invoicepdf.NewRenderer(),
	}

	if cfg.WhatsApp.Enabled {
		sender, err := whatsapp.NewClient(whatsapp.Config{
			GraphURL:      cfg.WhatsApp.GraphURL,
			PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
			AccessToken:   cfg.WhatsApp.AccessToken,
			TemplateName:  cfg.WhatsApp.TemplateName,
			CountryCode:   cfg.WhatsApp.CountryCode,
			Timeout:       cfg.WhatsApp.Timeout,
			RetryLimit:    cfg.WhatsApp.RetryLimit,
		})
		if err != nil {
			return AdapterContainer{}, fmt.Errorf("create whatsapp client: %w", err)
		}
		out.Sender = sender
		logger.Info("whatsapp invoice delivery enabled", "template", cfg.WhatsApp.TemplateName)
	}

	if deps.DB != nil {
		out.Audit = data.NewAuditRepo(deps.DB)
	}
	return out, nil
}
