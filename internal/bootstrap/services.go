package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jhaverenterprises/uniform-admin/config"
	"github.com/jhaverenterprises/uniform-admin/internal/adapters/authroles"
	redisadapter "github.com/jhaverenterprises/uniform-admin/internal/adapters/redis"
	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/service"
)

// ServiceContainer holds the services the HTTP layer is built on.
type ServiceContainer struct {
	Auth      *service.AuthService
	Orders    *service.OrderService
	Bills     *service.BillService
	Stores    *service.StoreService
	Inventory *service.InventoryService
	Catalog   *service.CatalogService
}

// ServiceDeps contains dependencies for NewServices.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Adapters    AdapterContainer
	Logger      *slog.Logger
}

// NewServices wires the domain services onto the adapters.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}
	api := deps.Adapters.Backend
	auditor := service.NewAuditor(deps.Adapters.Audit, logger)

	auth := newAuthService(cfg.Session, deps.RedisClient, deps.Adapters, logger)

	return ServiceContainer{
		Auth: auth,
		Orders: service.NewOrderService(service.OrderServiceOptions{
			Orders: api,
			Delivery: service.InvoiceDelivery{
				Renderer: deps.Adapters.Renderer,
				Sender:   deps.Adapters.Sender,
			},
			Config: service.OrderConfig{Audit: auditor, Logger: logger},
		}),
		Bills: service.NewBillService(service.BillServiceOptions{
			Bills:  api,
			Stores: api,
			Config: service.BillConfig{Renderer: deps.Adapters.Renderer, Audit: auditor, Logger: logger},
		}),
		Stores: service.NewStoreService(service.StoreServiceOptions{
			Stores: api,
			Bills:  api,
			Config: service.StoreConfig{Audit: auditor, Logger: logger},
		}),
		Inventory: service.NewInventoryService(service.InventoryServiceOptions{
			Inventory: api,
			Stores:    api,
			Logger:    logger,
		}),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			Catalog:  api,
			Overview: api,
			Logger:   logger,
		}),
	}
}

func newAuthService(cfg config.SessionConfig, client redis.UniversalClient, adapters AdapterContainer, logger *slog.Logger) *service.AuthService {
	store := redisadapter.NewSessionStore(client, redisadapter.SessionStoreOptions{
		Prefix: cfg.KeyPrefix,
		Logger: logger,
	})
	auth := service.NewAuthService(service.AuthServiceOptions{
		Provider: adapters.Backend,
		Sessions: store,
		Config: service.AuthConfig{
			Roles:      authroles.DefaultRoleMapper(),
			SessionTTL: cfg.TTL,
			Logger:     logger,
		},
	})
	auth.Subscribe(sessionEventLogger(logger))
	return auth
}

// sessionEventLogger records sign-ins and sign-outs.
func sessionEventLogger(logger *slog.Logger) func(domainauth.SessionEvent) {
	logger = logger.With("component", "session_events")
	return func(ev domainauth.SessionEvent) {
		logger.Info("session "+string(ev.Kind), "role", string(ev.Role))
	}
}
