package config

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"uniform"`
	Password string `env:"PASSWORD" envDefault:"uniform"`
	Name     string `env:"NAME"     envDefault:"uniform_admin"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// AuditConfig enables the Postgres-backed moderation audit trail.
type AuditConfig struct {
	Enabled  bool     `env:"AUDIT_ENABLED" envDefault:"false"`
	Postgres DBConfig `envPrefix:"DB_"`
}

// Sanitize disables the audit trail when no database host is configured.
func (c *AuditConfig) Sanitize() {
	if c.Postgres.Host == "" {
		c.Enabled = false
	}
}

// RedisConfig contains the session Redis configuration. URI accepts a
// host:port or a redis:// URL; UseSentinel switches to a failover client.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}
