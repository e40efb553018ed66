package config

import (
	"strings"
	"time"
)

// WhatsAppConfig controls delivery of generated invoices to customers through the
// WhatsApp Cloud API.
type WhatsAppConfig struct {
	Enabled       bool          `env:"ENABLED"         envDefault:"false"`
	PhoneNumberID string        `env:"PHONE_NUMBER_ID"`
	AccessToken   string        `env:"ACCESS_TOKEN"`
	GraphURL      string        `env:"GRAPH_URL"       envDefault:"https://graph.facebook.com"`
	TemplateName  string        `env:"TEMPLATE_NAME"   envDefault:"invoice_template"`
	CountryCode   string        `env:"COUNTRY_CODE"    envDefault:"91"`
	Timeout       time.Duration `env:"TIMEOUT"         envDefault:"10s"`
	RetryLimit    int           `env:"RETRY_LIMIT"     envDefault:"2"`
}

// Sanitize normalises values and switches delivery off when credentials are missing.
func (c *WhatsAppConfig) Sanitize() {
	c.PhoneNumberID = strings.TrimSpace(c.PhoneNumberID)
	c.AccessToken = strings.TrimSpace(c.AccessToken)
	c.GraphURL = strings.TrimRight(strings.TrimSpace(c.GraphURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RetryLimit < 0 {
		c.RetryLimit = 0
	}
	if c.PhoneNumberID == "" || c.AccessToken == "" {
		c.Enabled = false
	}
}
