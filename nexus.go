// Package nexus is a client for the Nexus attribution and creator-program API.
//
//	client, err := nexus.New(publicKey, privateKey, nexus.EnvSandbox)
//	if err != nil {
//		return err
//	}
//	resp, err := client.Attribution.SendTransaction(ctx, details, nil)
//
// Every remote failure is a *serviceerrs.Error of one of five kinds.
package nexus

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/talx-hub/nexus-sdk/internal/config"
	"github.com/talx-hub/nexus-sdk/internal/httpclient"
)

type Environment string

const (
	EnvSandbox    Environment = "sandbox"
	EnvProduction Environment = "production"
)

const (
	SandboxBaseURL    = "https://api.nexus-dev.gg/v1"
	ProductionBaseURL = "https://api.nexus.gg/v1"
)

// BaseURL returns the API root of env. Unknown environments resolve to production.
func (env Environment) BaseURL() string {
	if env == EnvSandbox {
		return SandboxBaseURL
	}
	return ProductionBaseURL
}

type Config = config.Config

type dispatcher interface {
	Do(ctx context.Context, req httpclient.Request, out any) error
}

type Client struct {
	store       *config.Store
	Manage      *ManageService
	Attribution *AttributionService
}

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

type Option func(*options)

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithTimeout overrides the per-request timeout (5s by default).
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// NewClient returns a client without credentials. Every call fails with a
// configuration error until Configure or SetConfig succeeds.
func NewClient(opts ...Option) *Client {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	store := config.NewStore()
	store.SetTimeout(o.timeout)
	d := httpclient.New(store, o.httpClient, o.logger)
	return &Client{
		store:       store,
		Manage:      &ManageService{d: d},
		Attribution: &AttributionService{d: d},
	}
}

// New returns a client configured for env.
func New(publicKey, privateKey string, env Environment, opts ...Option) (*Client, error) {
	c := NewClient(opts...)
	if err := c.Configure(publicKey, privateKey, env); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Configure(publicKey, privateKey string, env Environment) error {
	return c.store.Set(Config{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		BaseURL:    env.BaseURL(),
	})
}

// SetConfig validates cfg and applies it. Calls already in flight keep the
// configuration they started with.
func (c *Client) SetConfig(cfg Config) error {
	return c.store.Set(cfg)
}

// Config returns the active configuration with the private key masked.
// The private key is write-only: it cannot be read back from a client.
func (c *Client) Config() Config {
	cfg := c.store.Get()
	cfg.PrivateKey = redact(cfg.PrivateKey)
	return cfg
}

// redact keeps the last four characters of keys long enough to spare them.
func redact(key string) string {
	const visible = 4
	if key == "" {
		return ""
	}
	if len(key) <= 2*visible {
		return "****"
	}
	return "****" + key[len(key)-visible:]
}

// Configured reports whether both keys are set.
func (c *Client) Configured() bool {
	cfg := c.store.Get()
	return cfg.PublicKey != "" && cfg.PrivateKey != ""
}
