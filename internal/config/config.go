package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

const (
	DefaultBaseURL = "https://api.nexus.gg"
	SecureScheme   = "https://"
)

const (
	msgPublicKeyRequired  = "Public API key is required for Nexus SDK configuration."
	msgPrivateKeyRequired = "Private API key is required for Nexus SDK configuration."
	msgBaseURLRequired    = "A valid baseURL is required for Nexus SDK configuration."
)

type Config struct {
	PublicKey  string
	PrivateKey string
	BaseURL    string
	// Timeout bounds a single request. Zero keeps the current value.
	Timeout time.Duration
}

func (c Config) Validate() error {
	if c.PublicKey == "" {
		return serviceerrs.NewConfigurationError(msgPublicKeyRequired)
	}
	if c.PrivateKey == "" {
		return serviceerrs.NewConfigurationError(msgPrivateKeyRequired)
	}
	if !strings.HasPrefix(c.BaseURL, SecureScheme) {
		return serviceerrs.NewConfigurationError(msgBaseURLRequired)
	}
	return nil
}

// Target is what a single request needs from the configuration.
type Target struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Store struct {
	cfg Config
	mu  sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		cfg: Config{
			PublicKey:  "",
			PrivateKey: "",
			BaseURL:    DefaultBaseURL,
			Timeout:    model.DefaultTimeout,
		},
	}
}

// Set validates cfg and replaces the stored keys and base URL.
// The store is left untouched on error.
func (s *Store) Set(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.PublicKey = cfg.PublicKey
	s.cfg.PrivateKey = cfg.PrivateKey
	s.cfg.BaseURL = cfg.BaseURL
	if cfg.Timeout > 0 {
		s.cfg.Timeout = cfg.Timeout
	}
	return nil
}

// SetTimeout changes the request timeout without touching the keys.
func (s *Store) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Timeout = timeout
}

func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Resolve snapshots the credential of the key class together with the base URL and timeout.
func (s *Store) Resolve(class model.KeyClass) (Target, error) {
	cfg := s.Get()

	var key string
	switch class {
	case model.KeyPublic:
		key = cfg.PublicKey
	case model.KeyPrivate:
		key = cfg.PrivateKey
	default:
		return Target{}, serviceerrs.NewConfigurationError(
			fmt.Sprintf("unknown key class %q", class))
	}
	if key == "" {
		return Target{}, serviceerrs.NewConfigurationError(fmt.Sprintf(
			"%sKey is not set. Please initialize the SDK with the required keys.", class))
	}

	return Target{
		APIKey:  key,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}, nil
}
