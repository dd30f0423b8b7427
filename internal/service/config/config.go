package config

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/talx-hub/nexus-sdk/internal/model"
)

type Config struct {
	RunAddr           string `env:"RUN_ADDRESS"          envDefault:"localhost:8080"`
	NexusPublicKey    string `env:"NEXUS_PUBLIC_KEY"     envDefault:""`
	NexusPrivateKey   string `env:"NEXUS_PRIVATE_KEY"    envDefault:""`
	NexusEnvironment  string `env:"NEXUS_ENVIRONMENT"    envDefault:"sandbox"`
	NexusGroupID      string `env:"NEXUS_GROUP_ID"       envDefault:""`
	NexusBaseURL      string `env:"NEXUS_BASE_URL"       envDefault:""`
	SecretKey         string `env:"SECRET_KEY"           envDefault:""`
	LogLevel          string `env:"LOG_LEVEL"            envDefault:"info"`
	NotifyConcurrency uint64 `env:"NOTIFY_CONCURRENCY"   envDefault:"16"`
}

type Builder struct {
	cfg  *Config
	log  *slog.Logger
	fs   *flag.FlagSet
	args []string
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{
			NotifyConcurrency: model.DefaultNotifyConcurrency,
		},
		log:  log,
		fs:   flag.CommandLine,
		args: os.Args[1:],
	}
}

// FromDotenv loads variables from the given files into the process
// environment without overriding ones already set. A missing file is skipped.
func (b *Builder) FromDotenv(files ...string) *Builder {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			b.log.LogAttrs(context.Background(),
				slog.LevelError, "Failed to load dotenv file",
				slog.String("file", f),
				slog.Any(model.KeyLoggerError, err))
		}
	}
	return b
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromFlags() *Builder {
	b.fs.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	b.fs.StringVar(&b.cfg.NexusPublicKey, "pub", b.cfg.NexusPublicKey, "Nexus public key")
	b.fs.StringVar(&b.cfg.NexusPrivateKey, "priv", b.cfg.NexusPrivateKey, "Nexus private key")
	b.fs.StringVar(&b.cfg.NexusEnvironment, "e", b.cfg.NexusEnvironment, "Nexus environment: sandbox or production")
	b.fs.StringVar(&b.cfg.NexusBaseURL, "u", b.cfg.NexusBaseURL, "Nexus API base URL, overrides the environment")
	b.fs.StringVar(&b.cfg.NexusGroupID, "g", b.cfg.NexusGroupID, "Creator program group ID")
	b.fs.StringVar(&b.cfg.SecretKey, "k", b.cfg.SecretKey, "Secret key")
	b.fs.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	b.fs.Uint64Var(&b.cfg.NotifyConcurrency, "n", b.cfg.NotifyConcurrency, "Max concurrent attribution sends")

	if err := b.fs.Parse(b.args); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse flags", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}
