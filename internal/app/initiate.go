package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shandysiswandi/pwstore/internal/pkg/clock"
	"github.com/shandysiswandi/pwstore/internal/pkg/config"
	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
	"github.com/shandysiswandi/pwstore/internal/pkg/instrument"
	"github.com/shandysiswandi/pwstore/internal/pkg/validator"
	"github.com/spf13/cobra"
)

const (
	envPrefix       = "PWSTORE"
	localConfigPath = "./config/config.yaml"
)

func defaults() map[string]any {
	return map[string]any{
		"app.name":    "pwstore",
		"app.version": "dev",

		"hash.pbkdf2.iterations": hash.DefaultIterations,
		"hash.pbkdf2.salt_size":  hash.DefaultSaltSize,
		"hash.pbkdf2.hash_size":  hash.DefaultHashSize,

		"worker.max_goroutine": 0,

		"instrument.enabled":                 false,
		"instrument.service_name":            "pwstore",
		"instrument.env":                     "local",
		"instrument.otlp_endpoint":           "localhost:4317",
		"instrument.otlp_secure":             false,
		"instrument.trace_sample_ratio":      1.0,
		"instrument.metric_interval_seconds": 60,
		"instrument.log_level":               "warn",
		"instrument.log_mask_fields":         "password,stored_hash",
	}
}

func loadConfig() (config.Config, error) {
	opts := []config.Option{config.WithDefaults(defaults()), config.WithEnvPrefix(envPrefix)}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if _, err := os.Stat(localConfigPath); err != nil {
			return config.NewViperFromBytes("yaml", nil, opts...)
		}
		path = localConfigPath
	}

	return config.NewViper(path, opts...)
}

func (a *App) initInstrument() error {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("app.version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		LogLevel:         a.config.GetString("instrument.log_level"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogOutput:        a.logOut,
	})
	if err != nil {
		return fmt.Errorf("failed to init instrumentation: %w", err)
	}
	a.ins = ins

	return nil
}

// hasherConfig bounds the tunables read from config before they reach the KDF.
type hasherConfig struct {
	Iterations int `validate:"gte=1,lte=100000000"`
	SaltSize   int `validate:"gte=8,lte=1024"`
	HashSize   int `validate:"gte=1,lte=1024"`
}

func (a *App) initLibraries() error {
	a.clock = clock.New()

	v, err := validator.NewV10Validator()
	if err != nil {
		return fmt.Errorf("failed to init validation v10 validator: %w", err)
	}
	a.validator = v

	hc := hasherConfig{
		Iterations: a.config.GetInt("hash.pbkdf2.iterations"),
		SaltSize:   a.config.GetInt("hash.pbkdf2.salt_size"),
		HashSize:   a.config.GetInt("hash.pbkdf2.hash_size"),
	}
	if err := a.validator.Validate(hc); err != nil {
		return fmt.Errorf("invalid hash.pbkdf2 config: %w", err)
	}

	hasher, err := hash.NewPBKDF2(hash.Params(hc))
	if err != nil {
		return fmt.Errorf("failed to init pbkdf2 hasher: %w", err)
	}
	a.hasher = hasher

	return nil
}

func (a *App) initCommand() error {
	name := a.config.GetString("app.name")
	if name == "" {
		return errors.New("app.name must not be empty")
	}

	a.root = &cobra.Command{
		Use:           name,
		Short:         "Create and verify salted PBKDF2 password hashes",
		Version:       a.config.GetString("app.version"),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	return nil
}

func (a *App) initClosers() {
	a.closers = append(a.closers, struct {
		name string
		fn   func(context.Context) error
	}{name: "Instrumentation", fn: a.ins.Shutdown})

	a.closers = append(a.closers, struct {
		name string
		fn   func(context.Context) error
	}{name: "Config", fn: func(context.Context) error { return a.config.Close() }})
}
