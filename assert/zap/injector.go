package zap

import (
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// adapterSkipFrames hides the Log dispatch frame from caller annotations.
const adapterSkipFrames = 1

// Environment selects the encoder profile and the default log level.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentUAT         Environment = "uat"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

func (e Environment) known() bool {
	switch e {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentUAT, EnvironmentDevelopment, EnvironmentLocal:
		return true
	default:
		return false
	}
}

// verbose reports whether the environment defaults to debug-level output.
func (e Environment) verbose() bool {
	return e == EnvironmentDevelopment || e == EnvironmentLocal
}

// Config carries the inputs for building the process logger.
type Config struct {
	// Environment picks the zap profile and the default level.
	Environment Environment
	// Level overrides the environment default when non-empty
	// ("debug", "info", "warn", "error").
	Level string
	// OTelLibraryName names the instrumentation scope reported by the
	// otelzap bridge.
	OTelLibraryName string
}

// New builds a JSON zap logger teed into the OpenTelemetry log bridge and
// returns it with its runtime-adjustable level handle.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if cfg.OTelLibraryName == "" {
		return nil, zap.AtomicLevel{}, errors.New("zap config: OTelLibraryName is required")
	}

	if !cfg.Environment.known() {
		return nil, zap.AtomicLevel{}, fmt.Errorf("zap config: invalid environment %q", cfg.Environment)
	}

	level, err := cfg.atomicLevel()
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	base := cfg.Environment.zapConfig()
	base.Level = level
	// Assertion and panic logs attach their own stacks.
	base.DisableStacktrace = true

	built, err := base.Build(
		zap.AddCallerSkip(adapterSkipFrames),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}),
	)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{logger: built, level: level}, level, nil
}

func (c Config) atomicLevel() (zap.AtomicLevel, error) {
	if lvl := strings.TrimSpace(c.Level); lvl != "" {
		var parsed zapcore.Level
		if err := parsed.Set(lvl); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("zap config: invalid level %q: %w", lvl, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if c.Environment.verbose() {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func (e Environment) zapConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	if e.verbose() {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
