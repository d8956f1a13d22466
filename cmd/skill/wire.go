package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"videoskill/internal/application"
	"videoskill/internal/config"
	"videoskill/internal/infrastructure/i18n"
	"videoskill/internal/infrastructure/logging"
	"videoskill/internal/infrastructure/metrics"
)

type runtimeDeps struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	skill    *application.SkillService
}

// wire builds output adapters -> application (use case), ready for a host adapter.
func wire() (*runtimeDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	logger.Info("✅ Locales loaded", zap.Strings("locales", translator.Locales()))

	skill := application.NewSkillService(translator, metrics.NewRecorder(registry), logger, cfg.UserAgent)

	return &runtimeDeps{cfg: cfg, logger: logger, registry: registry, skill: skill}, nil
}
