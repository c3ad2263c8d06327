package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/giftnama/internal/app"
)

const (
	envPort              = "PORT"
	envMetricsAddr       = "GIFTNAMA_METRICS_ADDR"
	envDatabaseURL       = "DATABASE_URL"
	envDatabaseName      = "DATABASE_NAME"
	envKafkaBrokers      = "KAFKA_BROKERS"
	envStrictPersistence = "GIFTNAMA_STRICT_PERSISTENCE"
)

// envLookup абстрагирует os.LookupEnv для тестируемости.
type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfigFromEnv формирует конфигурацию приложения из переменных окружения.
// Некорректные значения не фатальны: остаётся значение по умолчанию,
// а предупреждение возвращается вызывающему для логирования.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	if v, ok := lookup(envPort); ok && strings.TrimSpace(v) != "" {
		cfg.HTTPAddr = ":" + strings.TrimSpace(v)
	}
	if v, ok := lookup(envMetricsAddr); ok && strings.TrimSpace(v) != "" {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envDatabaseURL); ok {
		cfg.DatabaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(envDatabaseName); ok && strings.TrimSpace(v) != "" {
		cfg.DatabaseName = strings.TrimSpace(v)
	}
	if v, ok := lookup(envKafkaBrokers); ok {
		cfg.KafkaBrokers = strings.TrimSpace(v)
	}
	if v, ok := lookup(envStrictPersistence); ok && strings.TrimSpace(v) != "" {
		strict, err := parseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envStrictPersistence, err))
		} else {
			cfg.StrictPersistence = strict
		}
	}

	return cfg, warnings
}

// parseBool принимает привычные для переменных окружения булевы значения.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value: %q", value)
	}
}

func main() {
	setupLogger()

	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"http_addr":    cfg.HTTPAddr,
		"metrics_addr": cfg.MetricsAddr,
	}).Info("запускаем Giftnama API")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("Giftnama API остановлен")
}
