package main

import (
	"testing"

	"github.com/vladislavdragonenkov/giftnama/internal/app"
)

func TestReadConfigFromEnv_Defaults(t *testing.T) {
	cfg, warnings := readConfigFromEnv(mapLookup(nil))

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %d", len(warnings))
	}

	if cfg != app.DefaultConfig() {
		t.Fatalf("expected default config, got %#v", cfg)
	}
}

func TestReadConfigFromEnv_ValidOverrides(t *testing.T) {
	cfg, warnings := readConfigFromEnv(mapLookup(map[string]string{
		envPort:              "8080",
		envMetricsAddr:       "localhost:9091",
		envDatabaseURL:       " mongodb://localhost:27017 ",
		envDatabaseName:      "shop",
		envKafkaBrokers:      "localhost:9092",
		envStrictPersistence: " YES ",
	}))

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %d", len(warnings))
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != "localhost:9091" {
		t.Fatalf("unexpected metrics addr: %s", cfg.MetricsAddr)
	}
	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Fatalf("unexpected database url: %s", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "shop" {
		t.Fatalf("unexpected database name: %s", cfg.DatabaseName)
	}
	if cfg.KafkaBrokers != "localhost:9092" {
		t.Fatalf("unexpected kafka brokers: %s", cfg.KafkaBrokers)
	}
	if !cfg.StrictPersistence {
		t.Fatal("expected StrictPersistence=true")
	}
}

func TestReadConfigFromEnv_InvalidStrictPersistence(t *testing.T) {
	defaultCfg := app.DefaultConfig()

	cfg, warnings := readConfigFromEnv(mapLookup(map[string]string{
		envStrictPersistence: "sometimes",
	}))

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}

	if cfg.StrictPersistence != defaultCfg.StrictPersistence {
		t.Fatal("expected StrictPersistence to keep default on invalid value")
	}
}

func TestReadConfigFromEnv_EmptyPortKeepsDefault(t *testing.T) {
	cfg, _ := readConfigFromEnv(mapLookup(map[string]string{
		envPort: "  ",
	}))

	if cfg.HTTPAddr != app.DefaultConfig().HTTPAddr {
		t.Fatalf("expected default http addr, got %s", cfg.HTTPAddr)
	}
}

func TestParseBool(t *testing.T) {
	trueValue, err := parseBool(" YES ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !trueValue {
		t.Fatal("expected true result")
	}

	falseValue, err := parseBool("off")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if falseValue {
		t.Fatal("expected false result")
	}

	if _, err := parseBool("sometimes"); err == nil {
		t.Fatal("expected error for invalid bool value")
	}
}

func mapLookup(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
