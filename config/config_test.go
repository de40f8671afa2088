package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/validation"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// unsetOnCleanup removes variables a .env file put into the environment.
func unsetOnCleanup(t *testing.T, keys ...string) {
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

const sampleYAML = `
name: seqdemo
environment: staging
version: "1.2.0"
logging:
  level: warn
  format: json
inspect:
  enabled: true
  limit: 5
telemetry:
  enabled: true
  endpoint: collector:4318
  sample_rate: 0.5
  metric_interval: 5s
`

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", sampleYAML)

	var cfg ServiceConfig
	err := Load("seqdemo", &cfg, WithConfigFile(path), WithEnvFile(filepath.Join(dir, "none.env")), WithEnvPrefix("SEQTEST_YAML"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "seqdemo" || cfg.Environment != "staging" || cfg.Version != "1.2.0" {
		t.Errorf("unexpected base fields: %+v", cfg)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if !cfg.Inspect.Enabled || cfg.Inspect.Limit != 5 {
		t.Errorf("unexpected inspect: %+v", cfg.Inspect)
	}
	if cfg.Telemetry.Endpoint != "collector:4318" || cfg.Telemetry.SampleRate != 0.5 {
		t.Errorf("unexpected telemetry: %+v", cfg.Telemetry)
	}
	if cfg.Telemetry.MetricInterval != 5*time.Second {
		t.Errorf("expected 5s metric interval, got %v", cfg.Telemetry.MetricInterval)
	}
}

func TestLoad_MissingFiles(t *testing.T) {
	var cfg ServiceConfig
	err := Load("nonexistent", &cfg,
		WithConfigFile("/nonexistent/config.yml"),
		WithEnvFile("/nonexistent/.env"),
		WithEnvPrefix("SEQTEST_MISSING"),
	)
	if err != nil {
		t.Fatalf("expected Load to succeed with missing files, got %v", err)
	}
	if cfg.Name != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", sampleYAML)
	t.Setenv("SEQTEST_ENV_INSPECT_LIMIT", "50")
	t.Setenv("SEQTEST_ENV_TELEMETRY_SAMPLE_RATE", "0.1")
	t.Setenv("SEQTEST_ENV_LOGGING_NO_COLOR", "true")

	var cfg ServiceConfig
	err := Load("seqdemo", &cfg, WithConfigFile(path), WithEnvFile(filepath.Join(dir, "none.env")), WithEnvPrefix("SEQTEST_ENV"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Inspect.Limit != 50 {
		t.Errorf("expected env to override inspect.limit, got %d", cfg.Inspect.Limit)
	}
	if cfg.Telemetry.SampleRate != 0.1 {
		t.Errorf("expected env to override telemetry.sample_rate, got %v", cfg.Telemetry.SampleRate)
	}
	if !cfg.Logging.NoColor {
		t.Error("expected logging.no_color from env")
	}
	if !cfg.Inspect.Enabled {
		t.Error("file values without an env override should survive")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "SEQTEST_DOTENV_NAME=from-dotenv\nSEQTEST_DOTENV_INSPECT_ENABLED=true\n")
	unsetOnCleanup(t, "SEQTEST_DOTENV_NAME", "SEQTEST_DOTENV_INSPECT_ENABLED")

	var cfg ServiceConfig
	err := Load("seqdemo", &cfg, WithConfigFile(filepath.Join(dir, "none.yml")), WithEnvFile(envPath), WithEnvPrefix("SEQTEST_DOTENV"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "from-dotenv" {
		t.Errorf("expected name from .env, got %q", cfg.Name)
	}
	if !cfg.Inspect.Enabled {
		t.Error("expected inspect.enabled from .env")
	}
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "SEQTEST_PRECEDENCE_NAME=from-dotenv\n")
	t.Setenv("SEQTEST_PRECEDENCE_NAME", "from-env")

	var cfg ServiceConfig
	err := Load("seqdemo", &cfg, WithConfigFile(filepath.Join(dir, "none.yml")), WithEnvFile(envPath), WithEnvPrefix("SEQTEST_PRECEDENCE"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("expected the process environment to win, got %q", cfg.Name)
	}
}

func TestLoad_DecodeError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "inspect:\n  limit: many\n")

	var cfg ServiceConfig
	err := Load("seqdemo", &cfg, WithConfigFile(path), WithEnvFile(filepath.Join(dir, "none.env")), WithEnvPrefix("SEQTEST_DECODE"))
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}

func TestLoadService(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "inspect:\n  enabled: true\n")

	cfg, err := LoadService("seqdemo", WithConfigFile(path), WithEnvFile(filepath.Join(dir, "none.env")), WithEnvPrefix("SEQTEST_SERVICE"))
	if err != nil {
		t.Fatalf("LoadService failed: %v", err)
	}
	if cfg.Name != "seqdemo" {
		t.Errorf("expected the service name as default name, got %q", cfg.Name)
	}
	if cfg.Environment != EnvDevelopment || cfg.Logging.Level != "debug" {
		t.Errorf("expected development defaults, got %q/%q", cfg.Environment, cfg.Logging.Level)
	}
	if cfg.RunID == "" {
		t.Error("expected a generated run id")
	}
	if cfg.Inspect.Limit == 0 {
		t.Error("expected the inspect default limit")
	}
}

func TestLoadService_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "environment: qa\ninspect:\n  limit: 5000\n")

	_, err := LoadService("seqdemo", WithConfigFile(path), WithEnvFile(filepath.Join(dir, "none.env")), WithEnvPrefix("SEQTEST_INVALID"))
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	fields := failedFields(t, err)
	for _, want := range []string{"environment", "inspect.limit"} {
		if !slices.Contains(fields, want) {
			t.Errorf("expected a %q error, got %v", want, fields)
		}
	}
}

func failedFields(t *testing.T, err error) []string {
	t.Helper()
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	fieldErrs, _ := appErr.Details["fields"].([]validation.FieldError)
	var out []string
	for _, fe := range fieldErrs {
		out = append(out, fe.Field)
	}
	return out
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != EnvDevelopment {
			t.Errorf("expected development, got %q", cfg.Environment)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging in development, got %q", cfg.Logging.Level)
		}
	})

	t.Run("production keeps info logging", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: EnvProduction}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info, got %q", cfg.Logging.Level)
		}
	})

	t.Run("run id is kept", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", RunID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427"}
		cfg.ApplyDefaults()
		if cfg.RunID != "1b4e28ba-2fa1-11d2-883f-0016d3cca427" {
			t.Errorf("run id changed to %q", cfg.RunID)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	valid := func() ServiceConfig {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*ServiceConfig)
		wantField string
	}{
		{"valid", func(*ServiceConfig) {}, ""},
		{"missing name", func(c *ServiceConfig) { c.Name = "" }, "name"},
		{"bad environment", func(c *ServiceConfig) { c.Environment = "qa" }, "environment"},
		{"bad run id", func(c *ServiceConfig) { c.RunID = "not-a-uuid" }, "run_id"},
		{"nil run id", func(c *ServiceConfig) { c.RunID = "00000000-0000-0000-0000-000000000000" }, "run_id"},
		{"bad log level", func(c *ServiceConfig) { c.Logging.Level = "loud" }, "logging.level"},
		{"inspect limit too high", func(c *ServiceConfig) { c.Inspect.Limit = 1001 }, "inspect.limit"},
		{"sample rate above one", func(c *ServiceConfig) { c.Telemetry.SampleRate = 1.5 }, "telemetry.sample_rate"},
		{"bad endpoint", func(c *ServiceConfig) { c.Telemetry.Endpoint = "no port" }, "telemetry.endpoint"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if fields := failedFields(t, err); !slices.Contains(fields, tc.wantField) {
				t.Errorf("expected a %q error, got %v", tc.wantField, fields)
			}
		})
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/my-svc/config.yml": true,
		"./config.yml":            true,
		"./.env":                  true,
	}}
	resolver := &Resolver{FileSystem: fs}

	files := resolver.ResolveFiles("my-svc", LoaderConfig{})
	if files.ConfigFile != "./cmd/my-svc/config.yml" {
		t.Errorf("expected the service config to win, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}

	files = resolver.ResolveFiles("my-svc", LoaderConfig{ConfigFile: "explicit.yml"})
	if files.ConfigFile != "explicit.yml" {
		t.Errorf("expected the explicit path, got %q", files.ConfigFile)
	}
}

func TestResolverNothingFound(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("svc", LoaderConfig{})
	if files.ConfigFile != "" || files.EnvFile != "" {
		t.Errorf("expected no files, got %+v", files)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("TELEMETRY_SAMPLE_RATE")
	for _, want := range []string{"telemetry_sample_rate", "telemetry.sample.rate", "telemetry.sample_rate", "telemetry_sample.rate"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := envKeyVariants("NAME"); !slices.Equal(got, []string{"name"}) {
		t.Errorf("expected [name], got %v", got)
	}
}

func TestWithEnvPrefixOption(t *testing.T) {
	var lc LoaderConfig
	WithEnvPrefix("seq_")(&lc)
	if lc.EnvPrefix != "SEQ" {
		t.Errorf("expected SEQ, got %q", lc.EnvPrefix)
	}
}

func TestWithFileOptions(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithFileSystem(&mockFS{})(&lc)
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.FileSystem == nil {
		t.Errorf("unexpected loader config %+v", lc)
	}
}
