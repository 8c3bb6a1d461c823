package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 0},
		Storage: StorageConfig{Driver: "jsonfile", Path: "data/strings.json"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Storage: StorageConfig{Driver: "cassandra", Path: "x"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestValidate_MissingRedisAddrs(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Storage: StorageConfig{Driver: "redis"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing redis addrs")
	}
}

func TestValidate_FileDriversRequirePath(t *testing.T) {
	for _, driver := range []string{"jsonfile", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			cfg := Config{
				HTTP:    HTTPConfig{Port: 8080},
				Storage: StorageConfig{Driver: driver},
			}
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error for missing storage path")
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Storage.Driver != "jsonfile" {
		t.Errorf("expected Driver=jsonfile, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Path != "data/strings.json" {
		t.Errorf("expected default Path, got %q", cfg.Storage.Path)
	}
	if cfg.Storage.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Storage.ReadinessTimeout)
	}
	if cfg.Redis.KeyPrefix != "strdex:" {
		t.Errorf("expected KeyPrefix='strdex:', got %q", cfg.Redis.KeyPrefix)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Storage: StorageConfig{Driver: "sqlite", Path: "custom.db", ReadinessTimeout: 15},
		Redis:   RedisConfig{KeyPrefix: "custom:"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("expected Driver=sqlite, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Path != "custom.db" {
		t.Errorf("expected Path=custom.db, got %q", cfg.Storage.Path)
	}
	if cfg.Redis.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Redis.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("STRDEX_TEST_PORT", "9090")

	out := string(expandEnvVars([]byte("port: ${STRDEX_TEST_PORT}\npath: ${STRDEX_TEST_MISSING:-data/strings.json}")))
	want := "port: 9090\npath: data/strings.json"
	if out != want {
		t.Errorf("expanded = %q, want %q", out, want)
	}
}
