package config

import (
	"os"
	"strings"
	"testing"
)

func clearConfigEnv() {
	for _, key := range []string{
		"SERVER_PORT", "MODEL_PATH", "METADATA_PATH", "COGS",
		"DB_ENABLED", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"JWT_SECRET", "JWT_EXPIRY_HOURS", "ADMIN_USERNAME", "ADMIN_PASSWORD",
		"CORS_ALLOWED_ORIGINS",
	} {
		os.Unsetenv(key)
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "pricing",
		Password: "secret",
		Name:     "pricing",
		SSLMode:  "disable",
	}
	dsn := db.GetDSN()

	expected := "host=localhost port=5432 user=pricing password=secret dbname=pricing sslmode=disable"
	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}

func TestGetDSNCustomValues(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "admin",
		Password: "p@ss",
		Name:     "mydb",
		SSLMode:  "require",
	}
	dsn := db.GetDSN()

	if !strings.Contains(dsn, "host=db.example.com") {
		t.Errorf("DSN missing host, got: %s", dsn)
	}
	if !strings.Contains(dsn, "port=5433") {
		t.Errorf("DSN missing port, got: %s", dsn)
	}
	if !strings.Contains(dsn, "sslmode=require") {
		t.Errorf("DSN missing sslmode, got: %s", dsn)
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("TEST_CONFIG_VAR")
	if got := getEnv("TEST_CONFIG_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %q, want %q", got, "default")
	}

	os.Setenv("TEST_CONFIG_VAR", "custom")
	defer os.Unsetenv("TEST_CONFIG_VAR")
	if got := getEnv("TEST_CONFIG_VAR", "default"); got != "custom" {
		t.Errorf("getEnv() = %q, want %q", got, "custom")
	}
}

func TestGetFloatEnv(t *testing.T) {
	t.Run("fallback when unset", func(t *testing.T) {
		os.Unsetenv("TEST_FLOAT_VAR")
		got, err := getFloatEnv("TEST_FLOAT_VAR", 50.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 50.0 {
			t.Errorf("getFloatEnv() = %v, want %v", got, 50.0)
		}
	})

	t.Run("parses valid float", func(t *testing.T) {
		os.Setenv("TEST_FLOAT_VAR", "62.5")
		defer os.Unsetenv("TEST_FLOAT_VAR")
		got, err := getFloatEnv("TEST_FLOAT_VAR", 50.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 62.5 {
			t.Errorf("getFloatEnv() = %v, want %v", got, 62.5)
		}
	})

	t.Run("error on invalid float", func(t *testing.T) {
		os.Setenv("TEST_FLOAT_VAR", "not_a_float")
		defer os.Unsetenv("TEST_FLOAT_VAR")
		if _, err := getFloatEnv("TEST_FLOAT_VAR", 50.0); err == nil {
			t.Error("expected error for invalid float value")
		}
	})
}

func TestGetBoolEnv(t *testing.T) {
	os.Unsetenv("TEST_BOOL_VAR")
	if got := getBoolEnv("TEST_BOOL_VAR", false); got {
		t.Error("getBoolEnv() should fall back to false when unset")
	}

	os.Setenv("TEST_BOOL_VAR", "true")
	defer os.Unsetenv("TEST_BOOL_VAR")
	if got := getBoolEnv("TEST_BOOL_VAR", false); !got {
		t.Error("getBoolEnv() = false, want true")
	}

	os.Setenv("TEST_BOOL_VAR", "not_bool")
	if got := getBoolEnv("TEST_BOOL_VAR", true); !got {
		t.Error("getBoolEnv() should fall back on unparseable value")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Model.ModelPath != "models/price_model.gob" {
		t.Errorf("Model.ModelPath = %q", cfg.Model.ModelPath)
	}
	if cfg.Model.MetadataPath != "models/metadata.json" {
		t.Errorf("Model.MetadataPath = %q", cfg.Model.MetadataPath)
	}
	if cfg.Model.COGS != 50.0 {
		t.Errorf("Model.COGS = %v, want 50.0", cfg.Model.COGS)
	}
	if cfg.Database.Enabled {
		t.Error("Database.Enabled should default to false")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want 6379", cfg.Redis.Port)
	}
	if cfg.JWT.ExpiryHours != 24 {
		t.Errorf("JWT.ExpiryHours = %d, want 24", cfg.JWT.ExpiryHours)
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("CORS.AllowedOrigins = %q, want %q", cfg.CORS.AllowedOrigins, "*")
	}
}

func TestLoadConfigCustom(t *testing.T) {
	clearConfigEnv()
	os.Setenv("SERVER_PORT", "3000")
	os.Setenv("MODEL_PATH", "/srv/models/current.gob")
	os.Setenv("COGS", "75.5")
	os.Setenv("DB_ENABLED", "true")
	defer clearConfigEnv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Model.ModelPath != "/srv/models/current.gob" {
		t.Errorf("Model.ModelPath = %q", cfg.Model.ModelPath)
	}
	if cfg.Model.COGS != 75.5 {
		t.Errorf("Model.COGS = %v, want 75.5", cfg.Model.COGS)
	}
	if !cfg.Database.Enabled {
		t.Error("Database.Enabled should be true")
	}
}

func TestLoadConfigInvalidPort(t *testing.T) {
	clearConfigEnv()
	os.Setenv("SERVER_PORT", "invalid")
	defer os.Unsetenv("SERVER_PORT")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for invalid SERVER_PORT")
	}
}

func TestLoadConfigInvalidCOGS(t *testing.T) {
	clearConfigEnv()
	os.Setenv("COGS", "free")
	defer os.Unsetenv("COGS")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for invalid COGS")
	}
}
