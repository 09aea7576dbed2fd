package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("Expected HTTP_ADDR default ':8080', got '%s'", cfg.HTTP.Addr)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected DB_HOST default 'localhost', got '%s'", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Expected DB_PORT default 5432, got %d", cfg.Database.Port)
	}
	if cfg.Database.Database != "roomwatch" {
		t.Errorf("Expected DB_NAME default 'roomwatch', got '%s'", cfg.Database.Database)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected LOG_LEVEL default 'info', got '%s'", cfg.Log.Level)
	}
	if cfg.MQTT.Enabled {
		t.Error("Expected MQTT disabled by default")
	}
	if cfg.MQTT.Topic != "roomwatch/sensors/+/status" {
		t.Errorf("Unexpected MQTT_TOPIC default '%s'", cfg.MQTT.Topic)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "6543")
	os.Setenv("MQTT_ENABLED", "true")
	defer os.Clearenv()

	cfg := Load()

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("Expected HTTP_ADDR ':9090', got '%s'", cfg.HTTP.Addr)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Expected DB_HOST 'db.internal', got '%s'", cfg.Database.Host)
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("Expected DB_PORT 6543, got %d", cfg.Database.Port)
	}
	if !cfg.MQTT.Enabled {
		t.Error("Expected MQTT enabled")
	}
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_PORT", "not-a-number")
	defer os.Clearenv()

	cfg := Load()
	if cfg.Database.Port != 5432 {
		t.Errorf("Expected fallback to 5432, got %d", cfg.Database.Port)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "postgres", Database: "roomwatch", SSLMode: "disable",
	}
	want := "host=localhost port=5432 user=postgres password=postgres dbname=roomwatch sslmode=disable"
	if got := c.DSN(); got != want {
		t.Errorf("DSN mismatch:\n got %s\nwant %s", got, want)
	}
}
