package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	// Create a temporary config file
	content := `
hub:
  host: "192.168.1.10"
  username: "admin"
  password: "hunter2"
  https: true
  timeout: 30
logging:
  level: "debug"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Hub.Host != "192.168.1.10" {
		t.Errorf("Hub.Host = %q, want %q", cfg.Hub.Host, "192.168.1.10")
	}

	if cfg.Hub.Password != "hunter2" {
		t.Errorf("Hub.Password = %q, want %q", cfg.Hub.Password, "hunter2")
	}

	if !cfg.Hub.HTTPS {
		t.Error("Hub.HTTPS = false, want true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
hub:
  host: ""
  username: "admin"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for empty hub.host, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Hub: HubConfig{
					Host:     "hub.local",
					Username: "admin",
					Timeout:  15,
				},
			},
			wantErr: false,
		},
		{
			name: "missing host",
			config: &Config{
				Hub: HubConfig{Host: "", Username: "admin", Timeout: 15},
			},
			wantErr: true,
		},
		{
			name: "missing username",
			config: &Config{
				Hub: HubConfig{Host: "hub.local", Username: "", Timeout: 15},
			},
			wantErr: true,
		},
		{
			name: "zero timeout",
			config: &Config{
				Hub: HubConfig{Host: "hub.local", Username: "admin", Timeout: 0},
			},
			wantErr: true,
		},
		{
			name: "skip verify without https",
			config: &Config{
				Hub: HubConfig{
					Host:               "hub.local",
					Username:           "admin",
					Timeout:            15,
					HTTPS:              false,
					InsecureSkipVerify: true,
				},
			},
			wantErr: true,
		},
		{
			name: "skip verify with https",
			config: &Config{
				Hub: HubConfig{
					Host:               "hub.local",
					Username:           "admin",
					Timeout:            15,
					HTTPS:              true,
					InsecureSkipVerify: true,
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetTimeout(t *testing.T) {
	cfg := &Config{Hub: HubConfig{Timeout: 30}}

	if got := cfg.GetTimeout().Seconds(); got != 30 {
		t.Errorf("GetTimeout() = %v, want 30", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	// Set environment variables
	t.Setenv("SIMPLEISY_HUB_HOST", "hub.example.com")
	t.Setenv("SIMPLEISY_HUB_USERNAME", "operator")
	t.Setenv("SIMPLEISY_HUB_PASSWORD", "testpass")
	t.Setenv("SIMPLEISY_HUB_HTTPS", "true")
	t.Setenv("SIMPLEISY_HUB_TIMEOUT", "45")
	t.Setenv("SIMPLEISY_LOGGING_LEVEL", "debug")

	applyEnvOverrides(cfg)

	if cfg.Hub.Host != "hub.example.com" {
		t.Errorf("Hub.Host = %q, want %q", cfg.Hub.Host, "hub.example.com")
	}

	if cfg.Hub.Username != "operator" {
		t.Errorf("Hub.Username = %q, want %q", cfg.Hub.Username, "operator")
	}

	if cfg.Hub.Password != "testpass" {
		t.Errorf("Hub.Password = %q, want %q", cfg.Hub.Password, "testpass")
	}

	if !cfg.Hub.HTTPS {
		t.Error("Hub.HTTPS = false, want true")
	}

	if cfg.Hub.Timeout != 45 {
		t.Errorf("Hub.Timeout = %d, want 45", cfg.Hub.Timeout)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestNew_EnvAndDefaults(t *testing.T) {
	t.Setenv("SIMPLEISY_HUB_HOST", "hub.example.com")
	t.Setenv("SIMPLEISY_HUB_PASSWORD", "testpass")

	cfg := New()

	if cfg.Hub.Host != "hub.example.com" {
		t.Errorf("Hub.Host = %q, want %q", cfg.Hub.Host, "hub.example.com")
	}

	// Defaults fill the rest
	if cfg.Hub.Username != "admin" {
		t.Errorf("Hub.Username = %q, want default %q", cfg.Hub.Username, "admin")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Hub.Username == "" {
		t.Error("defaultConfig should have non-empty Hub.Username")
	}

	if cfg.Hub.Timeout != 15 {
		t.Errorf("defaultConfig Hub.Timeout = %d, want 15", cfg.Hub.Timeout)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("defaultConfig Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}
