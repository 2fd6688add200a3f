package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	// Create temp directory for test config
	tempDir := t.TempDir()

	// Override config path for testing
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	configDir := filepath.Join(tempDir, ".config", "sitecert")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	t.Run("New", func(t *testing.T) {
		cfg := New()
		if cfg.StoreDir != "/etc/letsencrypt/live" {
			t.Errorf("expected default store dir, got %s", cfg.StoreDir)
		}
		if cfg.SitesAvailable != "/etc/nginx/sites-available" {
			t.Errorf("expected default sites-available, got %s", cfg.SitesAvailable)
		}
		if cfg.CertbotBin != "certbot" {
			t.Errorf("expected certbot binary name, got %s", cfg.CertbotBin)
		}
	})

	t.Run("LoadNonexistent", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		// Should return default config when file doesn't exist
		if cfg.Webroot != "/var/www/html" {
			t.Errorf("expected default webroot, got %s", cfg.Webroot)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		cfg := New()
		cfg.StoreDir = "/srv/letsencrypt/live"
		cfg.Webroot = "/srv/www"

		if err := cfg.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		// Verify file exists
		loadedPath := filepath.Join(configDir, "config.yaml")
		if _, err := os.Stat(loadedPath); os.IsNotExist(err) {
			t.Error("config file was not created")
		}

		loaded, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.StoreDir != "/srv/letsencrypt/live" {
			t.Errorf("expected saved store dir, got %s", loaded.StoreDir)
		}
		if loaded.Webroot != "/srv/www" {
			t.Errorf("expected saved webroot, got %s", loaded.Webroot)
		}
		// Untouched fields keep defaults
		if loaded.CertbotBin != "certbot" {
			t.Errorf("expected default certbot binary, got %s", loaded.CertbotBin)
		}
	})

	t.Run("PartialConfigKeepsDefaults", func(t *testing.T) {
		path := filepath.Join(configDir, "config.yaml")
		if err := os.WriteFile(path, []byte("webroot: /opt/www\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Webroot != "/opt/www" {
			t.Errorf("expected /opt/www webroot, got %s", cfg.Webroot)
		}
		if cfg.StoreDir != "/etc/letsencrypt/live" {
			t.Errorf("expected default store dir, got %s", cfg.StoreDir)
		}
		if cfg.SitesEnabled != "/etc/nginx/sites-enabled" {
			t.Errorf("expected default sites-enabled, got %s", cfg.SitesEnabled)
		}
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := filepath.Join(configDir, "config.yaml")
		if err := os.WriteFile(path, []byte("store_dir: [broken"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := Load(); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}
