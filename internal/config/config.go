package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	StoreDir       string `yaml:"store_dir"`       // Let's Encrypt live certificate store
	SitesAvailable string `yaml:"sites_available"` // web server sites-available directory
	SitesEnabled   string `yaml:"sites_enabled"`   // web server sites-enabled directory
	Webroot        string `yaml:"webroot"`         // document root for webroot challenges
	CertbotBin     string `yaml:"certbot_bin"`     // certbot executable name or path
}

// configDir is the default config directory
const configDir = ".config/sitecert"
const configFile = "config.yaml"

// New creates a new Config with default values
func New() *Config {
	return &Config{
		StoreDir:       "/etc/letsencrypt/live",
		SitesAvailable: "/etc/nginx/sites-available",
		SitesEnabled:   "/etc/nginx/sites-enabled",
		Webroot:        "/var/www/html",
		CertbotBin:     "certbot",
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyDefaults fills in any fields left empty by a partial config file
func (c *Config) applyDefaults() {
	def := New()
	if c.StoreDir == "" {
		c.StoreDir = def.StoreDir
	}
	if c.SitesAvailable == "" {
		c.SitesAvailable = def.SitesAvailable
	}
	if c.SitesEnabled == "" {
		c.SitesEnabled = def.SitesEnabled
	}
	if c.Webroot == "" {
		c.Webroot = def.Webroot
	}
	if c.CertbotBin == "" {
		c.CertbotBin = def.CertbotBin
	}
}
