package cli

import (
	"github.com/ksyq12/sitecert/internal/certbot"
	"github.com/ksyq12/sitecert/internal/config"
	"github.com/ksyq12/sitecert/internal/store"
	"github.com/ksyq12/sitecert/internal/webserver"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader ConfigLoader
	Certbots     CertbotFactory
	WebServers   WebServerFactory
	Stores       StoreFactory
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// CertbotClient is the certificate authority client surface used by commands
type CertbotClient interface {
	IsInstalled() bool
	Obtain(domain, webroot string, staging bool) error
	Revoke(certPath string, staging bool) error
}

// CertbotFactory creates certbot clients
type CertbotFactory interface {
	Create(bin string) CertbotClient
}

// WebServerFactory creates web server site managers
type WebServerFactory interface {
	Create(paths webserver.Paths) webserver.WebServer
}

// CertStore is the certificate store surface used by commands
type CertStore interface {
	Domains() ([]string, error)
	Has(domain string) bool
	Expiry(domain string) (string, error)
	CertPath(domain string) string
	FullchainPath(domain string) string
}

// StoreFactory opens certificate stores
type StoreFactory interface {
	Open(dir string) CertStore
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader: &realConfigLoader{},
	Certbots:     &realCertbotFactory{},
	WebServers:   &realWebServerFactory{},
	Stores:       &realStoreFactory{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to the domain packages

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realCertbotFactory struct{}

func (r *realCertbotFactory) Create(bin string) CertbotClient {
	return certbot.New(bin)
}

type realWebServerFactory struct{}

func (r *realWebServerFactory) Create(paths webserver.Paths) webserver.WebServer {
	return webserver.NewNginxWithPaths(paths.Available, paths.Enabled)
}

type realStoreFactory struct{}

func (r *realStoreFactory) Open(dir string) CertStore {
	return store.New(dir)
}
