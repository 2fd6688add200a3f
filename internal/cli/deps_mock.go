package cli

import (
	"path/filepath"

	"github.com/ksyq12/sitecert/internal/config"
	"github.com/ksyq12/sitecert/internal/webserver"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockCertbot is a test double for CertbotClient
type MockCertbot struct {
	Installed bool
	ObtainErr error
	RevokeErr error

	ObtainCalls []ObtainCall
	RevokeCalls []RevokeCall
}

// ObtainCall records arguments passed to Obtain
type ObtainCall struct {
	Domain  string
	Webroot string
	Staging bool
}

// RevokeCall records arguments passed to Revoke
type RevokeCall struct {
	CertPath string
	Staging  bool
}

// NewMockCertbot creates a MockCertbot that reports certbot as installed
func NewMockCertbot() *MockCertbot {
	return &MockCertbot{Installed: true}
}

func (m *MockCertbot) IsInstalled() bool {
	return m.Installed
}

func (m *MockCertbot) Obtain(domain, webroot string, staging bool) error {
	m.ObtainCalls = append(m.ObtainCalls, ObtainCall{Domain: domain, Webroot: webroot, Staging: staging})
	return m.ObtainErr
}

func (m *MockCertbot) Revoke(certPath string, staging bool) error {
	m.RevokeCalls = append(m.RevokeCalls, RevokeCall{CertPath: certPath, Staging: staging})
	return m.RevokeErr
}

// MockCertbotFactory is a test double for CertbotFactory
type MockCertbotFactory struct {
	Client CertbotClient
}

func (m *MockCertbotFactory) Create(bin string) CertbotClient {
	if m.Client != nil {
		return m.Client
	}
	return NewMockCertbot()
}

// MockWebServerFactory is a test double for WebServerFactory
type MockWebServerFactory struct {
	Server webserver.WebServer
}

func (m *MockWebServerFactory) Create(paths webserver.Paths) webserver.WebServer {
	if m.Server != nil {
		return m.Server
	}
	return webserver.NewMock(paths.Available, paths.Enabled)
}

// MockStore is a test double for CertStore
type MockStore struct {
	Dir         string
	DomainsList []string
	DomainsErr  error
	Expiries    map[string]string
	ExpiryErr   error
}

func (m *MockStore) Domains() ([]string, error) {
	if m.DomainsErr != nil {
		return nil, m.DomainsErr
	}
	return m.DomainsList, nil
}

func (m *MockStore) Has(domain string) bool {
	for _, d := range m.DomainsList {
		if d == domain {
			return true
		}
	}
	return false
}

func (m *MockStore) Expiry(domain string) (string, error) {
	if m.ExpiryErr != nil {
		return "", m.ExpiryErr
	}
	return m.Expiries[domain], nil
}

func (m *MockStore) CertPath(domain string) string {
	return filepath.Join(m.Dir, domain, "cert.pem")
}

func (m *MockStore) FullchainPath(domain string) string {
	return filepath.Join(m.Dir, domain, "fullchain.pem")
}

// MockStoreFactory is a test double for StoreFactory
type MockStoreFactory struct {
	Store CertStore
}

func (m *MockStoreFactory) Open(dir string) CertStore {
	if m.Store != nil {
		return m.Store
	}
	return &MockStore{Dir: dir}
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			ConfigLoader: &MockConfigLoader{Cfg: config.New()},
			Certbots:     &MockCertbotFactory{},
			WebServers:   &MockWebServerFactory{},
			Stores:       &MockStoreFactory{},
		},
	}
}

// WithConfig sets the config for the mock
func (b *MockDependenciesBuilder) WithConfig(cfg *config.Config) *MockDependenciesBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithConfigLoader sets a custom config loader
func (b *MockDependenciesBuilder) WithConfigLoader(loader ConfigLoader) *MockDependenciesBuilder {
	b.deps.ConfigLoader = loader
	return b
}

// WithCertbot sets the certbot client for the mock
func (b *MockDependenciesBuilder) WithCertbot(cb CertbotClient) *MockDependenciesBuilder {
	b.deps.Certbots = &MockCertbotFactory{Client: cb}
	return b
}

// WithWebServer sets the web server for the mock
func (b *MockDependenciesBuilder) WithWebServer(ws webserver.WebServer) *MockDependenciesBuilder {
	b.deps.WebServers = &MockWebServerFactory{Server: ws}
	return b
}

// WithStore sets the certificate store for the mock
func (b *MockDependenciesBuilder) WithStore(st CertStore) *MockDependenciesBuilder {
	b.deps.Stores = &MockStoreFactory{Store: st}
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}
