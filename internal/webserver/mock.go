package webserver

// Mock is a test double for the WebServer interface
type Mock struct {
	paths Paths

	// Function mocks - set these to customize behavior
	EnsureSiteFunc func(domain, content string) (bool, error)
	EnableFunc     func(domain string) error
	DisableFunc    func(domain string) error
	IsEnabledFunc  func(domain string) (bool, error)

	// Call tracking - check these to verify interactions
	EnsureSiteCalls []EnsureSiteCall
	EnableCalls     []string
	DisableCalls    []string
	IsEnabledCalls  []string
}

// EnsureSiteCall records arguments passed to EnsureSite
type EnsureSiteCall struct {
	Domain  string
	Content string
}

// NewMock creates a new Mock with default no-op implementations
func NewMock(availableDir, enabledDir string) *Mock {
	return &Mock{
		paths: Paths{
			Available: availableDir,
			Enabled:   enabledDir,
		},
	}
}

// Paths returns the configured paths
func (m *Mock) Paths() Paths {
	return m.paths
}

// EnsureSite records the call and invokes the mock function if set
func (m *Mock) EnsureSite(domain, content string) (bool, error) {
	m.EnsureSiteCalls = append(m.EnsureSiteCalls, EnsureSiteCall{Domain: domain, Content: content})
	if m.EnsureSiteFunc != nil {
		return m.EnsureSiteFunc(domain, content)
	}
	return true, nil
}

// Enable records the call and invokes the mock function if set
func (m *Mock) Enable(domain string) error {
	m.EnableCalls = append(m.EnableCalls, domain)
	if m.EnableFunc != nil {
		return m.EnableFunc(domain)
	}
	return nil
}

// Disable records the call and invokes the mock function if set
func (m *Mock) Disable(domain string) error {
	m.DisableCalls = append(m.DisableCalls, domain)
	if m.DisableFunc != nil {
		return m.DisableFunc(domain)
	}
	return nil
}

// IsEnabled records the call and invokes the mock function if set
func (m *Mock) IsEnabled(domain string) (bool, error) {
	m.IsEnabledCalls = append(m.IsEnabledCalls, domain)
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc(domain)
	}
	return false, nil
}

// Reset clears all call tracking
func (m *Mock) Reset() {
	m.EnsureSiteCalls = nil
	m.EnableCalls = nil
	m.DisableCalls = nil
	m.IsEnabledCalls = nil
}
