package webserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// Nginx implements WebServer using the sites-available/sites-enabled
// convention: one config file per domain, enabled via symlink.
type Nginx struct {
	paths Paths
}

// NewNginx creates an Nginx site manager with default Debian paths.
func NewNginx() *Nginx {
	return NewNginxWithPaths("/etc/nginx/sites-available", "/etc/nginx/sites-enabled")
}

// NewNginxWithPaths creates an Nginx site manager with custom paths.
func NewNginxWithPaths(available, enabled string) *Nginx {
	return &Nginx{
		paths: Paths{
			Available: available,
			Enabled:   enabled,
		},
	}
}

// Paths returns the site config directories.
func (n *Nginx) Paths() Paths {
	return n.paths
}

// sitePath returns the domain's file in sites-available.
func (n *Nginx) sitePath(domain string) string {
	return filepath.Join(n.paths.Available, domain)
}

// EnsureSite writes the site config file only when absent. A file that
// already exists is left byte-for-byte untouched: regeneration is the
// operator's job, not this tool's.
func (n *Nginx) EnsureSite(domain, content string) (bool, error) {
	if err := os.MkdirAll(n.paths.Available, 0755); err != nil {
		return false, fmt.Errorf("failed to create sites-available directory: %w", err)
	}

	path := n.sitePath(domain)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check site config: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write site config: %w", err)
	}
	return true, nil
}

// Enable activates a site by creating a symlink in sites-enabled.
func (n *Nginx) Enable(domain string) error {
	source := n.sitePath(domain)
	target := filepath.Join(n.paths.Enabled, domain)

	if _, err := os.Stat(source); os.IsNotExist(err) {
		return fmt.Errorf("site %s not found in sites-available", domain)
	}

	if err := os.MkdirAll(n.paths.Enabled, 0755); err != nil {
		return fmt.Errorf("failed to create sites-enabled directory: %w", err)
	}

	// Already enabled is fine
	if _, err := os.Lstat(target); err == nil {
		return nil
	}

	if err := os.Symlink(source, target); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}

	return nil
}

// Disable deactivates a site by removing the symlink.
func (n *Nginx) Disable(domain string) error {
	target := filepath.Join(n.paths.Enabled, domain)

	info, err := os.Lstat(target)
	if os.IsNotExist(err) {
		// Already disabled is fine
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}

	// Refuse to remove anything that is not our symlink
	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("site %s is not a symlink, refusing to remove", domain)
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to disable site: %w", err)
	}

	return nil
}

// IsEnabled checks if a site symlink exists in sites-enabled.
func (n *Nginx) IsEnabled(domain string) (bool, error) {
	target := filepath.Join(n.paths.Enabled, domain)
	_, err := os.Lstat(target)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}
