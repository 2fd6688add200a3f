// Package webserver manages web server site state for certificate
// operations: the per-domain configuration file in sites-available and
// the enabling symlink in sites-enabled. It is the only place sitecert
// writes to the web server's filesystem.
package webserver

// WebServer is the site-state collaborator consumed by the CLI commands.
type WebServer interface {
	// EnsureSite writes the domain's site configuration file only if it
	// does not already exist. Returns whether the file was created.
	// An existing file is never overwritten, even with different content.
	EnsureSite(domain, content string) (created bool, err error)

	// Enable activates a site. Already enabled is not an error.
	Enable(domain string) error

	// Disable deactivates a site. Already disabled is not an error.
	Disable(domain string) error

	// IsEnabled checks if a site is enabled.
	IsEnabled(domain string) (bool, error)

	// Paths returns the server's site config directories.
	Paths() Paths
}

// Paths contains the web server site config directory paths.
type Paths struct {
	Available string // site config directory
	Enabled   string // enabled-site symlink directory
}
