package cli

import (
	"strings"

	"github.com/ksyq12/sitecert/internal/config"
	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/output"
	"github.com/ksyq12/sitecert/internal/webserver"
)

// loadConfig loads the application configuration
func loadConfig() (*config.Config, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "failed to load config", err)
	}
	return cfg, nil
}

// siteManager builds the web server collaborator from config paths
func siteManager(cfg *config.Config) webserver.WebServer {
	return deps.WebServers.Create(webserver.Paths{
		Available: cfg.SitesAvailable,
		Enabled:   cfg.SitesEnabled,
	})
}

// validateDomain checks if domain is valid
func validateDomain(domain string) error {
	if domain == "" {
		return errors.Validation("domain cannot be empty")
	}
	if strings.Contains(domain, " ") {
		return errors.Validation("domain cannot contain spaces")
	}
	if strings.ContainsAny(domain, "/\\") {
		return errors.Validation("domain cannot contain path separators")
	}
	if strings.HasPrefix(domain, ".") || domain == ".." {
		return errors.Validation("domain cannot start with a dot")
	}
	if strings.HasPrefix(domain, "-") || strings.HasSuffix(domain, "-") {
		return errors.Validation("domain cannot start or end with hyphen")
	}
	return nil
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success bool   `json:"success"`
	Domain  string `json:"domain"`
	Action  string `json:"action,omitempty"`
}

// newSuccessResult creates a success result
func newSuccessResult(domain, action string) CommandResult {
	return CommandResult{
		Success: true,
		Domain:  domain,
		Action:  action,
	}
}
