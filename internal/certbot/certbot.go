package certbot

import (
	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/executor"
	"github.com/ksyq12/sitecert/internal/logger"
)

// Client wraps the certbot command-line tool for certificate issuance
// and revocation. Every call is a blocking subprocess invocation; there
// are no retries and no timeouts beyond certbot's own.
type Client struct {
	bin  string
	exec executor.CommandExecutor
}

// New creates a Client that invokes the given certbot binary.
func New(bin string) *Client {
	return &Client{
		bin:  bin,
		exec: executor.NewSystemExecutor(),
	}
}

// NewWithExecutor creates a Client with a custom executor (for testing).
func NewWithExecutor(bin string, exec executor.CommandExecutor) *Client {
	return &Client{
		bin:  bin,
		exec: exec,
	}
}

// IsInstalled checks if certbot is available on the PATH.
func (c *Client) IsInstalled() bool {
	_, err := c.exec.LookPath(c.bin)
	return err == nil
}

// run invokes certbot. On non-zero exit the returned error carries
// certbot's stderr verbatim so the CLI can forward it unmodified.
func (c *Client) run(args []string) error {
	logger.DebugFields("running certbot", map[string]interface{}{
		"bin":  c.bin,
		"args": args,
	})

	_, stderr, err := c.exec.Execute(c.bin, args...)
	if err != nil {
		return errors.External(c.bin, stderr, err)
	}
	return nil
}

// Obtain requests a certificate for the domain using a webroot challenge
// served from the given document root. When staging is true the request
// goes to the test CA endpoint via --test-cert.
func (c *Client) Obtain(domain, webroot string, staging bool) error {
	args := []string{
		"certonly",
		"--webroot",
		"-w", webroot,
		"-d", domain,
		"--agree-tos",
		"--non-interactive",
	}
	if staging {
		args = append(args, "--test-cert")
	}
	return c.run(args)
}

// Revoke revokes the certificate at the given path.
func (c *Client) Revoke(certPath string, staging bool) error {
	args := []string{
		"revoke",
		"--cert-path", certPath,
		"--non-interactive",
	}
	if staging {
		args = append(args, "--test-cert")
	}
	return c.run(args)
}
