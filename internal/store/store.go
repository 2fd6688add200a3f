// Package store reads the Let's Encrypt live certificate store.
//
// The store is a directory tree managed entirely by certbot: one
// subdirectory per domain holding cert.pem, fullchain.pem, and
// privkey.pem. This package never writes to it; it enumerates domains
// and extracts expiry dates by shelling to openssl, so status reporting
// works against whatever certbot last left on disk.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/executor"
)

// Status describes one domain's certificate as reported by get-status.
type Status struct {
	CertificateAvailable bool   `json:"certificate_available"`
	ExpiryDate           string `json:"expiry_date"`
	WebEnabled           bool   `json:"web_enabled"`
}

// Report is the full get-status document.
type Report struct {
	Domains map[string]Status `json:"domains"`
}

// NewReport creates an empty report with an initialized domain map,
// so an empty store still serializes as {"domains": {}}.
func NewReport() *Report {
	return &Report{Domains: make(map[string]Status)}
}

// Store provides read access to a live certificate directory tree.
type Store struct {
	dir  string
	exec executor.CommandExecutor
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{
		dir:  dir,
		exec: executor.NewSystemExecutor(),
	}
}

// NewWithExecutor creates a Store with a custom executor (for testing).
func NewWithExecutor(dir string, exec executor.CommandExecutor) *Store {
	return &Store{
		dir:  dir,
		exec: exec,
	}
}

// Dir returns the store root.
func (s *Store) Dir() string {
	return s.dir
}

// CertPath returns the path to the domain's leaf certificate.
func (s *Store) CertPath(domain string) string {
	return filepath.Join(s.dir, domain, "cert.pem")
}

// FullchainPath returns the path to the domain's certificate chain.
func (s *Store) FullchainPath(domain string) string {
	return filepath.Join(s.dir, domain, "fullchain.pem")
}

// KeyPath returns the path to the domain's private key.
func (s *Store) KeyPath(domain string) string {
	return filepath.Join(s.dir, domain, "privkey.pem")
}

// Domains lists all domains with certificate material in the store.
// A missing store directory means no domains, not an error.
func (s *Store) Domains() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read certificate store", err)
	}

	domains := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			domains = append(domains, entry.Name())
		}
	}

	return domains, nil
}

// Has reports whether the store holds certificate material for the domain.
func (s *Store) Has(domain string) bool {
	info, err := os.Stat(filepath.Join(s.dir, domain))
	return err == nil && info.IsDir()
}

// Expiry extracts the domain certificate's end date by shelling to
// openssl. The returned string is openssl's own representation, e.g.
// "Jun 10 12:00:00 2026 GMT". A failed openssl run is propagated and
// aborts the caller's whole status query.
func (s *Store) Expiry(domain string) (string, error) {
	stdout, stderr, err := s.exec.Execute("openssl",
		"x509", "-enddate", "-noout", "-in", s.CertPath(domain))
	if err != nil {
		return "", errors.External("openssl", stderr, err)
	}

	// openssl prints "notAfter=<date>"
	line := strings.TrimSpace(string(stdout))
	if idx := strings.IndexByte(line, '='); idx >= 0 {
		return strings.TrimSpace(line[idx+1:]), nil
	}
	return line, nil
}
