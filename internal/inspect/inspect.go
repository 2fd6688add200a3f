// Package inspect parses issued certificate files for human inspection.
//
// Unlike the expiry probe in the store package, which shells to openssl,
// inspect reads the PEM in-process via cfssl's parsing helpers and
// returns structured details for the show command.
package inspect

import (
	"os"
	"time"

	"github.com/cloudflare/cfssl/helpers"

	"github.com/ksyq12/sitecert/internal/errors"
)

// Details holds the fields of an issued certificate worth showing.
type Details struct {
	Subject   string    `json:"subject"`
	Issuer    string    `json:"issuer"`
	SANs      []string  `json:"sans,omitempty"`
	Serial    string    `json:"serial"`
	NotBefore time.Time `json:"not_before"`
	NotAfter  time.Time `json:"not_after"`
}

// File parses the first certificate in a PEM file.
func File(path string) (*Details, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, "certificate file not found", err)
		}
		return nil, errors.Wrap(errors.ErrCodeInspect, "failed to read certificate", err)
	}

	cert, err := helpers.ParseCertificatePEM(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInspect, "failed to parse certificate", err)
	}

	return &Details{
		Subject:   cert.Subject.String(),
		Issuer:    cert.Issuer.String(),
		SANs:      cert.DNSNames,
		Serial:    cert.SerialNumber.String(),
		NotBefore: cert.NotBefore,
		NotAfter:  cert.NotAfter,
	}, nil
}

// DaysRemaining reports whole days until expiry, negative when expired.
func (d *Details) DaysRemaining() int {
	return int(time.Until(d.NotAfter).Hours() / 24)
}
