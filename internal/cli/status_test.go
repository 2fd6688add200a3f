package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/output"
	"github.com/ksyq12/sitecert/internal/store"
	"github.com/ksyq12/sitecert/internal/webserver"
)

// captureStatus runs get-status and decodes its JSON document
func captureStatus(t *testing.T) *store.Report {
	t.Helper()

	var buf bytes.Buffer
	output.SetWriter(&buf)
	defer output.ResetWriter()

	if err := runStatus(statusCmd, nil); err != nil {
		t.Fatalf("get-status failed: %v", err)
	}

	var report store.Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("get-status output is not valid JSON: %v\n%s", err, buf.String())
	}
	return &report
}

func TestRunStatus(t *testing.T) {
	t.Run("empty store yields empty domain set", func(t *testing.T) {
		setTestDeps(t, NewMockDeps().
			WithStore(&MockStore{}).
			Build())

		report := captureStatus(t)
		if report.Domains == nil {
			t.Fatal("expected domains key to be present")
		}
		if len(report.Domains) != 0 {
			t.Errorf("expected no domains, got %v", report.Domains)
		}
	})

	t.Run("empty object serializes with domains key", func(t *testing.T) {
		setTestDeps(t, NewMockDeps().
			WithStore(&MockStore{}).
			Build())

		var buf bytes.Buffer
		output.SetWriter(&buf)
		defer output.ResetWriter()

		if err := runStatus(statusCmd, nil); err != nil {
			t.Fatalf("get-status failed: %v", err)
		}
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
			t.Fatal(err)
		}
		if string(raw["domains"]) != "{}" {
			t.Errorf(`expected "domains": {}, got %s`, raw["domains"])
		}
	})

	t.Run("reports availability expiry and enabled state", func(t *testing.T) {
		ws := webserver.NewMock("/tmp/avail", "/tmp/enabled")
		ws.IsEnabledFunc = func(domain string) (bool, error) {
			return domain == "enabled.com", nil
		}

		setTestDeps(t, NewMockDeps().
			WithStore(&MockStore{
				DomainsList: []string{"enabled.com", "disabled.com"},
				Expiries: map[string]string{
					"enabled.com":  "Jun 10 12:00:00 2026 GMT",
					"disabled.com": "Jul 22 08:30:00 2026 GMT",
				},
			}).
			WithWebServer(ws).
			Build())

		report := captureStatus(t)
		if len(report.Domains) != 2 {
			t.Fatalf("expected 2 domains, got %d", len(report.Domains))
		}

		on := report.Domains["enabled.com"]
		if !on.CertificateAvailable {
			t.Error("expected certificate_available=true")
		}
		if on.ExpiryDate != "Jun 10 12:00:00 2026 GMT" {
			t.Errorf("unexpected expiry: %q", on.ExpiryDate)
		}
		if !on.WebEnabled {
			t.Error("expected web_enabled=true for enabled.com")
		}
		if report.Domains["disabled.com"].WebEnabled {
			t.Error("expected web_enabled=false for disabled.com")
		}
	})

	t.Run("expiry failure aborts the whole query", func(t *testing.T) {
		expiryErr := errors.External("openssl", []byte("unable to load certificate\n"), fmt.Errorf("exit status 1"))
		setTestDeps(t, NewMockDeps().
			WithStore(&MockStore{
				DomainsList: []string{"ok.com", "broken.com"},
				ExpiryErr:   expiryErr,
			}).
			Build())

		var buf bytes.Buffer
		output.SetWriter(&buf)
		defer output.ResetWriter()

		err := runStatus(statusCmd, nil)
		if err == nil {
			t.Fatal("expected error when expiry lookup fails")
		}

		var certErr *errors.CertError
		if !errors.As(err, &certErr) {
			t.Fatalf("expected *errors.CertError, got %T", err)
		}
		if string(certErr.Stderr) != "unable to load certificate\n" {
			t.Errorf("stderr modified: %q", certErr.Stderr)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no partial JSON output, got %q", buf.String())
		}
	})
}
