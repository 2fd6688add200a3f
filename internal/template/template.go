// Package template renders the per-domain web server site configuration.
//
// A single embedded nginx template is substituted with the domain name
// only; certificate paths follow from the domain by Let's Encrypt's
// fixed layout. The rendered text is written once per domain and never
// regenerated, so template changes only affect future domains.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed nginx/site.tmpl
var templates embed.FS

// siteData is the substitution data for the site template.
type siteData struct {
	Domain string
}

// Render produces the site configuration for a domain.
func Render(domain string) (string, error) {
	content, err := templates.ReadFile("nginx/site.tmpl")
	if err != nil {
		return "", fmt.Errorf("site template missing: %w", err)
	}

	tmpl, err := template.New("site").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse site template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, siteData{Domain: domain}); err != nil {
		return "", fmt.Errorf("failed to render site template: %w", err)
	}

	return buf.String(), nil
}
