package cli

import (
	"github.com/spf13/cobra"

	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/logger"
	"github.com/ksyq12/sitecert/internal/output"
	"github.com/ksyq12/sitecert/internal/template"
)

var (
	obtainDomain  string
	obtainStaging bool
)

var obtainCmd = &cobra.Command{
	Use:   "obtain",
	Short: "Obtain a certificate and enable its site",
	Long: `Obtain a Let's Encrypt certificate for a domain via a webroot
challenge, then enable the domain's site configuration.

The site configuration file is written from a fixed template only if it
does not exist yet; an existing file is never touched.

Examples:
  sitecert obtain --domain example.com
  sitecert obtain --domain example.com --staging`,
	Args: cobra.NoArgs,
	RunE: runObtain,
}

func init() {
	obtainCmd.Flags().StringVar(&obtainDomain, "domain", "", "Domain to obtain a certificate for (required)")
	obtainCmd.Flags().BoolVar(&obtainStaging, "staging", false, "Use the Let's Encrypt staging CA")
	obtainCmd.MarkFlagRequired("domain")

	rootCmd.AddCommand(obtainCmd)
}

func runObtain(cmd *cobra.Command, args []string) error {
	domain := obtainDomain

	if err := validateDomain(domain); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cb := deps.Certbots.Create(cfg.CertbotBin)
	if !cb.IsInstalled() {
		return errors.ErrCertbotNotInstalled
	}

	logger.InfoFields("obtaining certificate", map[string]interface{}{
		"domain":  domain,
		"webroot": cfg.Webroot,
		"staging": obtainStaging,
	})
	if err := cb.Obtain(domain, cfg.Webroot, obtainStaging); err != nil {
		return err
	}

	content, err := template.Render(domain)
	if err != nil {
		return err
	}

	ws := siteManager(cfg)
	created, err := ws.EnsureSite(domain, content)
	if err != nil {
		return errors.WrapDomain(errors.ErrCodeWebServer, domain, err)
	}
	if created {
		logger.Info("wrote site config for %s", domain)
	} else {
		logger.Debug("site config for %s already present, left untouched", domain)
	}

	if err := ws.Enable(domain); err != nil {
		// No rollback: the certificate stays issued
		return errors.WrapDomain(errors.ErrCodeWebServer, domain, err)
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success":      true,
			"domain":       domain,
			"staging":      obtainStaging,
			"site_written": created,
		})
	}

	output.Success("Certificate obtained for %s", domain)
	return nil
}
