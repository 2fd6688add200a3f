package cli

import (
	"github.com/spf13/cobra"

	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/logger"
)

var (
	revokeDomain  string
	revokeStaging bool
)

var revokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke a certificate and disable its site",
	Long: `Revoke a domain's certificate and disable its site configuration.

If certbot fails, the site is left enabled and certbot's error output is
printed unmodified.

Examples:
  sitecert revoke --domain example.com
  sitecert revoke --domain example.com --staging`,
	Args: cobra.NoArgs,
	RunE: runRevoke,
}

func init() {
	revokeCmd.Flags().StringVar(&revokeDomain, "domain", "", "Domain whose certificate to revoke (required)")
	revokeCmd.Flags().BoolVar(&revokeStaging, "staging", false, "Use the Let's Encrypt staging CA")
	revokeCmd.MarkFlagRequired("domain")

	rootCmd.AddCommand(revokeCmd)
}

func runRevoke(cmd *cobra.Command, args []string) error {
	domain := revokeDomain

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

	st := deps.Stores.Open(cfg.StoreDir)

	logger.InfoFields("revoking certificate", map[string]interface{}{
		"domain":  domain,
		"staging": revokeStaging,
	})
	if err := cb.Revoke(st.CertPath(domain), revokeStaging); err != nil {
		// Disable step is skipped on revocation failure
		return err
	}

	ws := siteManager(cfg)
	if err := ws.Disable(domain); err != nil {
		return errors.WrapDomain(errors.ErrCodeWebServer, domain, err)
	}

	return outputResult(newSuccessResult(domain, "revoke"), "Certificate revoked for %s", domain)
}
