package cli

import (
	"github.com/spf13/cobra"

	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/logger"
	"github.com/ksyq12/sitecert/internal/output"
	"github.com/ksyq12/sitecert/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "get-status",
	Short: "Report certificate status for all domains",
	Long: `Report the status of every certificate in the store as a JSON
document on standard output.

Each domain directory in the live certificate store is reported with its
availability, expiry date, and whether its site is currently enabled.
A missing store directory yields an empty domain set.

Examples:
  sitecert get-status`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := deps.Stores.Open(cfg.StoreDir)
	ws := siteManager(cfg)

	domains, err := st.Domains()
	if err != nil {
		return err
	}
	logger.Debug("found %d domain(s) in %s", len(domains), cfg.StoreDir)

	report := store.NewReport()
	for _, domain := range domains {
		// A failed expiry lookup aborts the whole query
		expiry, err := st.Expiry(domain)
		if err != nil {
			return err
		}

		enabled, err := ws.IsEnabled(domain)
		if err != nil {
			return errors.WrapDomain(errors.ErrCodeWebServer, domain, err)
		}

		report.Domains[domain] = store.Status{
			CertificateAvailable: true,
			ExpiryDate:           expiry,
			WebEnabled:           enabled,
		}
	}

	// get-status is always JSON on stdout, --json or not
	return output.JSON(report)
}
