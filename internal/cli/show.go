package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/inspect"
	"github.com/ksyq12/sitecert/internal/output"
)

var showDomain string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a domain's certificate details",
	Long: `Show the issued certificate for a domain: subject, issuer, SANs,
serial, and validity window. The certificate file is parsed locally;
no external tools are invoked.

Examples:
  sitecert show --domain example.com
  sitecert show --domain example.com --json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDomain, "domain", "", "Domain whose certificate to show (required)")
	showCmd.MarkFlagRequired("domain")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	domain := showDomain

	if err := validateDomain(domain); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := deps.Stores.Open(cfg.StoreDir)
	if !st.Has(domain) {
		return errors.NotFound(domain)
	}

	details, err := inspect.File(st.FullchainPath(domain))
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(details)
	}

	output.Print("Domain:     %s", domain)
	output.Print("Subject:    %s", details.Subject)
	output.Print("Issuer:     %s", details.Issuer)
	if len(details.SANs) > 0 {
		output.Print("SANs:       %s", strings.Join(details.SANs, ", "))
	}
	output.Print("Serial:     %s", details.Serial)
	output.Print("Not Before: %s", details.NotBefore.Format(time.RFC3339))
	output.Print("Not After:  %s (%d days remaining)", details.NotAfter.Format(time.RFC3339), details.DaysRemaining())

	return nil
}
