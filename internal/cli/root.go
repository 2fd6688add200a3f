package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ksyq12/sitecert/internal/errors"
	"github.com/ksyq12/sitecert/internal/logger"
	"github.com/ksyq12/sitecert/internal/output"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sitecert",
	Short: "Certificate lifecycle CLI",
	Long: `sitecert obtains, inspects, and revokes Let's Encrypt certificates
for platform-managed web applications.

It wraps certbot for issuance and revocation, and wires each certificate
into an nginx site configuration that is enabled and disabled alongside it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		var certErr *errors.CertError
		if errors.As(err, &certErr) && certErr.Code == errors.ErrCodeExternal && len(certErr.Stderr) > 0 {
			// Forward the external tool's error stream untouched
			_, _ = os.Stderr.Write(certErr.Stderr)
		} else {
			output.Error("%v", err)
		}
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
