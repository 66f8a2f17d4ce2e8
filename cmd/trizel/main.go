// Command trizel serves the multilingual TRIZEL site and audits its pages
// for colour-contrast compliance.
//
//	trizel serve    # HTTP server, configured with TRIZEL_* variables
//	trizel audit    # axe-core contrast audit, configured with BASE_URL and AUDIT_*
//
// Neither command takes flags: configuration comes from the environment.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errAuditFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trizel",
		Short:         "TRIZEL site server and accessibility audit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newAuditCmd())
	return root
}
