package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the playground is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			code, err := client.Status(ctx, cfg.Endpoint)
			if err != nil {
				return err
			}

			if wantJSON() {
				if err := printJSON(cmd.OutOrStdout(), map[string]any{
					"endpoint": cfg.Endpoint,
					"status":   code,
					"userId":   ident.UserID,
				}); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Endpoint: %s\n", cfg.Endpoint)
				if ident.Present() {
					fmt.Fprintf(out, "User:     %s (%s)\n", ident.UserID, ident.Source)
				} else {
					fmt.Fprintln(out, "User:     (none)")
				}
				fmt.Fprintf(out, "Status:   %d %s\n", code, http.StatusText(code))
			}

			if code < 200 || code >= 300 {
				return fmt.Errorf("playground unavailable: status %d", code)
			}
			return nil
		},
	}
}
