package cli

import (
	"fmt"

	"github.com/soyeahso/playground/internal/identity"
	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	var forget bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the user id attached to requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if forget {
				if err := identity.Forget(paths.UserID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Removed %s\n", paths.UserID)
				return nil
			}

			if wantJSON() {
				return printJSON(out, map[string]any{
					"userId": ident.UserID,
					"source": ident.Source,
				})
			}
			if !ident.Present() {
				fmt.Fprintln(out, "(none)")
				return nil
			}
			fmt.Fprintf(out, "%s (%s)\n", ident.UserID, ident.Source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&forget, "forget", false, "delete the persisted user id")
	return cmd
}
