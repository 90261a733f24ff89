package cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"session"},
		Short:   "List, show and delete agent sessions",
	}

	cmd.AddCommand(newSessionsListCmd())
	cmd.AddCommand(newSessionsGetCmd())
	cmd.AddCommand(newSessionsDeleteCmd())
	return cmd
}

func newSessionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <agent-id>",
		Short: "List sessions stored for an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			sessions := client.ListSessions(ctx, cfg.Endpoint, args[0])
			return printSessions(cmd.OutOrStdout(), sessions)
		},
	}
}

func newSessionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <agent-id> <session-id>",
		Short: "Print a session as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			body, err := client.GetSession(ctx, cfg.Endpoint, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
}

func newSessionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <agent-id> <session-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			resp, err := client.DeleteSession(ctx, cfg.Endpoint, args[0], args[1])
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
				if len(detail) > 0 {
					return fmt.Errorf("delete session %s: %s: %s", args[1], resp.Status, detail)
				}
				return fmt.Errorf("delete session %s: %s", args[1], resp.Status)
			}

			if wantJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"sessionId": args[1],
					"deleted":   true,
					"status":    resp.StatusCode,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s (%s)\n", args[1], http.StatusText(resp.StatusCode))
			return nil
		},
	}
}
