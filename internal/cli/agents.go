package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAgentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agents",
		Aliases: []string{"agent"},
		Short:   "Inspect agents served by the playground",
	}

	cmd.AddCommand(newAgentsListCmd())
	cmd.AddCommand(newAgentsInfoCmd())
	return cmd
}

func newAgentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			agents := client.ListAgents(ctx, cfg.Endpoint)
			return printAgents(cmd.OutOrStdout(), agents)
		},
	}
}

func newAgentsInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <agent-id>",
		Short: "Show one agent and its stored sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			agentID := args[0]
			for _, a := range client.ListAgents(ctx, cfg.Endpoint) {
				if a.Value != agentID {
					continue
				}

				sessions := client.ListSessions(ctx, cfg.Endpoint, agentID)
				if wantJSON() {
					return printJSON(cmd.OutOrStdout(), map[string]any{
						"agent":    a,
						"sessions": len(sessions),
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Agent: %s (%s)\n", a.Value, a.Label)
				fmt.Fprintf(out, "  Model:    %s\n", a.Model)
				fmt.Fprintf(out, "  Storage:  %v\n", a.Storage)
				if a.Storage {
					fmt.Fprintf(out, "  Sessions: %d\n", len(sessions))
				}
				return nil
			}
			return fmt.Errorf("agent not found: %s", agentID)
		},
	}
}
