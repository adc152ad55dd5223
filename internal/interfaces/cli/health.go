package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func healthCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the ranking API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			health, err := rt.app.Client.Health(cmd.Context())
			if err != nil {
				return readFailed(cmd, err, "Ranking API is unreachable")
			}
			return rt.render(cmd, health, func(w io.Writer) {
				fmt.Fprintln(w, cells("API", rt.app.Client.BaseURL()))
				fmt.Fprintln(w, cells("Status", health.Status))
				fmt.Fprintln(w, cells("Message", orDash(health.Message)))
				fmt.Fprintln(w, cells("Database", orDash(health.Database)))
				fmt.Fprintln(w, cells("Timestamp", orDash(health.Timestamp)))
			})
		},
	}
}
