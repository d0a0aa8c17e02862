package main

import (
	"text/tabwriter"

	"github.com/KATBlackCoder/rapportflow/internal/rbac/infra"

	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the effective authorization policy",
	// The policy is embedded, so no configuration is needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := infra.ParsePolicy(infra.DefaultPolicy)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		_, _ = w.Write([]byte("POSITION\tRESOURCE\tACTION\n"))
		for _, r := range rules {
			_, _ = w.Write([]byte(string(r.Position) + "\t" + r.Resource + "\t" + r.Action + "\n"))
		}
		return w.Flush()
	},
}
