// Package cli implements docflowctl, the operator tool for migrations,
// staff roles, access tokens, the Telegram webhook and the classification
// queue.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/docflow-backend/internal/app"
)

// RootCmd assembles the docflowctl command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "docflowctl",
		Short:         "Operate a docflow deployment",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `docflowctl reads the same configuration as the server (config.yaml,
CONFIG_PATH or environment variables) and runs one-off operator tasks.`,
	}

	root.AddCommand(MigrateCmd())
	root.AddCommand(PromoteCmd())
	root.AddCommand(UsersCmd())
	root.AddCommand(TokenCmd())
	root.AddCommand(WebhookCmd())
	root.AddCommand(QueueCmd())

	return root
}
