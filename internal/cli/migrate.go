package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
)

// MigrateCmd returns the migrate command group.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect database migrations",
	}
	cmd.AddCommand(migrateUpCmd(), migrateDownCmd(), migrateStatusCmd())
	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(*env, *postgres.Migrator) error) error {
	e, err := loadEnv(cmd.Context(), true, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	m, err := postgres.NewMigrator(e.pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck
	return fn(e, m)
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(e *env, m *postgres.Migrator) error {
				if err := m.Up(cmd.Context(), e.log); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s migrations applied\n", okMark())
				return nil
			})
		},
	}
}

func migrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(e *env, m *postgres.Migrator) error {
				if err := m.Down(cmd.Context(), e.log); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s latest migration rolled back\n", okMark())
				return nil
			})
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(_ *env, m *postgres.Migrator) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tSTATE\tFILE")
				for _, s := range statuses {
					state := warnMark() + " pending"
					if s.Applied {
						state = okMark() + " applied"
					}
					fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, state, s.Path)
				}
				return w.Flush()
			})
		},
	}
}
