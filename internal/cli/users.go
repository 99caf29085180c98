package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	userrepo "github.com/heartmarshall/docflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	usersvc "github.com/heartmarshall/docflow-backend/internal/service/user"
)

// PromoteCmd returns the command that changes a user's role. It is the way
// to bootstrap the first admin after that person has messaged the bot.
func PromoteCmd() *cobra.Command {
	var (
		telegramID string
		role       string
	)

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Set the role of a known Telegram user",
		Example: `  docflowctl promote --telegram-id 123456789
  docflowctl promote --telegram-id 123456789 --role manager`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), true, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			svc := usersvc.NewService(e.log, userrepo.New(e.pool))
			u, err := svc.SetRole(cmd.Context(), usersvc.SetRoleInput{
				TelegramUserID: telegramID,
				Role:           role,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) is now %s\n", okMark(), u.Name, u.TelegramUserID, u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&telegramID, "telegram-id", "", "numeric Telegram user id")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "user, manager or admin")
	_ = cmd.MarkFlagRequired("telegram-id")
	return cmd
}

// UsersCmd returns the users command group.
func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect staff accounts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "staff",
		Short: "List active admins and managers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), true, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			staff, err := usersvc.NewService(e.log, userrepo.New(e.pool)).ListStaff(cmd.Context())
			if err != nil {
				return err
			}
			if len(staff) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s no staff yet, use `docflowctl promote`\n", warnMark())
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TELEGRAM ID\tNAME\tROLE")
			for _, u := range staff {
				fmt.Fprintf(w, "%s\t%s\t%s\n", u.TelegramUserID, u.Name, u.Role)
			}
			return w.Flush()
		},
	})
	return cmd
}
