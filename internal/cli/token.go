package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/docflow-backend/internal/auth"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// TokenCmd returns the command that issues an access token for the REST API.
func TokenCmd() *cobra.Command {
	var (
		telegramID string
		role       string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed access token",
		Long: `Issue a JWT for the REST API. The token carries the Telegram user id
and role; the server trusts both, so only run this for known staff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !e.cfg.Auth.Enabled() {
				return errors.New("auth is disabled: set AUTH_JWT_SECRET")
			}
			r := domain.Role(role)
			if !r.IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}

			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(telegramID, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&telegramID, "telegram-id", "", "numeric Telegram user id")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleManager), "user, manager or admin")
	_ = cmd.MarkFlagRequired("telegram-id")
	return cmd
}
