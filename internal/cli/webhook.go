package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/telegram"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// WebhookCmd returns the Telegram webhook command group.
func WebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Register or inspect the Telegram webhook",
	}
	cmd.AddCommand(webhookSetCmd(), webhookInfoCmd())
	return cmd
}

func loadBot(cmd *cobra.Command) (*env, *telegram.Bot, error) {
	e, err := loadEnv(cmd.Context(), false, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	bot, err := telegram.New(e.cfg.Telegram)
	if err != nil {
		return nil, nil, err
	}
	return e, bot, nil
}

func webhookSetCmd() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Point Telegram at the webhook URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, bot, err := loadBot(cmd)
			if err != nil {
				return err
			}
			if url == "" {
				url = e.cfg.Telegram.WebhookURL
			}
			if url == "" {
				return errors.New("no webhook url: pass --url or set TELEGRAM_WEBHOOK_URL")
			}
			desc, err := bot.SetWebhook(cmd.Context(), url)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okMark(), desc)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "public https URL of /api/telegram/webhook")
	return cmd
}

func webhookInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the webhook state reported by Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, bot, err := loadBot(cmd)
			if err != nil {
				return err
			}
			info, err := bot.WebhookInfo(cmd.Context())
			if err != nil {
				return err
			}
			printWebhookInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func printWebhookInfo(out io.Writer, info domain.WebhookInfo) {
	if info.URL == "" {
		fmt.Fprintf(out, "%s webhook not set\n", warnMark())
	} else {
		fmt.Fprintf(out, "%s %s\n", okMark(), info.URL)
	}
	fmt.Fprintf(out, "  pending updates: %d\n", info.PendingUpdateCount)
	if info.LastErrorMessage != "" {
		fmt.Fprintf(out, "  last error: %s\n", color.New(color.FgRed).Sprint(info.LastErrorMessage))
	}
}
