package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	queuerepo "github.com/heartmarshall/docflow-backend/internal/adapter/postgres/classification"
	requestrepo "github.com/heartmarshall/docflow-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/ai"
	"github.com/heartmarshall/docflow-backend/internal/service/classification"
)

// QueueCmd returns the classification queue command group.
func QueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Operate the classification queue",
	}
	cmd.AddCommand(queueStatsCmd(), queueRetryCmd(), queueResetCmd(), queueDrainCmd(), queuePruneCmd())
	return cmd
}

// withQueue builds the classification service. The AI model is only
// constructed for commands that process tasks.
func withQueue(cmd *cobra.Command, withModel bool, fn func(*classification.Service) error) error {
	e, err := loadEnv(cmd.Context(), true, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	requests := requestrepo.New(e.pool)
	var model llm.Completer
	if withModel {
		if model, err = llm.New(cmd.Context(), e.cfg.AI); err != nil {
			return err
		}
	}
	enricher := ai.NewService(e.log, model, requests)
	svc := classification.NewService(e.log, queuerepo.New(e.pool), requests, enricher, e.cfg.Worker)
	return fn(svc)
}

func queueStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withQueue(cmd, false, func(svc *classification.Service) error {
				st, err := svc.Stats(cmd.Context())
				if err != nil {
					return err
				}
				return printQueueStats(cmd.OutOrStdout(), st)
			})
		},
	}
}

func printQueueStats(out io.Writer, st domain.QueueStats) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "pending\t%d\n", st.Pending)
	fmt.Fprintf(w, "processing\t%d\n", st.Processing)
	fmt.Fprintf(w, "done\t%d\n", st.Done)
	failed := fmt.Sprint(st.Failed)
	if st.Failed > 0 {
		failed += " " + warnMark()
	}
	fmt.Fprintf(w, "failed\t%s\n", failed)
	fmt.Fprintf(w, "total\t%d\n", st.Total)
	return w.Flush()
}

func queueRetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry-failed",
		Short: "Return every failed task to pending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withQueue(cmd, false, func(svc *classification.Service) error {
				n, err := svc.RetryFailed(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) requeued\n", okMark(), n)
				return nil
			})
		},
	}
}

func queueResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-stuck",
		Short: "Return tasks stuck in processing to pending",
		Long: `Return tasks left in processing by a worker that died mid-batch.
Run it only while no worker is running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withQueue(cmd, false, func(svc *classification.Service) error {
				n, err := svc.ResetStuck(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) reset\n", okMark(), n)
				return nil
			})
		},
	}
}

func queueDrainCmd() *cobra.Command {
	var batches int

	cmd := &cobra.Command{
		Use:   "drain",
		Short: "Process pending tasks in the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if batches <= 0 {
				return errors.New("--batches must be positive")
			}
			return withQueue(cmd, true, func(svc *classification.Service) error {
				total := 0
				for i := 0; i < batches; i++ {
					n, err := svc.ProcessBatch(cmd.Context())
					if err != nil {
						return err
					}
					if n == 0 {
						break
					}
					total += n
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) processed\n", okMark(), total)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&batches, "batches", 10, "maximum number of batches to claim")
	return cmd
}

func queuePruneCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete finished tasks past the retention period",
		Long: `Delete done tasks processed longer ago than --older-than, or than
worker.done_retention when the flag is omitted. Meant to be run from cron.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withQueue(cmd, false, func(svc *classification.Service) error {
				n, err := svc.PruneDone(cmd.Context(), olderThan)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) pruned\n", okMark(), n)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "minimum age of a done task, e.g. 720h")
	return cmd
}
