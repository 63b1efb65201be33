package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tweet_sentiment/internal/domain"
	"tweet_sentiment/internal/scheduler"
)

const timeLayout = "2006-01-02 15:04:05"

func rangeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Print the first and last tweet timestamps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			dr, err := s.reports.DateRange(cmd.Context())
			if err != nil {
				return err
			}
			if dr.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "no tweets")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", dr.Begin.UTC().Format(timeLayout), dr.End.UTC().Format(timeLayout))
			return nil
		},
	}
}

func insertCommand(a *app) *cobra.Command {
	var separator, nullToken string

	cmd := &cobra.Command{
		Use:       "insert {tweet|sentiment} LINE",
		Short:     "Insert a single delimited record",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.KindTweet), string(domain.KindSentiment)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, line := domain.RecordKind(args[0]), args[1]
			if kind != domain.KindTweet && kind != domain.KindSentiment {
				return fmt.Errorf("unknown record kind %q", args[0])
			}

			s, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			var n int64
			if kind == domain.KindTweet {
				n, err = s.ingest.InsertTweetRecord(cmd.Context(), line, separator)
			} else {
				n, err = s.ingest.InsertSentimentRecord(cmd.Context(), line, separator, nullToken)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) inserted\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&separator, "separator", "", "field separator (defaults to ingest.separator)")
	cmd.Flags().StringVar(&nullToken, "null", "", "token read as NULL in sentiment records (defaults to ingest.null_token)")

	return cmd
}

func loadCommand(a *app) *cobra.Command {
	var separator, nullToken string

	cmd := &cobra.Command{
		Use:   "load {tweets|sentiments} FILE",
		Short: "Load a delimited file, one record per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind domain.RecordKind
			switch args[0] {
			case "tweets", string(domain.KindTweet):
				kind = domain.KindTweet
			case "sentiments", string(domain.KindSentiment):
				kind = domain.KindSentiment
			default:
				return fmt.Errorf("unknown record kind %q", args[0])
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[1], err)
			}
			defer f.Close()

			ctx, cancel := a.signalContext(cmd.Context())
			defer cancel()

			s, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			stats, err := s.ingest.Load(ctx, kind, filepath.Base(args[1]), f, separator, nullToken)
			if stats != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "lines=%d inserted=%d failed=%d published=%d duration=%s\n",
					stats.Lines, stats.Inserted, stats.Failed, stats.Published, stats.Duration)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&separator, "separator", "", "field separator (defaults to ingest.separator)")
	cmd.Flags().StringVar(&nullToken, "null", "", "token read as NULL in sentiment records (defaults to ingest.null_token)")

	return cmd
}

func watchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Import files dropped into the inbox directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.signalContext(cmd.Context())
			defer cancel()

			s, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			a.logger.Info("starting inbox watcher",
				"inbox", a.cfg.Ingest.InboxDir,
				"done", a.cfg.Ingest.DoneDir,
				"interval", a.cfg.Ingest.Interval,
			)

			sched := scheduler.NewScheduler(s.inbox, a.cfg.Ingest.Interval, a.logger)
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("scheduler error", "error", err)
				return err
			}
			return nil
		},
	}
}
