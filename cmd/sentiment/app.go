package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	"tweet_sentiment/internal/config"
	"tweet_sentiment/internal/publisher"
	"tweet_sentiment/internal/service"
	"tweet_sentiment/internal/storage/vertica"
)

// app holds what every subcommand needs once the config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func (a *app) load() error {
	a.logger = setupLogger("info")

	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.logger.Error("failed to load config", "error", err)
		return err
	}

	a.cfg = cfg
	a.logger = setupLogger(cfg.LogLevel)
	return nil
}

// services is the wired object graph over one database connection.
type services struct {
	db      *sqlx.DB
	reports *service.ReportService
	ingest  *service.IngestService
	inbox   *service.InboxService
	closers []func() error
}

func (a *app) connect(ctx context.Context) (*services, error) {
	db, err := vertica.Open(ctx, a.cfg.Database)
	if err != nil {
		a.logger.Error("failed to connect to database", "error", err)
		return nil, err
	}
	a.logger.Info("connected to database", "driver", a.cfg.Database.Driver, "host", a.cfg.Database.Host)

	s := &services{db: db, closers: []func() error{db.Close}}

	var pub service.Publisher
	if a.cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        a.cfg.RabbitMQ.URL,
			Exchange:   a.cfg.RabbitMQ.Exchange,
			RoutingKey: a.cfg.RabbitMQ.RoutingKey,
			QueueName:  a.cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			s.close()
			a.logger.Error("failed to connect to rabbitmq", "error", err)
			return nil, err
		}
		pub = rabbitMQ
		s.closers = append(s.closers, rabbitMQ.Close)
	}

	tweetStore := vertica.NewTweetStore(db)
	sentimentStore := vertica.NewSentimentStore(db)
	reportStore := vertica.NewReportStore(db)
	importStateStore := vertica.NewImportStateStore(db)
	txManager := vertica.NewTransactionManager(db)

	s.reports = service.NewReportService(tweetStore, sentimentStore, reportStore, a.logger)
	s.ingest = service.NewIngestService(tweetStore, sentimentStore, txManager, pub, a.logger, a.cfg.Ingest)
	s.inbox = service.NewInboxService(s.ingest, importStateStore, a.logger, a.cfg.Ingest)

	return s, nil
}

// close releases resources in reverse order of acquisition.
func (s *services) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func (a *app) signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			a.logger.Info("received shutdown signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
