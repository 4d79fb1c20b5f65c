package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/dbekbolat/contract-notifier/internal/clock"
	"github.com/dbekbolat/contract-notifier/internal/config"
	"github.com/dbekbolat/contract-notifier/internal/rabbitmq/events"
	contractrepo "github.com/dbekbolat/contract-notifier/internal/repository/contract"
	directoryrepo "github.com/dbekbolat/contract-notifier/internal/repository/directory"
	notifrepo "github.com/dbekbolat/contract-notifier/internal/repository/notification"
	outboxrepo "github.com/dbekbolat/contract-notifier/internal/repository/outbox"
	directorysvc "github.com/dbekbolat/contract-notifier/internal/service/directory"
	"github.com/dbekbolat/contract-notifier/internal/service/fanout"
	"github.com/dbekbolat/contract-notifier/internal/service/lifecycle"
	"github.com/dbekbolat/contract-notifier/internal/worker"
	"github.com/dbekbolat/contract-notifier/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	clk := clock.System{}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	eventQueue, err := events.NewEventQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create event queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Timeout,
	)

	outbox := outboxrepo.NewRepository(db)
	notifications := notifrepo.NewRepository(db)
	contracts := contractrepo.NewRepository(db)

	directory := directorysvc.NewService(directoryrepo.NewRepository(db), rdb, clk, cfg.Retry)
	fan := fanout.NewService(notifications, outbox, clk)
	sweep := lifecycle.NewService(contracts, directory, fan, eventQueue, cfg.Retry, cfg.Scheduler.ExpiryWindow)

	delivery := worker.NewDelivery(outbox, emailClient, clk, cfg.Retry, worker.DeliveryConfig{
		PollInterval:    cfg.Worker.PollInterval,
		BatchSize:       cfg.Worker.BatchSize,
		StaleClaimAfter: cfg.Worker.StaleClaimAfter,
	})
	sweeper := worker.NewSweeper(sweep, clk, cfg.Scheduler.SweepInterval)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		delivery.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		sweeper.Run(ctx)
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	// Let in-flight ticks finish their terminal status writes before the
	// connections underneath them are closed.
	wg.Wait()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
