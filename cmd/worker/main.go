package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"engage-server/internal/bootstrap"
	"engage-server/internal/config"
	"engage-server/internal/jobs"
	"engage-server/internal/jobs/workers"
	"engage-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := observability.NewLogger()
	ctx := context.Background()

	if !cfg.Redis.Enabled {
		logger.Fatal(ctx, "the campaign worker needs Redis", fmt.Errorf("REDIS_HOST is not set: %w", config.ErrEmptyEnvironmentVariable))
	}

	logger.Info(ctx, "Starting campaign worker server...")

	deps, err := bootstrap.InitializeCore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	redisOpt := jobs.RedisOpt(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	campaignWorker := workers.NewCampaignWorker(&deps.Campaigns, logger)

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues: map[string]int{
				jobs.QueueDefault: 6,
				jobs.QueueLow:     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCampaignActivate, campaignWorker.ProcessActivateTask)
	mux.HandleFunc(jobs.TypeCampaignComplete, campaignWorker.ProcessCompleteTask)
	mux.HandleFunc(jobs.TypeCampaignSweep, campaignWorker.ProcessSweepTask)

	// The sweep catches campaigns whose transition job was never enqueued
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: &asynqLogger{logger: logger},
	})
	_, err = scheduler.Register(cfg.Jobs.SweepCron, asynq.NewTask(jobs.TypeCampaignSweep, nil), asynq.Queue(jobs.QueueLow), asynq.MaxRetry(0))
	if err != nil {
		logger.Fatal(ctx, "failed to register campaign sweep", err)
	}

	if err := scheduler.Start(); err != nil {
		logger.Fatal(ctx, "failed to start scheduler", err)
	}
	defer scheduler.Shutdown()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))
		if err := srv.Run(mux); err != nil {
			logger.Fatal(ctx, "failed to run worker server", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(context.Background(), fmt.Sprint(args...), nil)
}
