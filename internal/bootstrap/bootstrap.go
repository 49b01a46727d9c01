package bootstrap

import (
	"context"
	"fmt"
	"time"

	adminHandler "engage-server/internal/admin/handler"
	adminProcessor "engage-server/internal/admin/processor"
	"engage-server/internal/api"
	"engage-server/internal/apierrors"
	authHandler "engage-server/internal/auth/handler"
	authProcessor "engage-server/internal/auth/processor"
	campaignHandler "engage-server/internal/campaign/handler"
	campaignProcessor "engage-server/internal/campaign/processor"
	kafkaClient "engage-server/internal/clients/kafka"
	redisClient "engage-server/internal/clients/redis"
	"engage-server/internal/config"
	courtIssueHandler "engage-server/internal/courtissue/handler"
	courtIssueProcessor "engage-server/internal/courtissue/processor"
	"engage-server/internal/events"
	"engage-server/internal/jobs"
	"engage-server/internal/observability"
	"engage-server/internal/querycache"
	"engage-server/internal/ratelimit"
	reportsHandler "engage-server/internal/reports/handler"
	reportsProcessor "engage-server/internal/reports/processor"
	rewardAccountsHandler "engage-server/internal/rewardaccounts/handler"
	rewardAccountsProcessor "engage-server/internal/rewardaccounts/processor"
	segmentsHandler "engage-server/internal/segments/handler"
	segmentsProcessor "engage-server/internal/segments/processor"
	"engage-server/internal/store"
	tablesHandler "engage-server/internal/tables/handler"
	tablesProcessor "engage-server/internal/tables/processor"
	tasksHandler "engage-server/internal/tasks/handler"
	tasksProcessor "engage-server/internal/tasks/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Infrastructure, each nil when disabled
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	Jobs          *jobs.Client

	Cache     *querycache.Cache
	Events    *events.Publisher
	Campaigns campaignProcessor.CampaignProcessor

	Handlers api.Handlers
}

// InitializeCore connects the store, Redis, Kafka and the job client and
// builds the campaign processor. The worker binary needs only this much.
func InitializeCore(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if cfg.Redis.Enabled {
		deps.Jobs = jobs.NewClient(jobs.RedisOpt(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB), logger)
	} else {
		logger.Warn(ctx, "Redis is disabled, scheduled campaign transitions will not be enqueued")
	}

	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	}, logger)

	deps.Cache = querycache.New(deps.Redis, cfg.Cache.TTL, logger)
	deps.Events = events.NewPublisher(deps.KafkaProducer, logger)
	deps.Campaigns = campaignProcessor.New(&deps.Store, deps.Events, deps.Jobs, deps.Cache, logger)

	return deps, nil
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps, err := InitializeCore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	apierrors.SetLogger(logger)

	authProc := authProcessor.New(&deps.Store, deps.Events, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	adminProc := adminProcessor.New(&deps.Store, logger)
	segmentsProc := segmentsProcessor.New(&deps.Store, deps.Cache, logger)
	reportsProc := reportsProcessor.New(&deps.Store, deps.Cache, logger)
	rewardAccountsProc := rewardAccountsProcessor.New(&deps.Store, deps.Cache, logger)
	tablesProc := tablesProcessor.New(&deps.Store, cfg.Tables.QueryTimeout, logger)
	tasksProc := tasksProcessor.New(&deps.Store, deps.Cache, logger)
	courtIssueProc := courtIssueProcessor.New(&deps.Store, logger)

	deps.Handlers = api.Handlers{
		Auth:           authHandler.New(authProc, logger),
		Admin:          adminHandler.New(adminProc, logger),
		Campaign:       campaignHandler.New(deps.Campaigns, logger),
		Segments:       segmentsHandler.New(segmentsProc, logger),
		Reports:        reportsHandler.New(reportsProc, logger),
		RewardAccounts: rewardAccountsHandler.New(rewardAccountsProc, logger),
		Tables:         tablesHandler.New(tablesProc, cfg.Tables.MaxUploadBytes, logger),
		Tasks:          tasksHandler.New(tasksProc, logger),
		CourtIssue:     courtIssueHandler.New(courtIssueProc, logger),
		AuthLimiter:    ratelimit.NewService(deps.Redis, cfg.Auth.RateLimit, time.Minute, logger),
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if err := d.Jobs.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close job client", err)
	}
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
