package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/mymmrac/telego"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"dealflow/internal/config"
	"dealflow/internal/domain/service/buyer"
	"dealflow/internal/domain/service/deal"
	"dealflow/internal/domain/service/match"
	"dealflow/internal/domain/service/matching"
	"dealflow/internal/domain/service/scoring"
	"dealflow/internal/domain/service/stats"
	"dealflow/internal/domain/service/valuation"
	"dealflow/internal/infrastructure/advisor"
	"dealflow/internal/infrastructure/cache"
	"dealflow/internal/infrastructure/notifier"
	"dealflow/internal/infrastructure/persistence"
	"dealflow/internal/server"
	"dealflow/internal/transport/bot"
	"dealflow/internal/transport/bot/handler"
	"dealflow/internal/worker"
	"dealflow/pkg/application/connectors"
	"dealflow/pkg/application/modules"
	"dealflow/pkg/contextx"
	"dealflow/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type repositories struct {
	deals         *persistence.DealRepository
	buyers        *persistence.BuyerRepository
	matches       *persistence.MatchRepository
	notifications *persistence.NotificationRepository
}

func newRepositories(db *sqlx.DB) repositories {
	return repositories{
		deals:         persistence.NewDealRepository(db),
		buyers:        persistence.NewBuyerRepository(db),
		matches:       persistence.NewMatchRepository(db),
		notifications: persistence.NewNotificationRepository(db),
	}
}

// Run поднимает зависимости и модули приложения и ждёт их завершения.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen,gocognit,cyclop
	// 1. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := persistence.Migrate(ctx, db); err != nil {
		return fmt.Errorf("persistence.Migrate: %w", err)
	}

	repos := newRepositories(db)

	// 2. Redis: кэш активных покупателей и очередь задач
	var redisClient *redis.Client

	if cfg.Redis.Enabled() {
		rc := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		redisClient = rc.Client(ctx)
		defer rc.Close(ctx)
	}

	// 3. Scoring
	scoringCfg := scoring.DefaultConfig()
	scoringCfg.AdvisorTimeout = cfg.Scoring.AdvisorTimeout

	scorer := scoring.New(scoringCfg)

	if cfg.Gemini.Enabled() {
		gemini, err := advisor.NewGemini(ctx, advisor.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if err != nil {
			return fmt.Errorf("advisor.NewGemini: %w", err)
		}

		scorer.WithAdvisor(advisor.NewInstrumented(gemini))
		logger(ctx).Info("gemini advisor enabled", slog.String("model", gemini.Model()))
	}

	// 4. Matching
	matchingCfg := matching.DefaultConfig()
	matchingCfg.Threshold = cfg.Scoring.MatchThreshold
	matchingCfg.Parallelism = cfg.Scoring.Parallelism

	matcher := matching.NewMatcher(matchingCfg)
	builder := matching.NewBuilder(matcher, repos.matches)

	matchService := match.NewService(repos.deals, repos.buyers, builder, repos.matches, repos.notifications).
		WithNotifyLimit(cfg.Scoring.NotifyLimit)
	buyerService := buyer.NewService(repos.buyers)

	if redisClient != nil {
		buyersCache := cache.NewActiveBuyers(redisClient).WithTTL(cfg.Scoring.BuyerCacheTTL)

		matchService.WithCache(buyersCache)
		buyerService.WithCache(buyersCache)
	}

	// 5. Telegram
	var tgBot *telego.Bot

	if cfg.Bot.Enabled() {
		var err error

		tgBot, err = telego.NewBot(cfg.Bot.Token)
		if err != nil {
			return fmt.Errorf("telego.NewBot: %w", err)
		}

		alertBot := notifier.NewTelegramBot(tgBot, cfg.Bot.ChatID).WithTrackURL(cfg.App.PublicURL)

		routes := []match.Route{{Notifier: alertBot.Buyers()}}
		if cfg.Bot.ChatID != 0 {
			routes = append(routes, match.Route{Notifier: alertBot.Admin(), MinScore: cfg.Scoring.PriorityScore})

			if err = alertBot.SendText(ctx, "🚀 Dealflow запущен"); err != nil {
				logger(ctx).Warn("startup notification failed", logx.Error(err))
			}
		}

		matchService.WithRoutes(routes...)
	}

	g, ctx := errgroup.WithContext(ctx)

	// 6. Dispatcher: очередь asynq или подбор прямо в запросе
	var dispatcher worker.MatchDispatcher = worker.NewInline(matchService)

	if redisClient != nil && cfg.Asynq.Enabled {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DatabaseNumber,
		})
		defer func() {
			if err := asynqClient.Close(); err != nil {
				logger(ctx).Warn("asynqClient.Close", logx.Error(err))
			}
		}()

		dispatcher = worker.NewProducer(asynqClient).
			WithMaxRetry(cfg.Asynq.MaxRetry).
			WithTimeout(cfg.Asynq.Timeout)

		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
			Concurrency:   cfg.Asynq.Concurrency,
		}.Run(ctx, g, modules.AsynqQueues{worker.QueueMatching: 1}, worker.NewHandler(matchService).Handlers()...)
	}

	dealService := deal.NewService(repos.deals, scorer, valuation.NewDefault()).
		WithDispatcher(dispatcher).
		WithMatchGate(cfg.Scoring.MatchGate).
		WithSeenTTL(cfg.Scoring.SeenTTL)

	statsService := stats.NewService(repos.deals, repos.buyers, repos.matches).
		WithHotScore(cfg.Scoring.HotScore)

	sweeper := worker.NewSweeper(dealService, dispatcher, cfg.Scoring.MatchGate).
		WithInterval(cfg.Scoring.SweepInterval).
		WithLimit(cfg.Scoring.SweepLimit).
		WithPace(cfg.Scoring.SweepPace)

	if cfg.Scoring.SweepEnabled {
		if err := sweeper.Start(ctx); err != nil {
			return fmt.Errorf("sweeper.Start: %w", err)
		}
		defer sweeper.Stop()
	}

	// 7. Modules
	srv := server.NewServer(
		server.NewDealServer(dealService, matchService),
		server.NewBuyerServer(buyerService, matchService),
		server.NewMatchServer(matchService, repos.notifications),
		server.NewAdminServer(statsService),
		server.NewFitServer(dealService, buyerService, matcher),
	)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, newHTTPServer(ctx, cfg.HTTP, srv))

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
	}.Run(ctx, g)

	if tgBot != nil && cfg.Bot.AdminID != 0 {
		adminBot := bot.New(tgBot, handler.New(statsService, dealService, sweeper), cfg.Bot.AdminID)

		g.Go(func() error {
			if err := adminBot.Run(ctx); err != nil {
				return fmt.Errorf("adminBot.Run: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
