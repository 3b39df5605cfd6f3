package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	slogecho "github.com/samber/slog-echo"
	"golang.org/x/time/rate"

	"github.com/workincz/moderator/moderation"
	"github.com/workincz/moderator/moderation/cachestore"
	"github.com/workincz/moderator/moderation/countstore"
	"github.com/workincz/moderator/moderation/flagstore"
	"github.com/workincz/moderator/moderation/historystore"
	"github.com/workincz/moderator/moderation/queuestore"
	"github.com/workincz/moderator/moderation/ratingstore"
	"github.com/workincz/moderator/moderation/reportstore"
	"github.com/workincz/moderator/moderation/rules"
	"github.com/workincz/moderator/moderation/truststore"
)

type Server struct {
	logger *slog.Logger
	engine *moderation.Engine
	echo   *echo.Echo
	httpd  *http.Server

	// per-reporter token buckets for the reports endpoint
	reportLimiters  *expirable.LRU[string, *rate.Limiter]
	reportRateLimit int
}

type Config struct {
	Logger            *slog.Logger
	Bind              string
	RedisURL          string
	SetsJSONPath      string
	WebhookURL        string
	LowTrustThreshold int
	QueueQuotaDay     int
	ReportRateLimit   int
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	sets := rules.DefaultSets()
	if config.SetsJSONPath != "" {
		if err := sets.LoadFromFileJSON(config.SetsJSONPath); err != nil {
			return nil, fmt.Errorf("initializing in-process setstore: %v", err)
		}
		logger.Info("loaded set config from JSON", "path", config.SetsJSONPath)
	}

	var counters countstore.CountStore
	var cache cachestore.CacheStore
	var flags flagstore.FlagStore
	var trust truststore.TrustStore
	var queue queuestore.QueueStore
	var reports reportstore.ReportStore
	if config.RedisURL != "" {
		opt, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis URL: %v", err)
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.TODO()).Result(); err != nil {
			return nil, fmt.Errorf("redis ping failed: %v", err)
		}

		cnt, err := countstore.NewRedisCountStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis countstore: %v", err)
		}
		counters = cnt

		csh, err := cachestore.NewRedisCacheStore(config.RedisURL, 30*time.Minute)
		if err != nil {
			return nil, fmt.Errorf("initializing redis cachestore: %v", err)
		}
		cache = csh

		flg, err := flagstore.NewRedisFlagStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis flagstore: %v", err)
		}
		flags = flg

		trs, err := truststore.NewRedisTrustStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis truststore: %v", err)
		}
		trust = trs

		que, err := queuestore.NewRedisQueueStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis queuestore: %v", err)
		}
		queue = que

		rep, err := reportstore.NewRedisReportStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis reportstore: %v", err)
		}
		reports = rep
	} else {
		counters = countstore.NewMemCountStore()
		cache = cachestore.NewMemCacheStore(5_000, 30*time.Minute)
		flags = flagstore.NewMemFlagStore()
		trust = truststore.NewMemTrustStore()
		queue = queuestore.NewMemQueueStore()
		reports = reportstore.NewMemReportStore()
	}

	var notifier moderation.Notifier
	if config.WebhookURL != "" {
		logger.Info("configuring action notification webhook")
		notifier = moderation.NewWebhookNotifier(config.WebhookURL)
	}

	engineConfig := moderation.DefaultEngineConfig()
	if config.LowTrustThreshold != 0 {
		engineConfig.LowTrustThreshold = config.LowTrustThreshold
	}
	if config.QueueQuotaDay != 0 {
		engineConfig.QuotaQueueAddsDay = config.QueueQuotaDay
	}

	eng := moderation.Engine{
		Logger:   logger,
		Rules:    rules.DefaultRules(),
		Sets:     sets,
		Counters: counters,
		Cache:    cache,
		Flags:    flags,
		Trust:    trust,
		Queue:    queue,
		Reports:  reports,
		Ratings:  ratingstore.NewMemRatingStore(),
		History:  historystore.NewMemHistoryStore(),
		Notifier: notifier,
		Config:   engineConfig,
	}

	srv := &Server{
		logger:          logger,
		engine:          &eng,
		reportLimiters:  expirable.NewLRU[string, *rate.Limiter](10_000, nil, time.Hour),
		reportRateLimit: config.ReportRateLimit,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.HTTPErrorHandler = srv.errorHandler

	e.GET("/_health", srv.HandleHealthCheck)
	e.POST("/moderation/content", srv.HandleModerateContent)
	e.POST("/moderation/reports", srv.HandleReportContent)
	e.GET("/moderation/queue", srv.HandlePendingQueue)
	e.POST("/moderation/queue/:itemID", srv.HandleProcessQueueItem)
	e.GET("/moderation/content/:contentID/flags", srv.HandleContentFlags)
	e.GET("/moderation/content/:contentID/history", srv.HandleContentHistory)
	e.GET("/moderation/content/:contentID/reports", srv.HandleContentReports)
	e.GET("/moderation/trust/:userID", srv.HandleTrustScore)
	e.GET("/employers/:employerID/rating", srv.HandleEmployerRating)
	e.POST("/employers/:employerID/reviews", srv.HandleAddReview)
	e.POST("/employers/:employerID/verify", srv.HandleVerifyEmployer)

	srv.echo = e
	srv.httpd = &http.Server{
		Handler:        e,
		Addr:           config.Bind,
		ReadTimeout:    time.Minute,
		WriteTimeout:   time.Minute,
		MaxHeaderBytes: 1 * (1024 * 1024),
	}

	return srv, nil
}

func (srv *Server) RunAPI() error {
	srv.logger.Info("starting server", "bind", srv.httpd.Addr)
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				srv.logger.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	quit := make(chan struct{})
	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSignals
		srv.logger.Info("received OS exit signal", "signal", sig)
		if err := srv.Shutdown(); err != nil {
			srv.logger.Error("HTTP server shutdown error", "err", err)
		}
		close(quit)
	}()
	<-quit
	srv.logger.Info("graceful shutdown complete")
	return nil
}

func (srv *Server) RunMetrics(listen string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, nil)
}

func (srv *Server) Shutdown() error {
	srv.logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.httpd.Shutdown(ctx)
}

// Allows a report from the reporter, or refuses because they have been
// filing too fast. One token bucket per reporter, expired after an hour of
// inactivity.
func (srv *Server) allowReport(reporterID string) bool {
	if srv.reportRateLimit <= 0 {
		return true
	}
	lim, ok := srv.reportLimiters.Get(reporterID)
	if !ok {
		lim = rate.NewLimiter(rate.Limit(float64(srv.reportRateLimit)/60.0), srv.reportRateLimit)
		srv.reportLimiters.Add(reporterID, lim)
	}
	return lim.Allow()
}
