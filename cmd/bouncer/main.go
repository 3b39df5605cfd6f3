package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "bouncer",
		Usage:   "content moderation daemon (keeps the job board clean)",
		Version: versioninfo.Short(),
	}

	app.Commands = []*cli.Command{
		runCmd,
	}

	return app.Run(args)
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "IP or address, and port, to listen on for the HTTP API",
			Value:   ":8700",
			EnvVars: []string{"BOUNCER_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs",
			Value:   ":8701",
			EnvVars: []string{"BOUNCER_METRICS_LISTEN"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis connection URL for persistent state; in-memory stores when empty",
			EnvVars: []string{"BOUNCER_REDIS_URL", "REDIS_URL"},
		},
		&cli.StringFlag{
			Name:    "sets-json-path",
			Usage:   "file path of JSON file containing keyword sets (spam phrases etc)",
			EnvVars: []string{"BOUNCER_SETS_JSON_PATH"},
		},
		&cli.StringFlag{
			Name:    "webhook-url",
			Usage:   "incoming webhook URL for moderation action notifications",
			EnvVars: []string{"BOUNCER_WEBHOOK_URL", "SLACK_WEBHOOK_URL"},
		},
		&cli.IntFlag{
			Name:    "low-trust-threshold",
			Usage:   "authors below this trust score always go to manual review",
			Value:   30,
			EnvVars: []string{"BOUNCER_LOW_TRUST_THRESHOLD"},
		},
		&cli.IntFlag{
			Name:    "queue-quota-day",
			Usage:   "max review-queue insertions per day from user reports",
			Value:   500,
			EnvVars: []string{"BOUNCER_QUEUE_QUOTA_DAY"},
		},
		&cli.IntFlag{
			Name:    "report-rate-limit",
			Usage:   "max reports per minute accepted from a single reporter",
			Value:   10,
			EnvVars: []string{"BOUNCER_REPORT_RATE_LIMIT"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

		srv, err := NewServer(Config{
			Logger:            logger,
			Bind:              cctx.String("bind"),
			RedisURL:          cctx.String("redis-url"),
			SetsJSONPath:      cctx.String("sets-json-path"),
			WebhookURL:        cctx.String("webhook-url"),
			LowTrustThreshold: cctx.Int("low-trust-threshold"),
			QueueQuotaDay:     cctx.Int("queue-quota-day"),
			ReportRateLimit:   cctx.Int("report-rate-limit"),
		})
		if err != nil {
			return err
		}

		go func() {
			if err := srv.RunMetrics(cctx.String("metrics-listen")); err != nil {
				slog.Error("failed to start metrics endpoint", "error", err)
				panic(fmt.Errorf("failed to start metrics endpoint: %w", err))
			}
		}()

		return srv.RunAPI()
	},
}
