package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/charmbracelet/log"

	"github.com/jose-valero/partidos-bot/internal/infra/config"
	"github.com/jose-valero/partidos-bot/internal/infra/storage"
)

func handler(ctx context.Context) (string, error) {
	cfg, err := config.ParseJanitor(os.Getenv)
	if err != nil {
		return "", err
	}
	if cfg.DatabaseURL == "" {
		return "no DATABASE_URL", nil
	}

	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	n, err := storage.NewQueryLogRepo(db).PurgeOlderThan(cctx, time.Duration(cfg.RetentionDays)*24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("purge: %w", err)
	}
	log.Info("query_log purgado", "rows", n, "retention_days", cfg.RetentionDays)
	return fmt.Sprintf("ok: %d filas", n), nil
}

func main() {
	log.SetFormatter(log.JSONFormatter)
	lambda.Start(handler)
}
