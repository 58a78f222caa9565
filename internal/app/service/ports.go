package service

import (
	"context"

	"github.com/jose-valero/partidos-bot/internal/domain"
	"github.com/jose-valero/partidos-bot/internal/infra/storage"
)

// Lo implementa internal/adapters/footballdata.Client
type FootballAPI interface {
	TeamMatches(ctx context.Context, teamID int, competitionCode string) ([]domain.Fixture, error)
}

// Lo implementa internal/infra/storage.QueryLogRepo (o NopRecorder sin DB)
type QueryRecorder interface {
	Record(ctx context.Context, q storage.QueryLog) error
}

// NopRecorder se usa cuando no hay DATABASE_URL.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, storage.QueryLog) error { return nil }
