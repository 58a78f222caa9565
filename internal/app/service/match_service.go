package service

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jose-valero/partidos-bot/internal/domain"
	"github.com/jose-valero/partidos-bot/internal/infra/storage"
	"github.com/jose-valero/partidos-bot/internal/metrics"
)

var ErrMatchesUnavailable = errors.New("no se pudieron obtener los partidos")

const retryLaterMsg = "Hubo un problema al obtener los datos. Por favor, inténtalo de nuevo."

// Query es lo que llega del comando /partidos.
type Query struct {
	GuildID     string
	UserID      string
	Team        string
	Competition string
}

type MatchService struct {
	api     FootballAPI
	history QueryRecorder
	metrics metrics.Metrics
	format  Formatter
	now     func() time.Time
}

func NewMatchService(api FootballAPI, history QueryRecorder, m metrics.Metrics, loc *time.Location) *MatchService {
	if history == nil {
		history = NopRecorder{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &MatchService{api: api, history: history, metrics: m, format: Formatter{Loc: loc}, now: time.Now}
}

// Upcoming trae los partidos del equipo y se queda sólo con los que empiezan
// después de ahora, en el mismo orden que los manda la API.
func (s *MatchService) Upcoming(ctx context.Context, teamID int, competitionCode string) ([]domain.Match, error) {
	now := s.now().UTC()

	start := time.Now()
	fixtures, err := s.api.TeamMatches(ctx, teamID, competitionCode)
	s.metrics.ObserveUpstream(time.Since(start).Seconds(), err != nil)
	if err != nil {
		log.Error("football-data: fetch failed", "team_id", teamID, "competition", competitionCode, "err", err)
		return nil, ErrMatchesUnavailable
	}
	return FilterUpcoming(fixtures, now), nil
}

// FilterUpcoming: fecha estrictamente posterior a now. Una fecha que no parsea se descarta.
func FilterUpcoming(fixtures []domain.Fixture, now time.Time) []domain.Match {
	out := make([]domain.Match, 0, len(fixtures))
	for _, f := range fixtures {
		at, err := time.Parse(time.RFC3339, f.UTCDate)
		if err != nil {
			log.Warn("fixture with invalid utcDate skipped", "utc_date", f.UTCDate, "err", err)
			continue
		}
		if at.After(now) {
			out = append(out, domain.NewMatch(f))
		}
	}
	return out
}

// Partidos resuelve el equipo y la competición, consulta y arma el texto de respuesta.
// Los errores devueltos son *domain.UnknownTeamError o ErrMatchesUnavailable; ver UserMessage.
func (s *MatchService) Partidos(ctx context.Context, q Query) (string, error) {
	entry := storage.QueryLog{GuildID: q.GuildID, UserID: q.UserID, TeamInput: q.Team}

	teamID, err := domain.TeamID(q.Team)
	if err != nil {
		s.finish(ctx, entry, metrics.OutcomeUnknownTeam)
		return "", err
	}
	entry.TeamID = &teamID

	comp, filtered := domain.ResolveCompetition(q.Competition)
	entry.Competition = comp.Code

	matches, err := s.Upcoming(ctx, teamID, comp.Code)
	if err != nil {
		s.finish(ctx, entry, metrics.OutcomeUpstreamError)
		return "", err
	}
	entry.Results = len(matches)

	outcome := metrics.OutcomeOK
	if len(matches) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	s.finish(ctx, entry, outcome)

	label := ""
	if filtered {
		label = comp.Label
	}
	return s.format.Reply(q.Team, label, matches), nil
}

func (s *MatchService) finish(ctx context.Context, entry storage.QueryLog, outcome string) {
	s.metrics.IncCommand(outcome)

	entry.Outcome = outcome
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.history.Record(rctx, entry); err != nil {
		log.Warn("query log: record failed", "team", entry.TeamInput, "outcome", outcome, "err", err)
	}
}

// UserMessage traduce un error de Partidos al texto que ve el usuario.
func UserMessage(err error) string {
	var unknown *domain.UnknownTeamError
	if errors.As(err, &unknown) {
		return unknown.Error()
	}
	return retryLaterMsg
}
