package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type QueryLogRepo struct{ db *sql.DB }

func NewQueryLogRepo(db *sql.DB) *QueryLogRepo { return &QueryLogRepo{db: db} }

func (r *QueryLogRepo) Record(ctx context.Context, q QueryLog) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO query_log (guild_id, user_id, team_input, team_id, competition, outcome, results)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, q.GuildID, q.UserID, q.TeamInput, q.TeamID, nullIfEmpty(q.Competition), q.Outcome, q.Results)
	return err
}

// PurgeOlderThan borra las consultas con más antigüedad que d. Lo usa el janitor.
func (r *QueryLogRepo) PurgeOlderThan(ctx context.Context, d time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM query_log
 WHERE created_at < now() - $1::interval
`, durToInterval(d))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func durToInterval(d time.Duration) string {
	secs := int64(d.Seconds())
	if secs <= 0 {
		return "0 seconds"
	}
	return fmt.Sprintf("%d seconds", secs)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
