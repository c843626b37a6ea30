package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
	qb "github.com/riskibarqy/pitching-analytics/internal/platform/querybuilder"
)

type SessionRepository struct {
	db *sqlx.DB
}

var sessionSelectColumns = []string{
	"id",
	"player_id",
	"coach_id",
	"data_source_id",
	"session_date",
	"session_type",
	"location",
	"focus",
	"notes",
	"total_pitches",
	"created_at",
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) (int64, error) {
	model := sessionInsertModel{
		PlayerID:     s.PlayerID,
		DataSourceID: s.DataSourceID,
		SessionDate:  s.Date,
		SessionType:  s.Type,
		Location:     nullString(s.Location),
		Focus:        nullString(s.Focus),
		Notes:        nullString(s.Notes),
		TotalPitches: s.TotalPitches,
	}
	if s.CoachID != nil {
		model.CoachID = sql.NullInt64{Int64: *s.CoachID, Valid: true}
	}

	query, args, err := qb.InsertModel("training_sessions", model, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert session query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (session.Session, bool, error) {
	query, args, err := qb.Select(sessionSelectColumns...).From("training_sessions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return session.Session{}, false, fmt.Errorf("build select session query: %w", err)
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, fmt.Errorf("select session: %w", err)
	}
	return sessionFromRow(row), true, nil
}

func (r *SessionRepository) ListByPlayer(ctx context.Context, playerID int64) ([]session.Session, error) {
	query, args, err := qb.Select(sessionSelectColumns...).From("training_sessions").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("session_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sessions query: %w", err)
	}

	var rows []sessionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}

	out := make([]session.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionFromRow(row))
	}
	return out, nil
}

func (r *SessionRepository) AddPitchCount(ctx context.Context, sessionID int64, delta int) error {
	query, args, err := qb.Update("training_sessions").
		SetExpr("total_pitches", "total_pitches + ?", delta).
		Where(qb.Eq("id", sessionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update session pitch count query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update session pitch count: %w", err)
	}
	return nil
}

func sessionFromRow(row sessionTableModel) session.Session {
	out := session.Session{
		ID:           row.ID,
		PlayerID:     row.PlayerID,
		DataSourceID: row.DataSourceID,
		Date:         row.SessionDate,
		Type:         row.SessionType,
		Location:     nullStringValue(row.Location),
		Focus:        nullStringValue(row.Focus),
		Notes:        nullStringValue(row.Notes),
		TotalPitches: row.TotalPitches,
	}
	if row.CoachID.Valid {
		coachID := row.CoachID.Int64
		out.CoachID = &coachID
	}
	return out
}
