package postgres

import (
	"database/sql"
	"time"
)

type sessionTableModel struct {
	ID           int64          `db:"id"`
	PlayerID     int64          `db:"player_id"`
	CoachID      sql.NullInt64  `db:"coach_id"`
	DataSourceID int64          `db:"data_source_id"`
	SessionDate  time.Time      `db:"session_date"`
	SessionType  string         `db:"session_type"`
	Location     sql.NullString `db:"location"`
	Focus        sql.NullString `db:"focus"`
	Notes        sql.NullString `db:"notes"`
	TotalPitches int            `db:"total_pitches"`
	CreatedAt    time.Time      `db:"created_at"`
}

type sessionInsertModel struct {
	PlayerID     int64          `db:"player_id"`
	CoachID      sql.NullInt64  `db:"coach_id"`
	DataSourceID int64          `db:"data_source_id"`
	SessionDate  time.Time      `db:"session_date"`
	SessionType  string         `db:"session_type"`
	Location     sql.NullString `db:"location"`
	Focus        sql.NullString `db:"focus"`
	Notes        sql.NullString `db:"notes"`
	TotalPitches int            `db:"total_pitches"`
}
