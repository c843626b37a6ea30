package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID           int64          `db:"id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	ThrowingHand string         `db:"throwing_hand"`
	IsActive     bool           `db:"is_active"`
	RapsodoID    sql.NullString `db:"rapsodo_id"`
	PitchLogicID sql.NullString `db:"pitchlogic_id"`
	TrackmanID   sql.NullString `db:"trackman_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

type playerInsertModel struct {
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	ThrowingHand string         `db:"throwing_hand"`
	IsActive     bool           `db:"is_active"`
	RapsodoID    sql.NullString `db:"rapsodo_id"`
	PitchLogicID sql.NullString `db:"pitchlogic_id"`
	TrackmanID   sql.NullString `db:"trackman_id"`
}
